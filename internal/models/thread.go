package models

import (
	"strconv"

	"github.com/go-openapi/strfmt"
)

//easyjson:json
type Thread struct {
	Id         int             `json:"id"`
	Slug       string          `json:"slug,omitempty"`
	Title      string          `json:"title"`
	AuthorNick string          `json:"author"`
	ForumSlug  string          `json:"forum"`
	Message    string          `json:"message"`
	Votes      int             `json:"votes"`
	Created    strfmt.DateTime `json:"created"`
}

//easyjson:json
type Threads []Thread

// ThreadRef addresses a thread by numeric id or by slug.
type ThreadRef struct {
	Id   int
	Slug string
}

// ParseThreadRef treats anything that parses as an integer as an id.
func ParseThreadRef(slugOrId string) ThreadRef {
	if id, err := strconv.Atoi(slugOrId); err == nil {
		return ThreadRef{Id: id}
	}
	return ThreadRef{Slug: slugOrId}
}

func (r ThreadRef) String() string {
	if r.Slug != "" {
		return r.Slug
	}
	return strconv.Itoa(r.Id)
}

// IsNumericSlug reports whether slug would be read back as a thread id.
func IsNumericSlug(slug string) bool {
	_, err := strconv.Atoi(slug)
	return err == nil
}
