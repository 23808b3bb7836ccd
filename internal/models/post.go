package models

import "github.com/go-openapi/strfmt"

//easyjson:json
type Post struct {
	Id         int             `json:"id"`
	AuthorNick string          `json:"author"`
	ParentId   int             `json:"parent"`
	Message    string          `json:"message"`
	IsEdited   bool            `json:"isEdited"`
	ForumSlug  string          `json:"forum"`
	ThreadId   int             `json:"thread"`
	Created    strfmt.DateTime `json:"created"`

	// Position in the reply tree, assigned once on creation.
	Level     int   `json:"-"`
	TreeGroup int64 `json:"-"`
	Path      Path  `json:"-"`
}

//easyjson:json
type Posts []Post

//easyjson:json
type PostUpdate struct {
	Message string `json:"message"`
}

//easyjson:json
type PostFull struct {
	Post   *Post   `json:"post"`
	User   *User   `json:"author,omitempty"`
	Forum  *Forum  `json:"forum,omitempty"`
	Thread *Thread `json:"thread,omitempty"`
}
