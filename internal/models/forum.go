package models

//easyjson:json
type Forum struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	UserNick string `json:"user"`
	Posts    int    `json:"posts"`
	Threads  int    `json:"threads"`
}
