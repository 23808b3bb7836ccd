package models

//easyjson:json
type Vote struct {
	Nick     string `json:"nickname"`
	Voice    int    `json:"voice"`
	ThreadId int    `json:"thread"`
}
