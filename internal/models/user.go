package models

//easyjson:json
type User struct {
	Name  string `json:"fullname"`
	Nick  string `json:"nickname"`
	Email string `json:"email"`
	About string `json:"about"`
}

//easyjson:json
type Users []User
