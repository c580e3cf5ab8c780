package models

type User struct {
	Username string `json:"username"`
	Password string `json:"-"` // Exclude password hash from JSON responses
	Remarks  string `json:"remarks"`
}

type Profile struct {
	Username string `json:"username"`
	Remarks  string `json:"remarks"`
}
