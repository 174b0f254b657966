package models

const RoleAdmin = "admin"

type LoginData struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Operator is the single staff account allowed into the kitchen and admin views.
type Operator struct {
	Username     string
	PasswordHash []byte
	Role         string
}
