package account

import "time"

type Account struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)
