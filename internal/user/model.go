package user

import "time"

type User struct {
	ID           uint
	FullName     string
	BusinessName string
	BusinessType *string
	Email        string
	PhoneNumber  string
	State        string
	Country      string
	Password     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SignupParams struct {
	FullName     string
	BusinessName string
	BusinessType *string
	Email        string
	PhoneNumber  string
	State        string
	Country      string
	Password     string
}
