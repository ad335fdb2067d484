package model

import (
	"time"

	"gomoto/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID            = "id"
	FieldUsername      = "username"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldRole          = "role"
	FieldFullName      = "full_name"
	FieldPhone         = "phone"
	FieldAddress       = "address"
	FieldLicenseNumber = "license_number"
	FieldLicenseExpiry = "license_expiry"
	FieldActive        = "active"
	FieldLastLogin     = "last_login"
)

const (
	CacheGetUser    = "user:get"
	CacheGetAllUser = "user:gets"
	CacheCountUser  = "user:count"
)

type User struct {
	ID            string     `db:"id"`
	Username      string     `db:"username"`
	Email         string     `db:"email"`
	Password      string     `db:"password"`
	Role          string     `db:"role"`
	FullName      *string    `db:"full_name"`
	Phone         *string    `db:"phone"`
	Address       *string    `db:"address"`
	LicenseNumber *string    `db:"license_number"`
	LicenseExpiry *time.Time `db:"license_expiry"`
	Active        bool       `db:"active"`
	LastLogin     *time.Time `db:"last_login"`
	model.Metadata
}

// DisplayName prefers the full name and falls back to the username.
func (u User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}

	return u.Username
}
