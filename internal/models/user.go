package models

import "time"

// Role is the authorization level of a user account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// UserStatus marks whether an account is usable.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// Address is a postal address attached to a user profile.
type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
}

// User represents an account in the user directory.
type User struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email     string     `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string     `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Role      Role       `json:"role" gorm:"type:varchar(16);default:user"`
	FirstName string     `json:"firstName" gorm:"type:varchar(100)"`
	LastName  string     `json:"lastName" gorm:"type:varchar(100)"`
	Phone     string     `json:"phone" gorm:"type:varchar(32)"`
	Status    UserStatus `json:"status" gorm:"type:varchar(16);default:active"`
	Address   Address    `json:"address" gorm:"embedded;embeddedPrefix:address_"`

	// Password-reset state; cleared once the token is consumed.
	ResetPasswordToken   string     `json:"-" gorm:"type:varchar(64);index"`
	ResetPasswordExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
