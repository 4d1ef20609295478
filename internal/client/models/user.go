// Package models defines the records exchanged with the remote user API.
package models

import (
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/usergate/internal/common"
)

// User is one record of the remote user directory.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar,omitempty"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// AvatarURL returns the avatar or a placeholder when the record has none.
func (u User) AvatarURL() string {
	if u.Avatar == "" {
		return common.AvatarPlaceholderURL
	}
	return u.Avatar
}

func (u User) String() string {
	return strconv.Itoa(u.ID) + "\t" + u.FullName() + "\t" + u.Email
}

// UserPage is one page of the listing plus the paging cursor.
type UserPage struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Data       []User `json:"data"`
}

// UserUpdate is the edit form body. Tags are go-playground/validator rules.
type UserUpdate struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// UpdateFrom fills the form with the current values of u.
func UpdateFrom(u User) UserUpdate {
	return UserUpdate{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}
