package dto

import (
	"github.com/jellydator/validation"

	"github.com/hongminglow/casino-api/internal/models"
)

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// Validate only checks presence; values are stored as sent.
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Phone, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// ToUser builds the row to insert. The balance always starts at zero.
func (r SignupRequest) ToUser(passwordHash string) models.User {
	return models.User{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Username:     r.Username,
		Email:        r.Email,
		Phone:        r.Phone,
		PasswordHash: passwordHash,
	}
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Phone, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResponse struct {
	Success bool              `json:"success"`
	User    models.PublicUser `json:"user"`
}
