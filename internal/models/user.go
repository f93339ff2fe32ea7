package models

import "time"

// User captures a casino account as persisted by the store.
type User struct {
	ID           int64     `json:"id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Balance      int64     `json:"balance" db:"balance"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}

// PublicUser is the projection returned to clients after login.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Public strips everything a client must not see.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Balance:  u.Balance,
		Email:    u.Email,
		Phone:    u.Phone,
	}
}
