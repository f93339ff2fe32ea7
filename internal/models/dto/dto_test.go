package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSignup() SignupRequest {
	return SignupRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Phone:     "+256700000001",
		Password:  "s3cret",
	}
}

func TestSignupRequestValidate(t *testing.T) {
	assert.NoError(t, validSignup().Validate())

	blankers := map[string]func(*SignupRequest){
		"firstName": func(r *SignupRequest) { r.FirstName = "" },
		"lastName":  func(r *SignupRequest) { r.LastName = "" },
		"username":  func(r *SignupRequest) { r.Username = "" },
		"email":     func(r *SignupRequest) { r.Email = "" },
		"phone":     func(r *SignupRequest) { r.Phone = "" },
		"password":  func(r *SignupRequest) { r.Password = "" },
	}
	for field, blank := range blankers {
		t.Run(field, func(t *testing.T) {
			req := validSignup()
			blank(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestSignupRequestToUser(t *testing.T) {
	user := validSignup().ToUser("hash")
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Equal(t, "+256700000001", user.Phone)
	assert.Zero(t, user.Balance)
	assert.Zero(t, user.ID)
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, LoginRequest{Phone: "1", Password: "p"}.Validate())
	assert.Error(t, LoginRequest{Phone: "1"}.Validate())
	assert.Error(t, LoginRequest{Password: "p"}.Validate())
}

func TestAdjustBalanceRequestValidate(t *testing.T) {
	zero := int64(0)
	negative := int64(-120)
	assert.NoError(t, AdjustBalanceRequest{Amount: &zero}.Validate())
	assert.NoError(t, AdjustBalanceRequest{Amount: &negative}.Validate())
	assert.Error(t, AdjustBalanceRequest{}.Validate())
}
