package dto

import "github.com/jellydator/validation"

// AdjustBalanceRequest carries a signed delta. A nil Amount means the field was absent.
type AdjustBalanceRequest struct {
	Amount *int64 `json:"amount"`
}

func (r AdjustBalanceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.NotNil),
	)
}

type BalanceResponse struct {
	Success bool  `json:"success"`
	Balance int64 `json:"balance"`
}
