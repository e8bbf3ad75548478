package wallet

import "mentormatch/internal/models"

// DepositResult reports the outcome of a simulated deposit.
type DepositResult struct {
	NewBalance  float64             `json:"new_balance"`
	Transaction *models.Transaction `json:"transaction"`
}

// WithdrawResult reports the outcome of a simulated withdrawal.
type WithdrawResult struct {
	NewBalance  float64             `json:"new_balance"`
	Transaction *models.Transaction `json:"transaction"`
}
