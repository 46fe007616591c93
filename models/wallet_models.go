package models

import "time"

// Wallet is a live payment method shown when assembling a split bill. Records
// reference wallets by id and embed an immutable snapshot at creation time,
// so editing a wallet never rewrites history.
type Wallet struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Method        string    `json:"method"`
	BankName      string    `json:"bankName,omitempty"`
	AccountNumber string    `json:"accountNumber,omitempty"`
	PhoneNumber   string    `json:"phoneNumber,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateWalletRequest is the body of POST /api/wallets.
type CreateWalletRequest struct {
	Name          string `json:"name"`
	Method        string `json:"method"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	PhoneNumber   string `json:"phoneNumber"`
}
