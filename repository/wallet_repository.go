// repository/wallet_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/fadhlanhapp/splitbill-backend/models"
)

// WalletRepository handles database operations for the payment-method
// directory.
type WalletRepository struct {
	DB *sql.DB
}

// NewWalletRepository creates a new WalletRepository
func NewWalletRepository(db *sql.DB) *WalletRepository {
	return &WalletRepository{DB: db}
}

const walletColumns = `id, name, method,
	COALESCE(bank_name, ''), COALESCE(account_number, ''), COALESCE(phone_number, ''),
	created_at, updated_at`

// Create inserts a wallet.
func (r *WalletRepository) Create(wallet *models.Wallet) error {
	_, err := r.DB.Exec(
		`INSERT INTO wallets (id, name, method, bank_name, account_number, phone_number, created_at, updated_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8)`,
		wallet.ID, wallet.Name, wallet.Method,
		wallet.BankName, wallet.AccountNumber, wallet.PhoneNumber,
		wallet.CreatedAt, wallet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert wallet: %v", err)
	}
	return nil
}

// List returns all wallets in creation order.
func (r *WalletRepository) List() ([]models.Wallet, error) {
	rows, err := r.DB.Query(
		`SELECT ` + walletColumns + ` FROM wallets ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %v", err)
	}
	defer rows.Close()

	wallets := []models.Wallet{}
	for rows.Next() {
		var wallet models.Wallet
		if err := rows.Scan(&wallet.ID, &wallet.Name, &wallet.Method,
			&wallet.BankName, &wallet.AccountNumber, &wallet.PhoneNumber,
			&wallet.CreatedAt, &wallet.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %v", err)
		}
		wallets = append(wallets, wallet)
	}
	return wallets, rows.Err()
}
