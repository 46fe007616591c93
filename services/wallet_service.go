// services/wallet_service.go
package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// WalletStore is the persistence surface the wallet service needs.
type WalletStore interface {
	Create(wallet *models.Wallet) error
	List() ([]models.Wallet, error)
}

// WalletService handles the payment-method directory.
type WalletService struct {
	store WalletStore
}

// NewWalletService creates a new wallet service
func NewWalletService(store WalletStore) *WalletService {
	return &WalletService{store: store}
}

// Create registers a payment method. The method decides which contact field
// matters, mirroring the snapshot rules records embed at creation time.
func (s *WalletService) Create(req *models.CreateWalletRequest) (*models.Wallet, error) {
	name := strings.TrimSpace(req.Name)
	method := strings.TrimSpace(req.Method)
	if name == "" || method == "" {
		return nil, utils.NewBadRequestError(utils.ErrWalletFieldsRequired)
	}
	if method != models.CategoryBankTransfer && method != models.CategoryEwallet {
		return nil, utils.NewBadRequestError(utils.ErrWalletMethodInvalid)
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	phoneNumber := strings.TrimSpace(req.PhoneNumber)
	if method == models.CategoryBankTransfer && accountNumber == "" {
		return nil, utils.NewBadRequestError(utils.ErrWalletAccountNumber)
	}
	if method == models.CategoryEwallet && phoneNumber == "" {
		return nil, utils.NewBadRequestError(utils.ErrWalletPhoneNumber)
	}

	now := time.Now().UTC()
	wallet := &models.Wallet{
		ID:            uuid.NewString(),
		Name:          name,
		Method:        method,
		BankName:      strings.TrimSpace(req.BankName),
		AccountNumber: accountNumber,
		PhoneNumber:   phoneNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Create(wallet); err != nil {
		return nil, utils.NewInternalError("Failed to store wallet")
	}
	return wallet, nil
}

// List returns all registered payment methods.
func (s *WalletService) List() ([]models.Wallet, error) {
	wallets, err := s.store.List()
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve wallets")
	}
	return wallets, nil
}
