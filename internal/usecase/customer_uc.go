package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/watchfi/backend/internal/domain"
)

type CustomerUC struct {
	Customers domain.CustomerRepo
}

type CreateCustomerInput struct {
	Pseudonym     string `json:"pseudonym"`
	WalletAddress string `json:"walletAddress"`
}

// Register creates the customer for a wallet address, or returns the existing
// one when the wallet is already registered. Registration is idempotent.
func (uc *CustomerUC) Register(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error) {
	if !domain.IsValidWalletAddress(in.WalletAddress) {
		return nil, domain.Invalid("Invalid Solana wallet address.")
	}
	if len(in.Pseudonym) > 100 {
		return nil, domain.Invalid("Invalid pseudonym. Must be a string up to 100 characters.")
	}
	existing, err := uc.Customers.FindByWallet(ctx, in.WalletAddress)
	if err == nil {
		return existing, nil
	}
	if err != domain.ErrNotFound {
		return nil, err
	}
	c := &domain.Customer{
		ID:            uuid.New(),
		Pseudonym:     in.Pseudonym,
		WalletAddress: in.WalletAddress,
	}
	if err := uc.Customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

type ListCustomersInput struct {
	Pseudonym     string
	WalletAddress string
	SortBy        string
	SortOrder     string
	Limit         int
	Offset        int
}

func (uc *CustomerUC) List(ctx context.Context, in ListCustomersInput) ([]domain.Customer, int64, domain.CustomerFilter, error) {
	f := domain.CustomerFilter{
		Pseudonym:     in.Pseudonym,
		WalletAddress: in.WalletAddress,
		SortBy:        defaultStr(in.SortBy, "pseudonym"),
		SortOrder:     defaultStr(in.SortOrder, "asc"),
		Limit:         in.Limit,
		Offset:        in.Offset,
	}
	if len(f.Pseudonym) > 100 {
		return nil, 0, f, domain.Invalid("Invalid pseudonym. Must be a string up to 100 characters.")
	}
	if f.WalletAddress != "" && !domain.IsValidWalletAddress(f.WalletAddress) {
		return nil, 0, f, domain.Invalid("Invalid walletAddress. Must be a valid Solana wallet address.")
	}
	if f.SortBy != "pseudonym" && f.SortBy != "createdAt" {
		return nil, 0, f, domain.Invalid(`Invalid sortBy parameter. Use "pseudonym" or "createdAt".`)
	}
	if f.Limit == 0 {
		f.Limit = 10
	}
	if f.Limit < 0 {
		return nil, 0, f, domain.Invalid("Invalid limit parameter. Must be a positive number.")
	}
	if f.Offset < 0 {
		return nil, 0, f, domain.Invalid("Invalid offset parameter. Must be a non-negative number.")
	}
	list, total, err := uc.Customers.List(ctx, f)
	return list, total, f, err
}

// Get resolves a customer by UUID, or by wallet address when the identifier
// parses as one.
func (uc *CustomerUC) Get(ctx context.Context, id string) (*domain.Customer, error) {
	if domain.IsValidWalletAddress(id) {
		return uc.Customers.FindByWallet(ctx, id)
	}
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.Invalid("Invalid customer ID. Must be a UUID or a Solana wallet address.")
	}
	return uc.Customers.FindByID(ctx, cid)
}
