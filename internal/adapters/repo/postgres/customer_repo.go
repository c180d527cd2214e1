package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/watchfi/backend/internal/domain"
)

type CustomerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Customer{})
	if f.Pseudonym != "" {
		q = q.Where("pseudonym ILIKE ?", "%"+f.Pseudonym+"%")
	}
	if f.WalletAddress != "" {
		q = q.Where("wallet_address = ?", f.WalletAddress)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column := "pseudonym"
	if f.SortBy == "createdAt" {
		column = "created_at"
	}
	dir := "asc"
	if f.SortOrder == "desc" {
		dir = "desc"
	}

	var list []domain.Customer
	err := q.Order(column + " " + dir).
		Offset(f.Offset).Limit(f.Limit).
		Preload("Bookings.Watches.Watch").
		Preload("Bookings.CryptoPayments").
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *CustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.WithContext(ctx).
		Preload("Bookings.Watches.Watch").
		Preload("Bookings.CryptoPayments").
		First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) FindByWallet(ctx context.Context, wallet string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.WithContext(ctx).
		Preload("Bookings.Watches.Watch").
		Preload("Bookings.CryptoPayments").
		First(&c, "wallet_address = ?", wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	err := r.db.WithContext(ctx).Omit("Bookings").Create(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.Invalid("Wallet address already exists.")
	}
	return err
}
