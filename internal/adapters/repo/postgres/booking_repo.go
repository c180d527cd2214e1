package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/watchfi/backend/internal/domain"
)

type BookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) *BookingRepo { return &BookingRepo{db: db} }

func (r *BookingRepo) List(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{})
	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.ShipmentStatus != "" {
		q = q.Where("shipment_status = ?", f.ShipmentStatus)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column := "created_at"
	if f.SortBy == "totalPrice" {
		column = "total_price"
	}
	dir := "desc"
	if f.SortOrder == "asc" {
		dir = "asc"
	}

	var list []domain.Booking
	err := q.Order(column + " " + dir).
		Offset(f.Offset).Limit(f.Limit).
		Preload("Customer").
		Preload("Watches.Watch").
		Preload("CryptoPayments").
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *BookingRepo) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var list []domain.Booking
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Preload("Customer").
		Preload("Watches.Watch").
		Preload("CryptoPayments").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *BookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Watches.Watch").
		Preload("CryptoPayments").
		First(&b, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) TransactionHashExists(ctx context.Context, hash string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CryptoPayment{}).
		Where("transaction_hash = ?", hash).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists the whole booking unit atomically. The unique index on
// crypto_payments.transaction_hash is the tie-break for concurrent identical
// submissions; the conditional stock decrement is the tie-break for
// concurrent purchases of the same watch.
func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking, items []domain.BookingWatch, payment *domain.CryptoPayment) (*domain.Booking, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Customer", "Watches", "CryptoPayments").Create(b).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].BookingID = b.ID
		}
		if err := tx.Omit("Watch").Create(&items).Error; err != nil {
			return err
		}

		payment.BookingID = b.ID
		if err := tx.Create(payment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateTransaction
			}
			return err
		}

		for _, item := range items {
			res := tx.Model(&domain.Watch{}).
				Where("id = ? AND stock_quantity >= ?", item.WatchID, item.Quantity).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected != 1 {
				return domain.ErrInsufficientStock
			}
			// Keep the availability invariant: a watch at zero stock is
			// never available.
			if err := tx.Model(&domain.Watch{}).
				Where("id = ? AND stock_quantity = 0", item.WatchID).
				Update("is_available", false).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, b.ID)
}
