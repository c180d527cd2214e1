package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchfi/backend/internal/domain"
)

const (
	testSender   = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	testReceiver = "So11111111111111111111111111111111111111112"
	testHash     = "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"
)

func buildBooking(customerID uuid.UUID, total int64) *domain.Booking {
	return &domain.Booking{
		ID:             uuid.New(),
		CustomerID:     customerID,
		TotalPrice:     decimal.NewFromInt(total),
		Discount:       decimal.Zero,
		PaymentStatus:  domain.PaymentStatusPending,
		ShipmentStatus: domain.ShipmentStatusPending,
		Status:         domain.BookingStatusPending,
	}
}

func buildPayment(hash string, amount int64) *domain.CryptoPayment {
	return &domain.CryptoPayment{
		ID:              uuid.New(),
		TransactionHash: hash,
		PaymentType:     domain.PaymentTypeSOL,
		Amount:          decimal.NewFromInt(amount),
		USDValue:        decimal.NewFromInt(150),
		SenderWallet:    testSender,
		ReceiverWallet:  testReceiver,
	}
}

func item(watchID uuid.UUID, qty int, price int64) domain.BookingWatch {
	return domain.BookingWatch{
		ID:        uuid.New(),
		WatchID:   watchID,
		Quantity:  qty,
		UnitPrice: decimal.NewFromInt(price),
	}
}

func TestBookingCreatePersistsUnitAndDecrementsStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepo(db)
	ctx := context.Background()

	brand := seedBrand(t, db, "Omega")
	watch := seedWatch(t, db, brand.ID, "Seamaster", "SM-300", 5600, 5)
	customer := seedCustomer(t, db, testSender)

	out, err := repo.Create(ctx, buildBooking(customer.ID, 11200),
		[]domain.BookingWatch{item(watch.ID, 2, 5600)}, buildPayment(testHash, 11200))
	require.NoError(t, err)
	require.Len(t, out.Watches, 1)
	assert.Equal(t, 2, out.Watches[0].Quantity)
	require.Len(t, out.CryptoPayments, 1)
	assert.Equal(t, testHash, out.CryptoPayments[0].TransactionHash)
	require.NotNil(t, out.Customer)
	assert.Equal(t, testSender, out.Customer.WalletAddress)

	var reloaded domain.Watch
	require.NoError(t, db.First(&reloaded, "id = ?", watch.ID).Error)
	assert.Equal(t, 3, reloaded.StockQuantity)
	assert.True(t, reloaded.IsAvailable)
}

func TestBookingCreateFlipsAvailabilityAtZeroStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepo(db)
	ctx := context.Background()

	brand := seedBrand(t, db, "Rolex")
	watch := seedWatch(t, db, brand.ID, "Daytona", "DT-116500", 9500, 2)
	customer := seedCustomer(t, db, testSender)

	_, err := repo.Create(ctx, buildBooking(customer.ID, 19000),
		[]domain.BookingWatch{item(watch.ID, 2, 9500)}, buildPayment(testHash, 19000))
	require.NoError(t, err)

	var reloaded domain.Watch
	require.NoError(t, db.First(&reloaded, "id = ?", watch.ID).Error)
	assert.Equal(t, 0, reloaded.StockQuantity)
	assert.False(t, reloaded.IsAvailable)
}

func TestBookingCreateInsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepo(db)
	ctx := context.Background()

	brand := seedBrand(t, db, "Patek")
	watch := seedWatch(t, db, brand.ID, "Nautilus", "NT-5711", 9500, 1)
	customer := seedCustomer(t, db, testSender)

	_, err := repo.Create(ctx, buildBooking(customer.ID, 19000),
		[]domain.BookingWatch{item(watch.ID, 2, 9500)}, buildPayment(testHash, 19000))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var bookings, payments, items int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&bookings).Error)
	require.NoError(t, db.Model(&domain.CryptoPayment{}).Count(&payments).Error)
	require.NoError(t, db.Model(&domain.BookingWatch{}).Count(&items).Error)
	assert.Zero(t, bookings)
	assert.Zero(t, payments)
	assert.Zero(t, items)

	var reloaded domain.Watch
	require.NoError(t, db.First(&reloaded, "id = ?", watch.ID).Error)
	assert.Equal(t, 1, reloaded.StockQuantity)
	assert.True(t, reloaded.IsAvailable)
}

func TestBookingCreateDuplicateHashPersistsNothing(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepo(db)
	ctx := context.Background()

	brand := seedBrand(t, db, "AP")
	watch := seedWatch(t, db, brand.ID, "Royal Oak", "RO-15500", 9500, 5)
	customer := seedCustomer(t, db, testSender)

	_, err := repo.Create(ctx, buildBooking(customer.ID, 19000),
		[]domain.BookingWatch{item(watch.ID, 2, 9500)}, buildPayment(testHash, 19000))
	require.NoError(t, err)

	_, err = repo.Create(ctx, buildBooking(customer.ID, 9500),
		[]domain.BookingWatch{item(watch.ID, 1, 9500)}, buildPayment(testHash, 9500))
	assert.ErrorIs(t, err, domain.ErrDuplicateTransaction)

	// Only the first submission is on record, and stock moved exactly once.
	var bookings, payments int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&bookings).Error)
	require.NoError(t, db.Model(&domain.CryptoPayment{}).Count(&payments).Error)
	assert.Equal(t, int64(1), bookings)
	assert.Equal(t, int64(1), payments)

	var reloaded domain.Watch
	require.NoError(t, db.First(&reloaded, "id = ?", watch.ID).Error)
	assert.Equal(t, 3, reloaded.StockQuantity)

	exists, err := repo.TransactionHashExists(ctx, testHash)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBookingFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepo(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
