package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/watchfi/backend/internal/domain"
	"github.com/watchfi/backend/internal/mocks"
)

const (
	senderWallet   = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	receiverWallet = "So11111111111111111111111111111111111111112"
	txHash         = "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"
)

func newBookingUC() (*BookingUC, *mocks.BookingRepo, *mocks.WatchRepo, *mocks.CustomerRepo, *mocks.PaymentProcessor) {
	bookings := new(mocks.BookingRepo)
	watches := new(mocks.WatchRepo)
	customers := new(mocks.CustomerRepo)
	payments := new(mocks.PaymentProcessor)
	uc := &BookingUC{Bookings: bookings, Watches: watches, Customers: customers, Payments: payments}
	return uc, bookings, watches, customers, payments
}

func validInput(watchIDs ...uuid.UUID) CreateBookingInput {
	items := make([]BookingItemInput, 0, len(watchIDs))
	for _, id := range watchIDs {
		items = append(items, BookingItemInput{ID: id.String(), Quantity: 1, Price: decimal.NewFromInt(9500)})
	}
	return CreateBookingInput{
		CustomerID:      senderWallet,
		WatchItems:      items,
		TransactionHash: txHash,
		PaymentType:     "SOL",
		SenderWallet:    senderWallet,
		ReceiverWallet:  receiverWallet,
		USDValue:        decimal.NewFromInt(150),
		ShipmentAddress: "221B Baker Street",
	}
}

func TestCreateBookingComputesTotal(t *testing.T) {
	uc, bookings, watches, customers, payments := newBookingUC()
	ctx := context.Background()

	w1, w2 := uuid.New(), uuid.New()
	in := validInput(w1, w2)
	in.WatchItems[0] = BookingItemInput{ID: w1.String(), Quantity: 2, Price: decimal.NewFromInt(9500)}
	in.WatchItems[1] = BookingItemInput{ID: w2.String(), Quantity: 1, Price: decimal.NewFromInt(5600)}
	in.Discount = decimal.NewFromInt(100)
	in.PaymentStatus = "PAID"

	customer := &domain.Customer{ID: uuid.New(), WalletAddress: senderWallet}
	bookings.On("TransactionHashExists", ctx, txHash).Return(false, nil)
	customers.On("FindByWallet", ctx, senderWallet).Return(customer, nil)
	watches.On("FindPurchasable", ctx, mock.Anything).Return([]domain.Watch{
		{ID: w1, Name: "Submariner", StockQuantity: 5, IsAvailable: true},
		{ID: w2, Name: "Speedmaster", StockQuantity: 3, IsAvailable: true},
	}, nil)
	payments.On("Verify", ctx, txHash, domain.PaymentTypeSOL).Return(domain.PaymentVerification{}, nil)

	var captured *domain.Booking
	var capturedPayment *domain.CryptoPayment
	bookings.On("Create", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.Booking)
			capturedPayment = args.Get(3).(*domain.CryptoPayment)
		}).
		Return(&domain.Booking{}, nil)

	_, err := uc.Create(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, "24500", captured.TotalPrice.String())
	assert.Equal(t, customer.ID, captured.CustomerID)
	assert.Equal(t, domain.PaymentStatusPaid, captured.PaymentStatus)

	require.NotNil(t, capturedPayment)
	assert.Equal(t, txHash, capturedPayment.TransactionHash)
	assert.True(t, capturedPayment.IsConfirmed)
	assert.NotNil(t, capturedPayment.BlockTime)
	assert.Equal(t, "24500", capturedPayment.Amount.String())
}

func TestCreateBookingDiscountNeverGoesNegative(t *testing.T) {
	uc, bookings, watches, customers, payments := newBookingUC()
	ctx := context.Background()

	w1 := uuid.New()
	in := validInput(w1)
	in.Discount = decimal.NewFromInt(999999)

	bookings.On("TransactionHashExists", ctx, txHash).Return(false, nil)
	customers.On("FindByWallet", ctx, senderWallet).
		Return(&domain.Customer{ID: uuid.New(), WalletAddress: senderWallet}, nil)
	watches.On("FindPurchasable", ctx, mock.Anything).Return([]domain.Watch{
		{ID: w1, Name: "Nautilus", StockQuantity: 1, IsAvailable: true},
	}, nil)
	payments.On("Verify", ctx, txHash, domain.PaymentTypeSOL).Return(domain.PaymentVerification{}, nil)

	var captured *domain.Booking
	bookings.On("Create", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*domain.Booking) }).
		Return(&domain.Booking{}, nil)

	_, err := uc.Create(ctx, in)
	require.NoError(t, err)
	assert.True(t, captured.TotalPrice.IsZero())
}

func TestCreateBookingValidation(t *testing.T) {
	w1 := uuid.New()

	cases := []struct {
		name   string
		mutate func(*CreateBookingInput)
		msg    string
	}{
		{"bad customer wallet", func(in *CreateBookingInput) { in.CustomerID = "not-a-wallet" },
			"Invalid Solana wallet address."},
		{"empty items", func(in *CreateBookingInput) { in.WatchItems = nil },
			"Invalid or missing watchItems. Must be a non-empty array."},
		{"negative discount", func(in *CreateBookingInput) { in.Discount = decimal.NewFromInt(-1) },
			"Invalid discount. Must be between 0 and 99999999.99."},
		{"bad payment type", func(in *CreateBookingInput) { in.PaymentType = "BTC" },
			"Invalid paymentType. Must be SOL or USDC."},
		{"missing hash", func(in *CreateBookingInput) { in.TransactionHash = "" },
			"Invalid transactionHash. Must be a string up to 88 characters."},
		{"bad sender", func(in *CreateBookingInput) { in.SenderWallet = "xyz" },
			"Invalid Solana wallet address."},
		{"zero usd value", func(in *CreateBookingInput) { in.USDValue = decimal.Zero },
			"Invalid usdValue. Must be a number between 0 and 99999999.99."},
		{"bad payment status", func(in *CreateBookingInput) { in.PaymentStatus = "SETTLED" },
			"Invalid paymentStatus. Must be PENDING, PAID, FAILED, or CONFIRMING."},
		{"bad item quantity", func(in *CreateBookingInput) { in.WatchItems[0].Quantity = 0 },
			"Invalid quantity in watchItems. Must be a positive integer."},
		{"bad item id", func(in *CreateBookingInput) { in.WatchItems[0].ID = "nope" },
			"Invalid watchId in watchItems. Must be a valid UUID."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, bookings, _, _, _ := newBookingUC()
			bookings.On("TransactionHashExists", mock.Anything, mock.Anything).Return(false, nil)

			in := validInput(w1)
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.EqualError(t, err, tc.msg)
		})
	}
}

func TestCreateBookingDuplicateHash(t *testing.T) {
	uc, bookings, _, _, _ := newBookingUC()
	ctx := context.Background()

	bookings.On("TransactionHashExists", ctx, txHash).Return(true, nil)

	_, err := uc.Create(ctx, validInput(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrDuplicateTransaction)
}

func TestCreateBookingDuplicateWatchIDs(t *testing.T) {
	uc, bookings, _, _, _ := newBookingUC()
	ctx := context.Background()

	bookings.On("TransactionHashExists", ctx, txHash).Return(false, nil)

	id := uuid.New()
	_, err := uc.Create(ctx, validInput(id, id))
	assert.EqualError(t, err, "Duplicate watchIds in watchItems are not allowed.")
}

func TestCreateBookingUnknownWallet(t *testing.T) {
	uc, bookings, _, customers, _ := newBookingUC()
	ctx := context.Background()

	bookings.On("TransactionHashExists", ctx, txHash).Return(false, nil)
	customers.On("FindByWallet", ctx, senderWallet).Return(nil, domain.ErrNotFound)

	_, err := uc.Create(ctx, validInput(uuid.New()))
	assert.EqualError(t, err, "Customer not found.")
}

func TestCreateBookingUnavailableWatch(t *testing.T) {
	uc, bookings, watches, customers, _ := newBookingUC()
	ctx := context.Background()

	bookings.On("TransactionHashExists", ctx, txHash).Return(false, nil)
	customers.On("FindByWallet", ctx, senderWallet).
		Return(&domain.Customer{ID: uuid.New(), WalletAddress: senderWallet}, nil)
	watches.On("FindPurchasable", ctx, mock.Anything).Return([]domain.Watch{}, nil)

	_, err := uc.Create(ctx, validInput(uuid.New()))
	assert.EqualError(t, err, "One or more watches are invalid, unavailable, or deleted.")
}

func TestCreateBookingInsufficientStock(t *testing.T) {
	uc, bookings, watches, customers, _ := newBookingUC()
	ctx := context.Background()

	w1 := uuid.New()
	in := validInput(w1)
	in.WatchItems[0].Quantity = 4

	bookings.On("TransactionHashExists", ctx, txHash).Return(false, nil)
	customers.On("FindByWallet", ctx, senderWallet).
		Return(&domain.Customer{ID: uuid.New(), WalletAddress: senderWallet}, nil)
	watches.On("FindPurchasable", ctx, mock.Anything).Return([]domain.Watch{
		{ID: w1, Name: "Daytona", StockQuantity: 2, IsAvailable: true},
	}, nil)

	_, err := uc.Create(ctx, in)
	assert.EqualError(t, err, "Insufficient stock for watch Daytona. Available: 2, Requested: 4.")
}

func TestCreateBookingStockRaceSurfacesError(t *testing.T) {
	uc, bookings, watches, customers, payments := newBookingUC()
	ctx := context.Background()

	w1 := uuid.New()
	bookings.On("TransactionHashExists", ctx, txHash).Return(false, nil)
	customers.On("FindByWallet", ctx, senderWallet).
		Return(&domain.Customer{ID: uuid.New(), WalletAddress: senderWallet}, nil)
	watches.On("FindPurchasable", ctx, mock.Anything).Return([]domain.Watch{
		{ID: w1, Name: "Royal Oak", StockQuantity: 1, IsAvailable: true},
	}, nil)
	payments.On("Verify", ctx, txHash, domain.PaymentTypeSOL).Return(domain.PaymentVerification{}, nil)
	bookings.On("Create", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrInsufficientStock)

	_, err := uc.Create(ctx, validInput(w1))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestListBookingsValidation(t *testing.T) {
	uc, _, _, customers, _ := newBookingUC()
	ctx := context.Background()

	_, _, _, err := uc.List(ctx, ListBookingsInput{SortBy: "discount"})
	assert.EqualError(t, err, `Invalid sortBy parameter. Use "totalPrice" or "createdAt".`)

	_, _, _, err = uc.List(ctx, ListBookingsInput{SortOrder: "sideways"})
	assert.EqualError(t, err, `Invalid sortOrder parameter. Use "asc" or "desc".`)

	_, _, _, err = uc.List(ctx, ListBookingsInput{CustomerID: "nope"})
	assert.EqualError(t, err, "Invalid customerId. Must be a valid UUID.")

	missing := uuid.New()
	customers.On("FindByID", ctx, missing).Return(nil, domain.ErrNotFound)
	_, _, _, err = uc.List(ctx, ListBookingsInput{CustomerID: missing.String()})
	assert.EqualError(t, err, "Customer not found.")
}

func TestListBookingsDefaults(t *testing.T) {
	uc, bookings, _, _, _ := newBookingUC()
	ctx := context.Background()

	bookings.On("List", ctx, domain.BookingFilter{SortBy: "createdAt", SortOrder: "desc", Limit: 10}).
		Return([]domain.Booking{}, int64(0), nil)

	_, _, f, err := uc.List(ctx, ListBookingsInput{})
	require.NoError(t, err)
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, "createdAt", f.SortBy)
	bookings.AssertExpectations(t)
}
