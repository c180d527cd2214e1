package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/watchfi/backend/internal/domain"
)

// maxAmount is the upper bound for every money field, matching the
// DECIMAL(10,2) columns.
var maxAmount = decimal.RequireFromString("99999999.99")

type BookingUC struct {
	Bookings  domain.BookingRepo
	Watches   domain.WatchRepo
	Customers domain.CustomerRepo
	Payments  domain.PaymentProcessor
}

type BookingItemInput struct {
	ID       string          `json:"id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type CreateBookingInput struct {
	CustomerID      string             `json:"customerId"`
	WatchItems      []BookingItemInput `json:"watchItems"`
	Discount        decimal.Decimal    `json:"discount"`
	TransactionHash string             `json:"transactionHash"`
	PaymentType     string             `json:"paymentType"`
	SenderWallet    string             `json:"senderWallet"`
	ReceiverWallet  string             `json:"receiverWallet"`
	USDValue        decimal.Decimal    `json:"usdValue"`
	ShipmentAddress string             `json:"shipmentAddress"`
	PaymentStatus   string             `json:"paymentStatus"`
	ShipmentStatus  string             `json:"shipmentStatus"`
	Status          string             `json:"status"`
}

// Create runs the whole booking workflow: fail-fast validation, pricing,
// payment verification, then one atomic persist (booking + line items +
// payment record + stock decrements). Nothing is mutated on any failure.
func (uc *BookingUC) Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error) {
	if !domain.IsValidWalletAddress(in.CustomerID) {
		return nil, domain.Invalid("Invalid Solana wallet address.")
	}
	if len(in.WatchItems) == 0 {
		return nil, domain.Invalid("Invalid or missing watchItems. Must be a non-empty array.")
	}
	if in.Discount.IsNegative() || in.Discount.GreaterThan(maxAmount) {
		return nil, domain.Invalid("Invalid discount. Must be between 0 and 99999999.99.")
	}
	paymentType := domain.PaymentType(in.PaymentType)
	if !paymentType.Valid() {
		return nil, domain.Invalid("Invalid paymentType. Must be SOL or USDC.")
	}
	if in.TransactionHash == "" || len(in.TransactionHash) > 88 {
		return nil, domain.Invalid("Invalid transactionHash. Must be a string up to 88 characters.")
	}
	exists, err := uc.Bookings.TransactionHashExists(ctx, in.TransactionHash)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateTransaction
	}
	if !domain.IsValidWalletAddress(in.SenderWallet) {
		return nil, domain.Invalid("Invalid Solana wallet address.")
	}
	if !domain.IsValidWalletAddress(in.ReceiverWallet) {
		return nil, domain.Invalid("Invalid Solana wallet address.")
	}
	if !in.USDValue.IsPositive() || in.USDValue.GreaterThan(maxAmount) {
		return nil, domain.Invalid("Invalid usdValue. Must be a number between 0 and 99999999.99.")
	}
	if len(in.ShipmentAddress) > 256 {
		return nil, domain.Invalid("Invalid shipmentAddress. Must be a string up to 256 characters.")
	}

	paymentStatus := domain.PaymentStatus(defaultStr(in.PaymentStatus, string(domain.PaymentStatusPending)))
	if !paymentStatus.Valid() {
		return nil, domain.Invalid("Invalid paymentStatus. Must be PENDING, PAID, FAILED, or CONFIRMING.")
	}
	shipmentStatus := domain.ShipmentStatus(defaultStr(in.ShipmentStatus, string(domain.ShipmentStatusPending)))
	if !shipmentStatus.Valid() {
		return nil, domain.Invalid("Invalid shipmentStatus. Must be PENDING, SHIPPED, or DELIVERED.")
	}
	status := domain.BookingStatus(defaultStr(in.Status, string(domain.BookingStatusPending)))
	if !status.Valid() {
		return nil, domain.Invalid("Invalid status. Must be PENDING, CONFIRMED, CANCELLED, or COMPLETED.")
	}

	watchIDs := make([]uuid.UUID, 0, len(in.WatchItems))
	for _, item := range in.WatchItems {
		id, err := uuid.Parse(item.ID)
		if err != nil {
			return nil, domain.Invalid("Invalid watchId in watchItems. Must be a valid UUID.")
		}
		if item.Quantity < 1 {
			return nil, domain.Invalid("Invalid quantity in watchItems. Must be a positive integer.")
		}
		if !item.Price.IsPositive() || item.Price.GreaterThan(maxAmount) {
			return nil, domain.Invalid("Invalid price in watchItems. Must be a number between 0 and 99999999.99.")
		}
		watchIDs = append(watchIDs, id)
	}

	// No duplicate watch within one order.
	seen := make(map[uuid.UUID]struct{}, len(watchIDs))
	for _, id := range watchIDs {
		if _, dup := seen[id]; dup {
			return nil, domain.Invalid("Duplicate watchIds in watchItems are not allowed.")
		}
		seen[id] = struct{}{}
	}

	// Customer is resolved strictly by the sender wallet, never by a
	// submitted customer id, so nobody can book on another customer's
	// account while paying from their own wallet.
	customer, err := uc.Customers.FindByWallet(ctx, in.SenderWallet)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.Invalid("Customer not found.")
		}
		return nil, err
	}
	if customer.WalletAddress != in.SenderWallet {
		return nil, domain.Invalid("Invalid senderWallet. Must match customer's wallet address.")
	}

	watches, err := uc.Watches.FindPurchasable(ctx, watchIDs)
	if err != nil {
		return nil, err
	}
	if len(watches) != len(in.WatchItems) {
		return nil, domain.Invalid("One or more watches are invalid, unavailable, or deleted.")
	}
	byID := make(map[uuid.UUID]domain.Watch, len(watches))
	for _, w := range watches {
		byID[w.ID] = w
	}
	for i, item := range in.WatchItems {
		w := byID[watchIDs[i]]
		if item.Quantity > w.StockQuantity {
			return nil, domain.Invalid(fmt.Sprintf(
				"Insufficient stock for watch %s. Available: %d, Requested: %d.",
				w.Name, w.StockQuantity, item.Quantity))
		}
	}

	subtotal := decimal.Zero
	items := make([]domain.BookingWatch, 0, len(in.WatchItems))
	for i, item := range in.WatchItems {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		items = append(items, domain.BookingWatch{
			ID:        uuid.New(),
			WatchID:   watchIDs[i],
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		})
	}
	totalPrice := subtotal.Sub(in.Discount)
	if totalPrice.IsNegative() {
		totalPrice = decimal.Zero
	}

	verification, err := uc.Payments.Verify(ctx, in.TransactionHash, paymentType)
	if err != nil {
		return nil, err
	}
	isConfirmed := verification.Confirmed ||
		paymentStatus == domain.PaymentStatusPaid ||
		paymentStatus == domain.PaymentStatusConfirming
	blockTime := verification.BlockTime
	if isConfirmed && blockTime == nil {
		now := time.Now()
		blockTime = &now
	}

	booking := &domain.Booking{
		ID:              uuid.New(),
		CustomerID:      customer.ID,
		TotalPrice:      totalPrice,
		Discount:        in.Discount,
		PaymentStatus:   paymentStatus,
		ShipmentStatus:  shipmentStatus,
		Status:          status,
		ShipmentAddress: in.ShipmentAddress,
	}
	payment := &domain.CryptoPayment{
		ID:              uuid.New(),
		TransactionHash: in.TransactionHash,
		PaymentType:     paymentType,
		Amount:          totalPrice,
		USDValue:        in.USDValue,
		SenderWallet:    in.SenderWallet,
		ReceiverWallet:  in.ReceiverWallet,
		Confirmations:   verification.Confirmations,
		IsConfirmed:     isConfirmed,
		BlockTime:       blockTime,
	}

	return uc.Bookings.Create(ctx, booking, items, payment)
}

type ListBookingsInput struct {
	CustomerID     string
	PaymentStatus  string
	ShipmentStatus string
	Status         string
	SortBy         string
	SortOrder      string
	Limit          int
	Offset         int
}

func (uc *BookingUC) List(ctx context.Context, in ListBookingsInput) ([]domain.Booking, int64, domain.BookingFilter, error) {
	f := domain.BookingFilter{
		SortBy:    defaultStr(in.SortBy, "createdAt"),
		SortOrder: defaultStr(in.SortOrder, "desc"),
		Limit:     in.Limit,
		Offset:    in.Offset,
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
	if f.SortBy != "totalPrice" && f.SortBy != "createdAt" {
		return nil, 0, f, domain.Invalid(`Invalid sortBy parameter. Use "totalPrice" or "createdAt".`)
	}
	if f.SortOrder != "asc" && f.SortOrder != "desc" {
		return nil, 0, f, domain.Invalid(`Invalid sortOrder parameter. Use "asc" or "desc".`)
	}
	if in.CustomerID != "" {
		id, err := uuid.Parse(in.CustomerID)
		if err != nil {
			return nil, 0, f, domain.Invalid("Invalid customerId. Must be a valid UUID.")
		}
		if _, err := uc.Customers.FindByID(ctx, id); err != nil {
			if err == domain.ErrNotFound {
				return nil, 0, f, domain.Invalid("Customer not found.")
			}
			return nil, 0, f, err
		}
		f.CustomerID = &id
	}
	if in.PaymentStatus != "" {
		ps := domain.PaymentStatus(in.PaymentStatus)
		if !ps.Valid() {
			return nil, 0, f, domain.Invalid("Invalid paymentStatus. Must be PENDING, PAID, FAILED, or CONFIRMING.")
		}
		f.PaymentStatus = ps
	}
	if in.ShipmentStatus != "" {
		ss := domain.ShipmentStatus(in.ShipmentStatus)
		if !ss.Valid() {
			return nil, 0, f, domain.Invalid("Invalid shipmentStatus. Must be PENDING, SHIPPED, or DELIVERED.")
		}
		f.ShipmentStatus = ss
	}
	if in.Status != "" {
		st := domain.BookingStatus(in.Status)
		if !st.Valid() {
			return nil, 0, f, domain.Invalid("Invalid status. Must be PENDING, CONFIRMED, CANCELLED, or COMPLETED.")
		}
		f.Status = st
	}

	list, total, err := uc.Bookings.List(ctx, f)
	return list, total, f, err
}

func (uc *BookingUC) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	bid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.Invalid("Invalid booking ID. Must be a valid UUID.")
	}
	return uc.Bookings.FindByID(ctx, bid)
}

func (uc *BookingUC) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return uc.Bookings.ListAll(ctx)
}

func defaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
