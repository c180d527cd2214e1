package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusPaid       PaymentStatus = "PAID"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusConfirming PaymentStatus = "CONFIRMING"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusConfirming:
		return true
	}
	return false
}

type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "PENDING"
	ShipmentStatusShipped   ShipmentStatus = "SHIPPED"
	ShipmentStatusDelivered ShipmentStatus = "DELIVERED"
)

func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentStatusPending, ShipmentStatusShipped, ShipmentStatusDelivered:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

type PaymentType string

const (
	PaymentTypeSOL  PaymentType = "SOL"
	PaymentTypeUSDC PaymentType = "USDC"
)

func (t PaymentType) Valid() bool {
	return t == PaymentTypeSOL || t == PaymentTypeUSDC
}

type Booking struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;index;not null" json:"customerId"`
	Customer        *Customer       `json:"customer,omitempty"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	Discount        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"discount"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(20);not null;index" json:"paymentStatus"`
	ShipmentStatus  ShipmentStatus  `gorm:"type:varchar(20);not null;index" json:"shipmentStatus"`
	Status          BookingStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	ShipmentAddress string          `gorm:"size:256" json:"shipmentAddress,omitempty"`

	Watches        []BookingWatch  `json:"watches,omitempty"`
	CryptoPayments []CryptoPayment `json:"cryptoPayments,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingWatch is a line item. UnitPrice freezes the price at purchase time so
// later catalog changes never rewrite historical bookings.
type BookingWatch struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BookingID uuid.UUID       `gorm:"type:uuid;index;not null" json:"bookingId"`
	WatchID   uuid.UUID       `gorm:"type:uuid;index;not null" json:"watchId"`
	Watch     *Watch          `json:"watch,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CryptoPayment records the on-chain transaction tied to a booking. The
// transaction hash is globally unique and acts as the idempotency key for the
// whole booking workflow.
type CryptoPayment struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BookingID       uuid.UUID       `gorm:"type:uuid;index;not null" json:"bookingId"`
	TransactionHash string          `gorm:"size:88;uniqueIndex;not null" json:"transactionHash"`
	PaymentType     PaymentType     `gorm:"type:varchar(10);not null" json:"paymentType"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	USDValue        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"usdValue"`
	SenderWallet    string          `gorm:"size:44;not null" json:"senderWallet"`
	ReceiverWallet  string          `gorm:"size:44;not null" json:"receiverWallet"`
	Confirmations   int             `gorm:"not null;default:0" json:"confirmations"`
	IsConfirmed     bool            `gorm:"not null;default:false" json:"isConfirmed"`
	BlockTime       *time.Time      `json:"blockTime,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}
