package domain

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Pseudonym     string    `gorm:"size:100" json:"pseudonym"`
	WalletAddress string    `gorm:"size:44;uniqueIndex;not null" json:"walletAddress"`
	Bookings      []Booking `json:"bookings,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
