package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/watchfi/backend/internal/domain"
)

// newTestDB opens an in-memory database with the full schema. TranslateError
// is on so unique violations surface as gorm.ErrDuplicatedKey, same as the
// production config.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection, or every pooled conn would get its own empty :memory: db.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.Brand{}, &domain.Color{}, &domain.Category{},
		&domain.Concept{}, &domain.Material{},
		&domain.Watch{}, &domain.WatchPhoto{},
		&domain.WatchSpecificationHeading{}, &domain.WatchSpecificationPoint{},
		&domain.Customer{},
		&domain.Booking{}, &domain.BookingWatch{}, &domain.CryptoPayment{},
	))
	return db
}

func seedBrand(t *testing.T, db *gorm.DB, name string) domain.Brand {
	t.Helper()
	b := domain.Brand{ID: uuid.New(), Name: name, LogoURL: "https://cdn.example.com/" + name + ".png"}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func seedWatch(t *testing.T, db *gorm.DB, brandID uuid.UUID, name, ref string, price int64, stock int) domain.Watch {
	t.Helper()
	w := domain.Watch{
		ID:              uuid.New(),
		Name:            name,
		Price:           decimal.NewFromInt(price),
		ReferenceCode:   ref,
		PrimaryPhotoURL: "https://cdn.example.com/" + ref + ".jpg",
		BrandID:         brandID,
		StockQuantity:   stock,
		IsAvailable:     stock > 0,
	}
	require.NoError(t, db.Create(&w).Error)
	return w
}

func seedCustomer(t *testing.T, db *gorm.DB, wallet string) domain.Customer {
	t.Helper()
	c := domain.Customer{ID: uuid.New(), Pseudonym: "collector", WalletAddress: wallet}
	require.NoError(t, db.Create(&c).Error)
	return c
}
