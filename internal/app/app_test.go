package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/watchfi/backend/internal/domain"
)

func TestMigrateCreatesSchema(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	a := &App{DB: db}
	require.NoError(t, a.Migrate())

	for _, model := range []any{
		&domain.Brand{}, &domain.Watch{}, &domain.Customer{},
		&domain.Booking{}, &domain.BookingWatch{}, &domain.CryptoPayment{},
	} {
		assert.True(t, db.Migrator().HasTable(model))
	}
	assert.True(t, db.Migrator().HasIndex(&domain.CryptoPayment{}, "TransactionHash"))
}
