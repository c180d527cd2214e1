package app

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/watchfi/backend/internal/adapters/httpserver"
	"github.com/watchfi/backend/internal/adapters/payments/paymentmock"
	"github.com/watchfi/backend/internal/adapters/payments/solana"
	"github.com/watchfi/backend/internal/adapters/repo/postgres"
	"github.com/watchfi/backend/internal/adapters/storage/cloudinary"
	"github.com/watchfi/backend/internal/config"
	"github.com/watchfi/backend/internal/domain"
	"github.com/watchfi/backend/internal/usecase"
)

type App struct {
	DB  *gorm.DB
	Cfg config.Config

	WatchUC    *usecase.WatchUC
	BookingUC  *usecase.BookingUC
	CustomerUC *usecase.CustomerUC
	TaxonomyUC *usecase.TaxonomyUC

	Storage domain.FileStorage
	Health  domain.HealthRepo
}

func NewApp(db *gorm.DB, cfg config.Config) (*App, error) {
	watchRepo := postgres.NewWatchRepo(db)
	bookingRepo := postgres.NewBookingRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	taxonomyRepo := postgres.NewTaxonomyRepo(db)
	healthRepo := postgres.NewHealthRepo(db)

	storage := cloudinary.New(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		cfg.CloudinaryFolder,
	)

	var payments domain.PaymentProcessor
	if cfg.PaymentMode == "rpc" {
		payments = solana.NewProcessor(cfg.SolanaRPCURL)
	} else {
		payments = paymentmock.New()
		log.Info().Msg("payment verification running in mock mode")
	}

	return &App{
		DB:  db,
		Cfg: cfg,
		WatchUC: &usecase.WatchUC{
			Watches:  watchRepo,
			Taxonomy: taxonomyRepo,
			Storage:  storage,
		},
		BookingUC: &usecase.BookingUC{
			Bookings:  bookingRepo,
			Watches:   watchRepo,
			Customers: customerRepo,
			Payments:  payments,
		},
		CustomerUC: &usecase.CustomerUC{Customers: customerRepo},
		TaxonomyUC: &usecase.TaxonomyUC{Taxonomy: taxonomyRepo},
		Storage:    storage,
		Health:     healthRepo,
	}, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.WatchUC, a.BookingUC, a.CustomerUC, a.TaxonomyUC, a.Storage, a.Health, a.Cfg.AppEnv)
}

func (a *App) Migrate() error {
	if err := a.DB.AutoMigrate(
		&domain.Brand{}, &domain.Color{}, &domain.Category{},
		&domain.Concept{}, &domain.Material{},
		&domain.Watch{}, &domain.WatchPhoto{},
		&domain.WatchSpecificationHeading{}, &domain.WatchSpecificationPoint{},
		&domain.Customer{},
		&domain.Booking{}, &domain.BookingWatch{}, &domain.CryptoPayment{},
	); err != nil {
		return err
	}

	for _, stmt := range []string{
		"CREATE INDEX IF NOT EXISTS idx_watches_brand_available ON watches(brand_id, is_available)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_customer_created ON bookings(customer_id, created_at)",
	} {
		if err := a.DB.Exec(stmt).Error; err != nil {
			log.Warn().Err(err).Str("stmt", stmt).Msg("index creation failed")
		}
	}

	return nil
}
