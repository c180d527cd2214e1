package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WatchFilter is the typed query specification for catalog listings. Name
// filters match case-insensitively; soft-deleted watches and watches of
// soft-deleted brands are always excluded.
type WatchFilter struct {
	Brand    string
	Category string
	Concept  string
	Material string
	Color    string

	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	IsAvailable *bool

	SortBy    string // name | price | createdAt
	SortOrder string // asc | desc

	Page     int
	PageSize int
	Offset   *int
	Limit    *int
}

type BookingFilter struct {
	CustomerID     *uuid.UUID
	PaymentStatus  PaymentStatus
	ShipmentStatus ShipmentStatus
	Status         BookingStatus

	SortBy    string // totalPrice | createdAt
	SortOrder string

	Limit  int
	Offset int
}

type CustomerFilter struct {
	Pseudonym     string
	WalletAddress string

	SortBy    string // pseudonym | createdAt
	SortOrder string

	Limit  int
	Offset int
}

// FilterOptions is the aggregated filter vocabulary across all taxonomies.
type FilterOptions struct {
	Brands     []string `json:"brands"`
	Categories []string `json:"categories"`
	Concepts   []string `json:"concepts"`
	Materials  []string `json:"materials"`
	Colors     []string `json:"colors"`
}

type WatchRepo interface {
	List(ctx context.Context, f WatchFilter) ([]Watch, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Watch, error)
	// FindPurchasable returns the watches among ids that exist, are
	// available and are not soft-deleted.
	FindPurchasable(ctx context.Context, ids []uuid.UUID) ([]Watch, error)
	NameOrReferenceTaken(ctx context.Context, name, referenceCode string, exclude uuid.UUID) (bool, error)
	Create(ctx context.Context, w *Watch) error
	Update(ctx context.Context, w *Watch) error
	// SoftDelete tombstones the watch and returns its photo URLs so the
	// caller can clean up object storage after commit.
	SoftDelete(ctx context.Context, id uuid.UUID) ([]string, error)
}

type BookingRepo interface {
	List(ctx context.Context, f BookingFilter) ([]Booking, int64, error)
	ListAll(ctx context.Context) ([]Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	TransactionHashExists(ctx context.Context, hash string) (bool, error)
	// Create persists the booking, its line items, the payment record and
	// the per-item stock decrements in one all-or-nothing transaction.
	// A concurrent duplicate of the transaction hash yields
	// ErrDuplicateTransaction; a lost stock race yields ErrInsufficientStock.
	Create(ctx context.Context, b *Booking, items []BookingWatch, payment *CryptoPayment) (*Booking, error)
}

type CustomerRepo interface {
	List(ctx context.Context, f CustomerFilter) ([]Customer, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByWallet(ctx context.Context, wallet string) (*Customer, error)
	Create(ctx context.Context, c *Customer) error
}

type TaxonomyRepo interface {
	ListBrands(ctx context.Context) ([]Brand, error)
	FindBrand(ctx context.Context, id uuid.UUID) (*Brand, error)
	CreateBrand(ctx context.Context, b *Brand) error

	ListColors(ctx context.Context) ([]Color, error)
	FindColor(ctx context.Context, id uuid.UUID) (*Color, error)
	CreateColor(ctx context.Context, c *Color) error

	ListCategories(ctx context.Context) ([]Category, error)
	FindCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	CreateCategory(ctx context.Context, c *Category) error

	ListConcepts(ctx context.Context) ([]Concept, error)
	FindConcept(ctx context.Context, id uuid.UUID) (*Concept, error)
	CreateConcept(ctx context.Context, c *Concept) error

	ListMaterials(ctx context.Context) ([]Material, error)
	FindMaterial(ctx context.Context, id uuid.UUID) (*Material, error)
	CreateMaterial(ctx context.Context, m *Material) error

	// CountByIDs report how many of the given ids exist, per entity. A
	// count mismatch substitutes for per-id existence checks.
	CountColors(ctx context.Context, ids []uuid.UUID) (int64, error)
	CountCategories(ctx context.Context, ids []uuid.UUID) (int64, error)
	CountConcepts(ctx context.Context, ids []uuid.UUID) (int64, error)
	CountMaterials(ctx context.Context, ids []uuid.UUID) (int64, error)

	FilterOptions(ctx context.Context) (*FilterOptions, error)
}

// FileStorage is the object-storage collaborator for images. Upload returns
// the public URL of the stored object.
type FileStorage interface {
	Upload(ctx context.Context, data []byte, filename, contentType, folder string) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

// PaymentVerification is what the payment network reports for a transaction.
type PaymentVerification struct {
	Confirmations int
	Confirmed     bool
	BlockTime     *time.Time
}

// PaymentProcessor confirms crypto transactions. The production adapter asks
// an RPC node; the mock adapter stands in for it in dev and tests.
type PaymentProcessor interface {
	Verify(ctx context.Context, transactionHash string, network PaymentType) (PaymentVerification, error)
}

// HealthRepo probes datastore connectivity.
type HealthRepo interface {
	Ping(ctx context.Context) error
}
