// Package mocks holds hand-rolled testify mocks for the domain ports.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/watchfi/backend/internal/domain"
)

type WatchRepo struct{ mock.Mock }

func (m *WatchRepo) List(ctx context.Context, f domain.WatchFilter) ([]domain.Watch, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Watch), args.Get(1).(int64), args.Error(2)
}

func (m *WatchRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Watch, error) {
	args := m.Called(ctx, id)
	if w := args.Get(0); w != nil {
		return w.(*domain.Watch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WatchRepo) FindPurchasable(ctx context.Context, ids []uuid.UUID) ([]domain.Watch, error) {
	args := m.Called(ctx, ids)
	if w := args.Get(0); w != nil {
		return w.([]domain.Watch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WatchRepo) NameOrReferenceTaken(ctx context.Context, name, referenceCode string, exclude uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, referenceCode, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *WatchRepo) Create(ctx context.Context, w *domain.Watch) error {
	return m.Called(ctx, w).Error(0)
}

func (m *WatchRepo) Update(ctx context.Context, w *domain.Watch) error {
	return m.Called(ctx, w).Error(0)
}

func (m *WatchRepo) SoftDelete(ctx context.Context, id uuid.UUID) ([]string, error) {
	args := m.Called(ctx, id)
	if urls := args.Get(0); urls != nil {
		return urls.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type BookingRepo struct{ mock.Mock }

func (m *BookingRepo) List(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *BookingRepo) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.([]domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BookingRepo) TransactionHashExists(ctx context.Context, hash string) (bool, error) {
	args := m.Called(ctx, hash)
	return args.Bool(0), args.Error(1)
}

func (m *BookingRepo) Create(ctx context.Context, b *domain.Booking, items []domain.BookingWatch, payment *domain.CryptoPayment) (*domain.Booking, error) {
	args := m.Called(ctx, b, items, payment)
	if out := args.Get(0); out != nil {
		return out.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type CustomerRepo struct{ mock.Mock }

func (m *CustomerRepo) List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *CustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CustomerRepo) FindByWallet(ctx context.Context, wallet string) (*domain.Customer, error) {
	args := m.Called(ctx, wallet)
	if c := args.Get(0); c != nil {
		return c.(*domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	return m.Called(ctx, c).Error(0)
}

type PaymentProcessor struct{ mock.Mock }

func (m *PaymentProcessor) Verify(ctx context.Context, transactionHash string, network domain.PaymentType) (domain.PaymentVerification, error) {
	args := m.Called(ctx, transactionHash, network)
	return args.Get(0).(domain.PaymentVerification), args.Error(1)
}

type FileStorage struct{ mock.Mock }

func (m *FileStorage) Upload(ctx context.Context, data []byte, filename, contentType, folder string) (string, error) {
	args := m.Called(ctx, data, filename, contentType, folder)
	return args.String(0), args.Error(1)
}

func (m *FileStorage) Delete(ctx context.Context, publicURL string) error {
	return m.Called(ctx, publicURL).Error(0)
}

type TaxonomyRepo struct{ mock.Mock }

func (m *TaxonomyRepo) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.([]domain.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaxonomyRepo) FindBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaxonomyRepo) CreateBrand(ctx context.Context, b *domain.Brand) error {
	return m.Called(ctx, b).Error(0)
}

func (m *TaxonomyRepo) ListColors(ctx context.Context) ([]domain.Color, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]domain.Color), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaxonomyRepo) FindColor(ctx context.Context, id uuid.UUID) (*domain.Color, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Color), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaxonomyRepo) CreateColor(ctx context.Context, c *domain.Color) error {
	return m.Called(ctx, c).Error(0)
}

func (m *TaxonomyRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaxonomyRepo) FindCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaxonomyRepo) CreateCategory(ctx context.Context, c *domain.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *TaxonomyRepo) ListConcepts(ctx context.Context) ([]domain.Concept, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]domain.Concept), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaxonomyRepo) FindConcept(ctx context.Context, id uuid.UUID) (*domain.Concept, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Concept), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaxonomyRepo) CreateConcept(ctx context.Context, c *domain.Concept) error {
	return m.Called(ctx, c).Error(0)
}

func (m *TaxonomyRepo) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	args := m.Called(ctx)
	if mat := args.Get(0); mat != nil {
		return mat.([]domain.Material), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaxonomyRepo) FindMaterial(ctx context.Context, id uuid.UUID) (*domain.Material, error) {
	args := m.Called(ctx, id)
	if mat := args.Get(0); mat != nil {
		return mat.(*domain.Material), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaxonomyRepo) CreateMaterial(ctx context.Context, mat *domain.Material) error {
	return m.Called(ctx, mat).Error(0)
}

func (m *TaxonomyRepo) CountColors(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TaxonomyRepo) CountCategories(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TaxonomyRepo) CountConcepts(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TaxonomyRepo) CountMaterials(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TaxonomyRepo) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	args := m.Called(ctx)
	if o := args.Get(0); o != nil {
		return o.(*domain.FilterOptions), args.Error(1)
	}
	return nil, args.Error(1)
}
