package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/watchfi/backend/internal/domain"
)

type TaxonomyRepo struct{ db *gorm.DB }

func NewTaxonomyRepo(db *gorm.DB) *TaxonomyRepo { return &TaxonomyRepo{db: db} }

func create[T any](ctx context.Context, db *gorm.DB, entity string, v *T) error {
	err := db.WithContext(ctx).Create(v).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.Invalid(entity + " name already exists.")
	}
	return err
}

func find[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) (*T, error) {
	var v T
	if err := db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func countIDs[T any](ctx context.Context, db *gorm.DB, ids []uuid.UUID) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(new(T)).Where("id IN ?", ids).Count(&n).Error
	return n, err
}

func (r *TaxonomyRepo) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	var list []domain.Brand
	err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

func (r *TaxonomyRepo) FindBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	return find[domain.Brand](ctx, r.db, id)
}

func (r *TaxonomyRepo) CreateBrand(ctx context.Context, b *domain.Brand) error {
	return create(ctx, r.db, "Brand", b)
}

func (r *TaxonomyRepo) ListColors(ctx context.Context) ([]domain.Color, error) {
	var list []domain.Color
	err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

func (r *TaxonomyRepo) FindColor(ctx context.Context, id uuid.UUID) (*domain.Color, error) {
	return find[domain.Color](ctx, r.db, id)
}

func (r *TaxonomyRepo) CreateColor(ctx context.Context, c *domain.Color) error {
	return create(ctx, r.db, "Color", c)
}

func (r *TaxonomyRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var list []domain.Category
	err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

func (r *TaxonomyRepo) FindCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return find[domain.Category](ctx, r.db, id)
}

func (r *TaxonomyRepo) CreateCategory(ctx context.Context, c *domain.Category) error {
	return create(ctx, r.db, "Category", c)
}

func (r *TaxonomyRepo) ListConcepts(ctx context.Context) ([]domain.Concept, error) {
	var list []domain.Concept
	err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

func (r *TaxonomyRepo) FindConcept(ctx context.Context, id uuid.UUID) (*domain.Concept, error) {
	return find[domain.Concept](ctx, r.db, id)
}

func (r *TaxonomyRepo) CreateConcept(ctx context.Context, c *domain.Concept) error {
	return create(ctx, r.db, "Concept", c)
}

func (r *TaxonomyRepo) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	var list []domain.Material
	err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

func (r *TaxonomyRepo) FindMaterial(ctx context.Context, id uuid.UUID) (*domain.Material, error) {
	return find[domain.Material](ctx, r.db, id)
}

func (r *TaxonomyRepo) CreateMaterial(ctx context.Context, m *domain.Material) error {
	return create(ctx, r.db, "Material", m)
}

func (r *TaxonomyRepo) CountColors(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return countIDs[domain.Color](ctx, r.db, ids)
}

func (r *TaxonomyRepo) CountCategories(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return countIDs[domain.Category](ctx, r.db, ids)
}

func (r *TaxonomyRepo) CountConcepts(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return countIDs[domain.Concept](ctx, r.db, ids)
}

func (r *TaxonomyRepo) CountMaterials(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return countIDs[domain.Material](ctx, r.db, ids)
}

func (r *TaxonomyRepo) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	opts := &domain.FilterOptions{
		Brands:     []string{},
		Categories: []string{},
		Concepts:   []string{},
		Materials:  []string{},
		Colors:     []string{},
	}
	db := r.db.WithContext(ctx)
	if err := db.Model(&domain.Brand{}).Order("name asc").Pluck("name", &opts.Brands).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Category{}).Order("name asc").Pluck("name", &opts.Categories).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Concept{}).Order("name asc").Pluck("name", &opts.Concepts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Material{}).Order("name asc").Pluck("name", &opts.Materials).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Color{}).Order("name asc").Pluck("name", &opts.Colors).Error; err != nil {
		return nil, err
	}
	return opts, nil
}
