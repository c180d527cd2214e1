package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/watchfi/backend/internal/domain"
)

type WatchRepo struct{ db *gorm.DB }

func NewWatchRepo(db *gorm.DB) *WatchRepo { return &WatchRepo{db: db} }

// filtered builds the catalog query from the typed filter spec. Soft-deleted
// watches are excluded by gorm; watches of soft-deleted brands are excluded
// through the brand join.
func (r *WatchRepo) filtered(ctx context.Context, f domain.WatchFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Watch{}).
		Joins("JOIN brands ON brands.id = watches.brand_id AND brands.deleted_at IS NULL")
	if f.Brand != "" {
		q = q.Where("LOWER(brands.name) = LOWER(?)", f.Brand)
	}
	if f.Category != "" {
		q = q.Where("EXISTS (SELECT 1 FROM watch_categories wc JOIN categories c ON c.id = wc.category_id WHERE wc.watch_id = watches.id AND LOWER(c.name) = LOWER(?))", f.Category)
	}
	if f.Concept != "" {
		q = q.Where("EXISTS (SELECT 1 FROM watch_concepts wx JOIN concepts x ON x.id = wx.concept_id WHERE wx.watch_id = watches.id AND LOWER(x.name) = LOWER(?))", f.Concept)
	}
	if f.Material != "" {
		q = q.Where("EXISTS (SELECT 1 FROM watch_materials wm JOIN materials m ON m.id = wm.material_id WHERE wm.watch_id = watches.id AND LOWER(m.name) = LOWER(?))", f.Material)
	}
	if f.Color != "" {
		q = q.Where("EXISTS (SELECT 1 FROM watch_colors wo JOIN colors o ON o.id = wo.color_id WHERE wo.watch_id = watches.id AND LOWER(o.name) = LOWER(?))", f.Color)
	}
	if f.MinPrice != nil {
		q = q.Where("watches.price >= ?", f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("watches.price <= ?", f.MaxPrice)
	}
	if f.IsAvailable != nil {
		q = q.Where("watches.is_available = ?", *f.IsAvailable)
	}
	return q
}

func (r *WatchRepo) List(ctx context.Context, f domain.WatchFilter) ([]domain.Watch, int64, error) {
	q := r.filtered(ctx, f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column := map[string]string{
		"name":      "watches.name",
		"price":     "watches.price",
		"createdAt": "watches.created_at",
	}[f.SortBy]
	if column == "" {
		column = "watches.created_at"
	}
	dir := "asc"
	if f.SortOrder == "desc" {
		dir = "desc"
	}

	offset := (f.Page - 1) * f.PageSize
	limit := f.PageSize
	if f.Offset != nil {
		offset = *f.Offset
	}
	if f.Limit != nil {
		limit = *f.Limit
	}

	var list []domain.Watch
	err := q.Order(column + " " + dir).
		Offset(offset).Limit(limit).
		Preload("Brand").
		Preload("Colors").Preload("Categories").
		Preload("Concepts").Preload("Materials").
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *WatchRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Watch, error) {
	var w domain.Watch
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Colors").Preload("Categories").
		Preload("Concepts").Preload("Materials").
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order(`"order" asc`) }).
		Preload("SpecificationHeadings.Points").
		First(&w, "watches.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *WatchRepo) FindPurchasable(ctx context.Context, ids []uuid.UUID) ([]domain.Watch, error) {
	var list []domain.Watch
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_available = true", ids).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *WatchRepo) NameOrReferenceTaken(ctx context.Context, name, referenceCode string, exclude uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.Watch{}).
		Where("name = ? OR reference_code = ?", name, referenceCode)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *WatchRepo) Create(ctx context.Context, w *domain.Watch) error {
	return r.db.WithContext(ctx).Create(w).Error
}

// Update replaces the watch row and all its associations in one transaction.
func (r *WatchRepo) Update(ctx context.Context, w *domain.Watch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Watch{ID: w.ID}).Updates(map[string]any{
			"name":              w.Name,
			"price":             w.Price,
			"reference_code":    w.ReferenceCode,
			"description":       w.Description,
			"primary_photo_url": w.PrimaryPhotoURL,
			"brand_id":          w.BrandID,
			"stock_quantity":    w.StockQuantity,
			"is_available":      w.IsAvailable,
		}).Error; err != nil {
			return err
		}
		base := &domain.Watch{ID: w.ID}
		if err := tx.Model(base).Association("Colors").Replace(w.Colors); err != nil {
			return err
		}
		if err := tx.Model(base).Association("Categories").Replace(w.Categories); err != nil {
			return err
		}
		if err := tx.Model(base).Association("Concepts").Replace(w.Concepts); err != nil {
			return err
		}
		if err := tx.Model(base).Association("Materials").Replace(w.Materials); err != nil {
			return err
		}
		if err := tx.Where("watch_id = ?", w.ID).Delete(&domain.WatchPhoto{}).Error; err != nil {
			return err
		}
		if len(w.Photos) > 0 {
			if err := tx.Create(&w.Photos).Error; err != nil {
				return err
			}
		}
		var headingIDs []uuid.UUID
		if err := tx.Model(&domain.WatchSpecificationHeading{}).
			Where("watch_id = ?", w.ID).Pluck("id", &headingIDs).Error; err != nil {
			return err
		}
		if len(headingIDs) > 0 {
			if err := tx.Where("heading_id IN ?", headingIDs).Delete(&domain.WatchSpecificationPoint{}).Error; err != nil {
				return err
			}
			if err := tx.Where("watch_id = ?", w.ID).Delete(&domain.WatchSpecificationHeading{}).Error; err != nil {
				return err
			}
		}
		if len(w.SpecificationHeadings) > 0 {
			if err := tx.Create(&w.SpecificationHeadings).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *WatchRepo) SoftDelete(ctx context.Context, id uuid.UUID) ([]string, error) {
	var w domain.Watch
	if err := r.db.WithContext(ctx).Preload("Photos").First(&w, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	urls := make([]string, 0, len(w.Photos)+1)
	if w.PrimaryPhotoURL != "" {
		urls = append(urls, w.PrimaryPhotoURL)
	}
	for _, p := range w.Photos {
		urls = append(urls, p.PhotoURL)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Watch{ID: id}).Update("is_available", false).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Watch{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return urls, nil
}
