package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/watchfi/backend/internal/domain"
)

type WatchUC struct {
	Watches  domain.WatchRepo
	Taxonomy domain.TaxonomyRepo
	Storage  domain.FileStorage
}

type WatchPhotoInput struct {
	PhotoURL string `json:"photoUrl"`
	AltText  string `json:"altText"`
	Order    int    `json:"order"`
}

type SpecificationPointInput struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SpecificationHeadingInput struct {
	Heading     string                    `json:"heading"`
	Description string                    `json:"description"`
	Points      []SpecificationPointInput `json:"specificationPoints"`
}

type CreateWatchInput struct {
	Name            string                      `json:"name"`
	Price           decimal.Decimal             `json:"price"`
	ReferenceCode   string                      `json:"referenceCode"`
	Description     string                      `json:"description"`
	PrimaryPhotoURL string                      `json:"primaryPhotoUrl"`
	BrandID         string                      `json:"brandId"`
	StockQuantity   int                         `json:"stockQuantity"`
	IsAvailable     *bool                       `json:"isAvailable"`
	Colors          []string                    `json:"colors"`
	Categories      []string                    `json:"categories"`
	Concepts        []string                    `json:"concepts"`
	Materials       []string                    `json:"materials"`
	Photos          []WatchPhotoInput           `json:"photos"`
	SpecHeadings    []SpecificationHeadingInput `json:"specificationHeadings"`
}

func (uc *WatchUC) List(ctx context.Context, f domain.WatchFilter) ([]domain.Watch, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 10
	}
	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		return nil, 0, domain.Invalid("Invalid minPrice. Must be a non-negative number.")
	}
	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		return nil, 0, domain.Invalid("Invalid maxPrice. Must be a non-negative number.")
	}
	switch f.SortBy {
	case "":
		f.SortBy = "createdAt"
	case "name", "price", "createdAt":
	default:
		return nil, 0, domain.Invalid(`Invalid sortBy parameter. Use "name", "price" or "createdAt".`)
	}
	if f.SortOrder == "" {
		f.SortOrder = "desc"
	}
	if f.SortOrder != "asc" && f.SortOrder != "desc" {
		return nil, 0, domain.Invalid(`Invalid sortOrder parameter. Use "asc" or "desc".`)
	}
	return uc.Watches.List(ctx, f)
}

func (uc *WatchUC) GetByID(ctx context.Context, id string) (*domain.Watch, error) {
	wid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.Invalid("Invalid watch ID. Must be a valid UUID.")
	}
	return uc.Watches.FindByID(ctx, wid)
}

func (uc *WatchUC) Create(ctx context.Context, in CreateWatchInput) (*domain.Watch, error) {
	w, err := uc.buildWatch(ctx, in, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if err := uc.Watches.Create(ctx, w); err != nil {
		return nil, err
	}
	return uc.Watches.FindByID(ctx, w.ID)
}

// Update applies a full replacement of the watch's own columns and its
// associations, with the same validation as Create.
func (uc *WatchUC) Update(ctx context.Context, id string, in CreateWatchInput) (*domain.Watch, error) {
	wid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.Invalid("Invalid watch ID. Must be a valid UUID.")
	}
	if _, err := uc.Watches.FindByID(ctx, wid); err != nil {
		return nil, err
	}
	w, err := uc.buildWatch(ctx, in, wid)
	if err != nil {
		return nil, err
	}
	if err := uc.Watches.Update(ctx, w); err != nil {
		return nil, err
	}
	return uc.Watches.FindByID(ctx, wid)
}

// Delete tombstones the watch and removes its photos from object storage
// best-effort; a failed remote delete never undoes the tombstone.
func (uc *WatchUC) Delete(ctx context.Context, id string) error {
	wid, err := uuid.Parse(id)
	if err != nil {
		return domain.Invalid("Invalid watch ID. Must be a valid UUID.")
	}
	urls, err := uc.Watches.SoftDelete(ctx, wid)
	if err != nil {
		return err
	}
	if uc.Storage != nil {
		for _, u := range urls {
			if err := uc.Storage.Delete(ctx, u); err != nil {
				log.Warn().Err(err).Str("url", u).Msg("photo cleanup failed")
			}
		}
	}
	return nil
}

func (uc *WatchUC) buildWatch(ctx context.Context, in CreateWatchInput, existing uuid.UUID) (*domain.Watch, error) {
	if in.Name == "" || len(in.Name) > 255 {
		return nil, domain.Invalid("Invalid or missing name. Must be a string up to 255 characters.")
	}
	if !in.Price.IsPositive() || in.Price.GreaterThan(maxAmount) {
		return nil, domain.Invalid("Invalid or missing price. Must be a number between 0 and 99999999.99.")
	}
	if in.ReferenceCode == "" || len(in.ReferenceCode) > 255 {
		return nil, domain.Invalid("Invalid or missing referenceCode. Must be a string up to 255 characters.")
	}
	if in.PrimaryPhotoURL == "" || len(in.PrimaryPhotoURL) > 500 {
		return nil, domain.Invalid("Invalid or missing primaryPhotoUrl. Must be a string up to 500 characters.")
	}
	brandID, err := uuid.Parse(in.BrandID)
	if err != nil {
		return nil, domain.Invalid("Invalid or missing brandId. Must be a valid UUID.")
	}
	if in.StockQuantity < 0 {
		return nil, domain.Invalid("Invalid stockQuantity. Must be a non-negative number.")
	}
	isAvailable := true
	if in.IsAvailable != nil {
		isAvailable = *in.IsAvailable
	}
	if in.StockQuantity == 0 && isAvailable {
		return nil, domain.Invalid("Invalid isAvailable. Must be false if stockQuantity is 0.")
	}

	if _, err := uc.Taxonomy.FindBrand(ctx, brandID); err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.Invalid("Brand not found.")
		}
		return nil, err
	}

	taken, err := uc.Watches.NameOrReferenceTaken(ctx, in.Name, in.ReferenceCode, existing)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.Invalid("Watch name or referenceCode already exists.")
	}

	colors, err := uc.resolveIDs(ctx, in.Colors, uc.Taxonomy.CountColors, "color")
	if err != nil {
		return nil, err
	}
	categories, err := uc.resolveIDs(ctx, in.Categories, uc.Taxonomy.CountCategories, "category")
	if err != nil {
		return nil, err
	}
	concepts, err := uc.resolveIDs(ctx, in.Concepts, uc.Taxonomy.CountConcepts, "concept")
	if err != nil {
		return nil, err
	}
	materials, err := uc.resolveIDs(ctx, in.Materials, uc.Taxonomy.CountMaterials, "material")
	if err != nil {
		return nil, err
	}

	for _, p := range in.Photos {
		if p.PhotoURL == "" || len(p.PhotoURL) > 500 {
			return nil, domain.Invalid("Invalid photoUrl in photos. Must be a string up to 500 characters.")
		}
		if len(p.AltText) > 255 {
			return nil, domain.Invalid("Invalid altText in photos. Must be a string up to 255 characters or omitted.")
		}
		if p.Order < 0 {
			return nil, domain.Invalid("Invalid order in photos. Must be a non-negative integer or omitted.")
		}
	}
	for _, h := range in.SpecHeadings {
		if h.Heading == "" || len(h.Heading) > 255 {
			return nil, domain.Invalid("Invalid heading in specificationHeadings. Must be a string up to 255 characters.")
		}
		if len(h.Description) > 255 {
			return nil, domain.Invalid("Invalid description in specificationHeadings. Must be a string up to 255 characters or omitted.")
		}
		for _, p := range h.Points {
			if p.Label == "" || len(p.Label) > 255 {
				return nil, domain.Invalid("Invalid label in specificationPoints. Must be a string up to 255 characters.")
			}
			if p.Value == "" || len(p.Value) > 500 {
				return nil, domain.Invalid("Invalid value in specificationPoints. Must be a string up to 500 characters.")
			}
		}
	}

	id := existing
	if id == uuid.Nil {
		id = uuid.New()
	}
	w := &domain.Watch{
		ID:              id,
		Name:            in.Name,
		Price:           in.Price,
		ReferenceCode:   in.ReferenceCode,
		Description:     in.Description,
		PrimaryPhotoURL: in.PrimaryPhotoURL,
		BrandID:         brandID,
		StockQuantity:   in.StockQuantity,
		IsAvailable:     isAvailable,
	}
	for _, cid := range colors {
		w.Colors = append(w.Colors, domain.Color{ID: cid})
	}
	for _, cid := range categories {
		w.Categories = append(w.Categories, domain.Category{ID: cid})
	}
	for _, cid := range concepts {
		w.Concepts = append(w.Concepts, domain.Concept{ID: cid})
	}
	for _, mid := range materials {
		w.Materials = append(w.Materials, domain.Material{ID: mid})
	}
	for _, p := range in.Photos {
		w.Photos = append(w.Photos, domain.WatchPhoto{
			ID:       uuid.New(),
			WatchID:  id,
			PhotoURL: p.PhotoURL,
			AltText:  p.AltText,
			Order:    p.Order,
		})
	}
	for _, h := range in.SpecHeadings {
		heading := domain.WatchSpecificationHeading{
			ID:          uuid.New(),
			WatchID:     id,
			Heading:     h.Heading,
			Description: h.Description,
		}
		for _, p := range h.Points {
			heading.Points = append(heading.Points, domain.WatchSpecificationPoint{
				ID:        uuid.New(),
				HeadingID: heading.ID,
				Label:     p.Label,
				Value:     p.Value,
			})
		}
		w.SpecificationHeadings = append(w.SpecificationHeadings, heading)
	}
	return w, nil
}

func (uc *WatchUC) resolveIDs(ctx context.Context, raw []string,
	count func(context.Context, []uuid.UUID) (int64, error), entity string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, domain.Invalid("One or more " + entity + " IDs are invalid.")
		}
		ids = append(ids, id)
	}
	n, err := count(ctx, ids)
	if err != nil {
		return nil, err
	}
	if n != int64(len(ids)) {
		return nil, domain.Invalid("One or more " + entity + " IDs are invalid.")
	}
	return ids, nil
}
