package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/watchfi/backend/internal/domain"
)

type TaxonomyUC struct {
	Taxonomy domain.TaxonomyRepo
}

type CreateBrandInput struct {
	Name        string `json:"name"`
	LogoURL     string `json:"logoUrl"`
	Description string `json:"description"`
}

func (uc *TaxonomyUC) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return uc.Taxonomy.ListBrands(ctx)
}

func (uc *TaxonomyUC) GetBrand(ctx context.Context, id string) (*domain.Brand, error) {
	bid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.Invalid("Invalid brand ID. Must be a valid UUID.")
	}
	return uc.Taxonomy.FindBrand(ctx, bid)
}

func (uc *TaxonomyUC) CreateBrand(ctx context.Context, in CreateBrandInput) (*domain.Brand, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("Brand name is required.")
	}
	if in.LogoURL == "" {
		return nil, domain.Invalid("Brand logo (file or URL) is required.")
	}
	b := &domain.Brand{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(in.Name),
		LogoURL:     in.LogoURL,
		Description: in.Description,
	}
	if err := uc.Taxonomy.CreateBrand(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

type CreateColorInput struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

func (uc *TaxonomyUC) ListColors(ctx context.Context) ([]domain.Color, error) {
	return uc.Taxonomy.ListColors(ctx)
}

func (uc *TaxonomyUC) GetColor(ctx context.Context, id string) (*domain.Color, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.Invalid("Invalid color ID. Must be a valid UUID.")
	}
	return uc.Taxonomy.FindColor(ctx, cid)
}

func (uc *TaxonomyUC) CreateColor(ctx context.Context, in CreateColorInput) (*domain.Color, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("Color name is required.")
	}
	if in.Hex != "" && (len(in.Hex) != 7 || in.Hex[0] != '#') {
		return nil, domain.Invalid("Invalid hex. Must be a #RRGGBB value.")
	}
	c := &domain.Color{ID: uuid.New(), Name: strings.TrimSpace(in.Name), Hex: in.Hex}
	if err := uc.Taxonomy.CreateColor(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

type CreateNamedInput struct {
	Name string `json:"name"`
}

func (uc *TaxonomyUC) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return uc.Taxonomy.ListCategories(ctx)
}

func (uc *TaxonomyUC) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.Invalid("Invalid category ID. Must be a valid UUID.")
	}
	return uc.Taxonomy.FindCategory(ctx, cid)
}

func (uc *TaxonomyUC) CreateCategory(ctx context.Context, in CreateNamedInput) (*domain.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("Category name is required.")
	}
	c := &domain.Category{ID: uuid.New(), Name: strings.TrimSpace(in.Name)}
	if err := uc.Taxonomy.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *TaxonomyUC) ListConcepts(ctx context.Context) ([]domain.Concept, error) {
	return uc.Taxonomy.ListConcepts(ctx)
}

func (uc *TaxonomyUC) GetConcept(ctx context.Context, id string) (*domain.Concept, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.Invalid("Invalid concept ID. Must be a valid UUID.")
	}
	return uc.Taxonomy.FindConcept(ctx, cid)
}

func (uc *TaxonomyUC) CreateConcept(ctx context.Context, in CreateNamedInput) (*domain.Concept, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("Concept name is required.")
	}
	c := &domain.Concept{ID: uuid.New(), Name: strings.TrimSpace(in.Name)}
	if err := uc.Taxonomy.CreateConcept(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *TaxonomyUC) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	return uc.Taxonomy.ListMaterials(ctx)
}

func (uc *TaxonomyUC) GetMaterial(ctx context.Context, id string) (*domain.Material, error) {
	mid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.Invalid("Invalid material ID. Must be a valid UUID.")
	}
	return uc.Taxonomy.FindMaterial(ctx, mid)
}

func (uc *TaxonomyUC) CreateMaterial(ctx context.Context, in CreateNamedInput) (*domain.Material, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("Material name is required.")
	}
	m := &domain.Material{ID: uuid.New(), Name: strings.TrimSpace(in.Name)}
	if err := uc.Taxonomy.CreateMaterial(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// FilterOptions aggregates the filter vocabulary shown to storefront
// clients. Materials and colors are lowercased; the synthetic audience
// categories are appended after the stored ones.
func (uc *TaxonomyUC) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	opts, err := uc.Taxonomy.FilterOptions(ctx)
	if err != nil {
		return nil, err
	}
	opts.Categories = append(opts.Categories, "for-men", "for-women")
	for i, m := range opts.Materials {
		opts.Materials[i] = strings.ToLower(m)
	}
	for i, c := range opts.Colors {
		opts.Colors[i] = strings.ToLower(c)
	}
	return opts, nil
}
