package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/watchfi/backend/internal/domain"
	"github.com/watchfi/backend/internal/mocks"
)

func TestCreateBrandValidation(t *testing.T) {
	uc := &TaxonomyUC{Taxonomy: new(mocks.TaxonomyRepo)}
	ctx := context.Background()

	_, err := uc.CreateBrand(ctx, CreateBrandInput{LogoURL: "https://cdn.example.com/logo.png"})
	assert.EqualError(t, err, "Brand name is required.")

	_, err = uc.CreateBrand(ctx, CreateBrandInput{Name: "Omega"})
	assert.EqualError(t, err, "Brand logo (file or URL) is required.")
}

func TestCreateColorHexValidation(t *testing.T) {
	taxonomy := new(mocks.TaxonomyRepo)
	uc := &TaxonomyUC{Taxonomy: taxonomy}
	ctx := context.Background()

	_, err := uc.CreateColor(ctx, CreateColorInput{Name: "Gold", Hex: "fff"})
	assert.EqualError(t, err, "Invalid hex. Must be a #RRGGBB value.")

	taxonomy.On("CreateColor", ctx, mock.MatchedBy(func(c *domain.Color) bool {
		return c.Name == "Gold" && c.Hex == "#FFD700"
	})).Return(nil)
	_, err = uc.CreateColor(ctx, CreateColorInput{Name: "Gold", Hex: "#FFD700"})
	require.NoError(t, err)
}

func TestFilterOptionsShape(t *testing.T) {
	taxonomy := new(mocks.TaxonomyRepo)
	uc := &TaxonomyUC{Taxonomy: taxonomy}
	ctx := context.Background()

	taxonomy.On("FilterOptions", ctx).Return(&domain.FilterOptions{
		Brands:     []string{"Omega", "Rolex"},
		Categories: []string{"Diver"},
		Concepts:   []string{"Luxury"},
		Materials:  []string{"Titanium"},
		Colors:     []string{"Gold"},
	}, nil)

	opts, err := uc.FilterOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Diver", "for-men", "for-women"}, opts.Categories)
	assert.Equal(t, []string{"titanium"}, opts.Materials)
	assert.Equal(t, []string{"gold"}, opts.Colors)
	assert.Equal(t, []string{"Omega", "Rolex"}, opts.Brands)
}
