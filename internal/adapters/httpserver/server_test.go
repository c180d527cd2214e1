package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	testmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/watchfi/backend/internal/domain"
	"github.com/watchfi/backend/internal/mocks"
	"github.com/watchfi/backend/internal/usecase"
)

type okHealth struct{}

func (okHealth) Ping(ctx context.Context) error { return nil }

func newTestServer(customers domain.CustomerRepo, taxonomy domain.TaxonomyRepo) *Server {
	return New(
		&usecase.WatchUC{},
		&usecase.BookingUC{},
		&usecase.CustomerUC{Customers: customers},
		&usecase.TaxonomyUC{Taxonomy: taxonomy},
		new(mocks.FileStorage),
		okHealth{},
		"test",
	)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(new(mocks.CustomerRepo), new(mocks.TaxonomyRepo))

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"database":"connected"`)
}

func TestCreateCustomerEndpoint(t *testing.T) {
	customers := new(mocks.CustomerRepo)
	s := newTestServer(customers, new(mocks.TaxonomyRepo))

	wallet := "So11111111111111111111111111111111111111112"
	customers.On("FindByWallet", testmock.Anything, wallet).Return(nil, domain.ErrNotFound)
	customers.On("Create", testmock.Anything, testmock.Anything).Return(nil)

	body := strings.NewReader(`{"pseudonym":"collector","walletAddress":"` + wallet + `"}`)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/customers", body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), wallet)
}

func TestCreateCustomerEndpointRejectsBadWallet(t *testing.T) {
	s := newTestServer(new(mocks.CustomerRepo), new(mocks.TaxonomyRepo))

	body := strings.NewReader(`{"walletAddress":"nope"}`)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/customers", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid Solana wallet address."}`, rec.Body.String())
}

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.Invalid("bad input"), http.StatusBadRequest},
		{domain.ErrDuplicateTransaction, http.StatusConflict},
		{domain.ErrNotFound, http.StatusNotFound},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)
		assert.Equal(t, tc.status, rec.Code)
	}

	// Internals never leak to the client.
	rec := httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: secret detail"))
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestListMeta(t *testing.T) {
	m := newListMeta(25, 2, 10)
	require.Equal(t, int64(25), m.TotalItems)
	assert.Equal(t, int64(3), m.TotalPages)
	assert.Equal(t, 2, m.CurrentPage)
	assert.Equal(t, 10, m.PageSize)

	m = newListMeta(0, 1, 10)
	assert.Equal(t, int64(0), m.TotalPages)
}
