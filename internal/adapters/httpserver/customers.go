package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/watchfi/backend/internal/domain"
	"github.com/watchfi/backend/internal/usecase"
)

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var in usecase.CreateCustomerInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	customer, err := s.customers.Register(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := usecase.ListCustomersInput{
		Pseudonym:     q.Get("pseudonym"),
		WalletAddress: q.Get("walletAddress"),
		SortBy:        q.Get("sortBy"),
		SortOrder:     q.Get("sortOrder"),
	}
	var err error
	if in.Limit, err = offsetIntParam(q.Get("limit")); err != nil {
		writeError(w, r, domain.Invalid("Invalid limit parameter. Must be a positive number."))
		return
	}
	if in.Offset, err = offsetIntParam(q.Get("offset")); err != nil {
		writeError(w, r, domain.Invalid("Invalid offset parameter. Must be a non-negative number."))
		return
	}
	list, total, f, err := s.customers.List(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	page := 1
	if f.Limit > 0 {
		page = f.Offset/f.Limit + 1
	}
	writeJSON(w, http.StatusOK, listResponse{Data: list, Meta: newListMeta(total, page, f.Limit)})
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := s.customers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}
