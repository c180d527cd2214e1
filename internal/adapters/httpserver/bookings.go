package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/watchfi/backend/internal/domain"
	"github.com/watchfi/backend/internal/usecase"
)

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var in usecase.CreateBookingInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	booking, err := s.bookings.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := usecase.ListBookingsInput{
		CustomerID:     q.Get("customerId"),
		PaymentStatus:  q.Get("paymentStatus"),
		ShipmentStatus: q.Get("shipmentStatus"),
		Status:         q.Get("status"),
		SortBy:         q.Get("sortBy"),
		SortOrder:      q.Get("sortOrder"),
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
	list, total, f, err := s.bookings.List(r.Context(), in)
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

func (s *Server) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := s.bookings.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func offsetIntParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
