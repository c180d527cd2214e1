package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/watchfi/backend/internal/domain"
	"github.com/watchfi/backend/internal/usecase"
)

// Server is the HTTP edge of the application. It owns routing and JSON
// encoding and delegates everything else to the use cases.
type Server struct {
	router *chi.Mux

	watches   *usecase.WatchUC
	bookings  *usecase.BookingUC
	customers *usecase.CustomerUC
	taxonomy  *usecase.TaxonomyUC
	storage   domain.FileStorage
	health    domain.HealthRepo
	env       string
}

func New(
	watches *usecase.WatchUC,
	bookings *usecase.BookingUC,
	customers *usecase.CustomerUC,
	taxonomy *usecase.TaxonomyUC,
	storage domain.FileStorage,
	health domain.HealthRepo,
	env string,
) *Server {
	s := &Server{
		watches:   watches,
		bookings:  bookings,
		customers: customers,
		taxonomy:  taxonomy,
		storage:   storage,
		health:    health,
		env:       env,
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/filter", s.handleFilterOptions)

		r.Route("/collections", func(r chi.Router) {
			r.Get("/", s.handleListWatches)
			r.Post("/", s.handleCreateWatch)
			r.Get("/{id}", s.handleGetWatch)
			r.Put("/{id}", s.handleUpdateWatch)
			r.Delete("/{id}", s.handleDeleteWatch)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", s.handleListBookings)
			r.Post("/", s.handleCreateBooking)
			r.Get("/export", s.handleExportBookings)
			r.Get("/{id}", s.handleGetBooking)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", s.handleListCustomers)
			r.Post("/", s.handleCreateCustomer)
			r.Get("/{id}", s.handleGetCustomer)
		})

		r.Route("/brands", func(r chi.Router) {
			r.Get("/", s.handleListBrands)
			r.Post("/", s.handleCreateBrand)
			r.Get("/{id}", s.handleGetBrand)
		})
		r.Route("/colors", func(r chi.Router) {
			r.Get("/", s.handleListColors)
			r.Post("/", s.handleCreateColor)
			r.Get("/{id}", s.handleGetColor)
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", s.handleListCategories)
			r.Post("/", s.handleCreateCategory)
			r.Get("/{id}", s.handleGetCategory)
		})
		r.Route("/concepts", func(r chi.Router) {
			r.Get("/", s.handleListConcepts)
			r.Post("/", s.handleCreateConcept)
			r.Get("/{id}", s.handleGetConcept)
		})
		r.Route("/materials", func(r chi.Router) {
			r.Get("/", s.handleListMaterials)
			r.Post("/", s.handleCreateMaterial)
			r.Get("/{id}", s.handleGetMaterial)
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	body := map[string]string{
		"status":      "ok",
		"database":    "connected",
		"environment": s.env,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.health.Ping(r.Context()); err != nil {
		status = http.StatusInternalServerError
		body["status"] = "error"
		body["database"] = "disconnected"
	}
	writeJSON(w, status, body)
}

func (s *Server) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.taxonomy.FilterOptions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}
