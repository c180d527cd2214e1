package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/watchfi/backend/internal/domain"
	"github.com/watchfi/backend/internal/usecase"
)

const maxUploadBytes = 32 << 20

func (s *Server) handleListWatches(w http.ResponseWriter, r *http.Request) {
	f, err := watchFilterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	list, total, err := s.watches.List(r.Context(), f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	page := f.Page
	pageSize := f.PageSize
	if f.Limit != nil {
		pageSize = *f.Limit
		page = 1
		if f.Offset != nil && pageSize > 0 {
			page = *f.Offset/pageSize + 1
		}
	}
	writeJSON(w, http.StatusOK, listResponse{Data: list, Meta: newListMeta(total, page, pageSize)})
}

func (s *Server) handleGetWatch(w http.ResponseWriter, r *http.Request) {
	watch, err := s.watches.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, watch)
}

func (s *Server) handleCreateWatch(w http.ResponseWriter, r *http.Request) {
	in, err := s.decodeWatchInput(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	watch, err := s.watches.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, watch)
}

func (s *Server) handleUpdateWatch(w http.ResponseWriter, r *http.Request) {
	in, err := s.decodeWatchInput(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	watch, err := s.watches.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, watch)
}

func (s *Server) handleDeleteWatch(w http.ResponseWriter, r *http.Request) {
	if err := s.watches.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeWatchInput accepts either a JSON body or a multipart form with a
// "payload" JSON field plus image files. Uploaded files land in object storage
// and their URLs replace the corresponding payload fields.
func (s *Server) decodeWatchInput(r *http.Request) (usecase.CreateWatchInput, error) {
	var in usecase.CreateWatchInput

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if !strings.HasPrefix(mediaType, "multipart/") {
		return in, decodeJSON(r, &in)
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return in, domain.Invalid("Invalid multipart form.")
	}
	payload := r.FormValue("payload")
	if payload == "" {
		return in, domain.Invalid("Missing payload field in multipart form.")
	}
	if err := json.Unmarshal([]byte(payload), &in); err != nil {
		return in, domain.Invalid("Invalid JSON in payload field.")
	}

	if file, header, err := r.FormFile("primaryPhoto"); err == nil {
		url, upErr := s.uploadFile(r, file, header.Filename, header.Header.Get("Content-Type"))
		file.Close()
		if upErr != nil {
			return in, upErr
		}
		in.PrimaryPhotoURL = url
	}

	if r.MultipartForm != nil {
		for i, header := range r.MultipartForm.File["photos"] {
			file, err := header.Open()
			if err != nil {
				return in, domain.Invalid("Invalid photo file in multipart form.")
			}
			url, upErr := s.uploadFile(r, file, header.Filename, header.Header.Get("Content-Type"))
			file.Close()
			if upErr != nil {
				return in, upErr
			}
			in.Photos = append(in.Photos, usecase.WatchPhotoInput{PhotoURL: url, Order: i})
		}
	}
	return in, nil
}

func (s *Server) uploadFile(r *http.Request, file io.Reader, filename, contentType string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return "", err
	}
	name := uuid.New().String() + "-" + filename
	return s.storage.Upload(r.Context(), data, name, contentType, "")
}

func watchFilterFromQuery(r *http.Request) (domain.WatchFilter, error) {
	q := r.URL.Query()
	f := domain.WatchFilter{
		Brand:     q.Get("brand"),
		Category:  q.Get("category"),
		Concept:   q.Get("concept"),
		Material:  q.Get("material"),
		Color:     q.Get("color"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}

	var err error
	if f.MinPrice, err = decimalParam(q.Get("minPrice"), "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = decimalParam(q.Get("maxPrice"), "maxPrice"); err != nil {
		return f, err
	}
	if v := q.Get("isAvailable"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, domain.Invalid("Invalid isAvailable parameter. Must be true or false.")
		}
		f.IsAvailable = &b
	}
	if f.Page, err = intParam(q.Get("page"), 1, "page"); err != nil {
		return f, err
	}
	if f.PageSize, err = intParam(q.Get("pageSize"), 10, "pageSize"); err != nil {
		return f, err
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, domain.Invalid("Invalid offset parameter. Must be a non-negative number.")
		}
		f.Offset = &n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return f, domain.Invalid("Invalid limit parameter. Must be a positive number.")
		}
		f.Limit = &n
	}
	return f, nil
}

func decimalParam(v, name string) (*decimal.Decimal, error) {
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, domain.Invalid(fmt.Sprintf("Invalid %s parameter. Must be a number.", name))
	}
	return &d, nil
}

func intParam(v string, def int, name string) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, domain.Invalid(fmt.Sprintf("Invalid %s parameter. Must be a positive number.", name))
	}
	return n, nil
}
