package httpserver

import (
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/watchfi/backend/internal/domain"
	"github.com/watchfi/backend/internal/usecase"
)

func (s *Server) handleListBrands(w http.ResponseWriter, r *http.Request) {
	list, err := s.taxonomy.ListBrands(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := s.taxonomy.GetBrand(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, brand)
}

// handleCreateBrand accepts JSON with a logoUrl, or a multipart form with
// name/description fields and a "logo" file that goes to object storage.
func (s *Server) handleCreateBrand(w http.ResponseWriter, r *http.Request) {
	var in usecase.CreateBrandInput

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, r, domain.Invalid("Invalid multipart form."))
			return
		}
		in.Name = r.FormValue("name")
		in.Description = r.FormValue("description")
		in.LogoURL = r.FormValue("logoUrl")
		if file, header, err := r.FormFile("logo"); err == nil {
			url, upErr := s.uploadFile(r, file, header.Filename, header.Header.Get("Content-Type"))
			file.Close()
			if upErr != nil {
				writeError(w, r, upErr)
				return
			}
			in.LogoURL = url
		}
	} else if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	brand, err := s.taxonomy.CreateBrand(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, brand)
}

func (s *Server) handleListColors(w http.ResponseWriter, r *http.Request) {
	list, err := s.taxonomy.ListColors(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetColor(w http.ResponseWriter, r *http.Request) {
	color, err := s.taxonomy.GetColor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, color)
}

func (s *Server) handleCreateColor(w http.ResponseWriter, r *http.Request) {
	var in usecase.CreateColorInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	color, err := s.taxonomy.CreateColor(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, color)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	list, err := s.taxonomy.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := s.taxonomy.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var in usecase.CreateNamedInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	category, err := s.taxonomy.CreateCategory(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (s *Server) handleListConcepts(w http.ResponseWriter, r *http.Request) {
	list, err := s.taxonomy.ListConcepts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetConcept(w http.ResponseWriter, r *http.Request) {
	concept, err := s.taxonomy.GetConcept(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, concept)
}

func (s *Server) handleCreateConcept(w http.ResponseWriter, r *http.Request) {
	var in usecase.CreateNamedInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	concept, err := s.taxonomy.CreateConcept(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, concept)
}

func (s *Server) handleListMaterials(w http.ResponseWriter, r *http.Request) {
	list, err := s.taxonomy.ListMaterials(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetMaterial(w http.ResponseWriter, r *http.Request) {
	material, err := s.taxonomy.GetMaterial(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, material)
}

func (s *Server) handleCreateMaterial(w http.ResponseWriter, r *http.Request) {
	var in usecase.CreateNamedInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	material, err := s.taxonomy.CreateMaterial(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, material)
}
