package handler

import (
	"PortfolioBackend/config"
	"PortfolioBackend/internal/model"
	"PortfolioBackend/internal/overlay"
	"PortfolioBackend/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"k8s.io/klog/v2"
)

type SessionResponse struct {
	ID   string     `json:"id"`
	View model.View `json:"view"`
}

type ViewportRequest struct {
	Width *int `json:"width"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		klog.Errorf("Failed to encode response to JSON: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps service errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var unknown *overlay.UnknownPhotoError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "session not found")
	case errors.As(err, &unknown):
		writeError(w, http.StatusUnprocessableEntity, unknown.Error())
	case errors.Is(err, service.ErrNoCatalog):
		writeError(w, http.StatusServiceUnavailable, "catalog not loaded")
	default:
		klog.Errorf("gallery request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// withBaseURL prefixes asset paths in a copy of the view.
func withBaseURL(v model.View, baseURL string) model.View {
	v.Catalog = prefixPhotos(v.Catalog, baseURL)
	if v.Overlay.Photo != nil {
		p := prefixPhoto(*v.Overlay.Photo, baseURL)
		v.Overlay.Photo = &p
	}
	return v
}

func prefixPhotos(photos []model.Photo, baseURL string) []model.Photo {
	out := make([]model.Photo, len(photos))
	for i, p := range photos {
		out[i] = prefixPhoto(p, baseURL)
	}
	return out
}

func prefixPhoto(p model.Photo, baseURL string) model.Photo {
	p.Src = baseURL + p.Src
	if p.Thumb != "" {
		p.Thumb = baseURL + p.Thumb
	}
	return p
}

func GetPhotos(s service.GalleryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photos, err := s.Photos()
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, prefixPhotos(photos, cfg.BaseURL))
	}
}

func StartSession(s service.GalleryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, view, err := s.StartSession()
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, SessionResponse{ID: id, View: withBaseURL(view, cfg.BaseURL)})
	}
}

func GetView(s service.GalleryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := s.View(mux.Vars(r)["id"])
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, withBaseURL(view, cfg.BaseURL))
	}
}

func EndSession(s service.GalleryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.EndSession(mux.Vars(r)["id"]); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ClickPhoto(s service.GalleryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		photoID, err := strconv.Atoi(vars["photoID"])
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid photo id")
			return
		}

		view, err := s.ClickPhoto(vars["id"], photoID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, withBaseURL(view, cfg.BaseURL))
	}
}

func RequestContact(s service.GalleryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := s.RequestContact(mux.Vars(r)["id"])
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, withBaseURL(view, cfg.BaseURL))
	}
}

func Dismiss(s service.GalleryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := s.Dismiss(mux.Vars(r)["id"])
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, withBaseURL(view, cfg.BaseURL))
	}
}

func ResizeViewport(s service.GalleryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ViewportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Width == nil {
			writeError(w, http.StatusBadRequest, "Body must be {\"width\": <px>}")
			return
		}

		view, err := s.Resize(mux.Vars(r)["id"], *req.Width)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, withBaseURL(view, cfg.BaseURL))
	}
}
