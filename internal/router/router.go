package router

import (
	"PortfolioBackend/config"
	"PortfolioBackend/internal/handler"
	"PortfolioBackend/internal/service"
	"bytes"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"k8s.io/klog/v2"
)

const staticPrefix = "/static/photos/"

// maxLoggedBody caps how much of a request body is read for logging.
const maxLoggedBody = 4 << 10

func setCORSHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// readCloser replays the logged prefix ahead of the unread body.
type readCloser struct {
	io.Reader
	io.Closer
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if klog.V(2).Enabled() && r.Body != nil {
			body, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
			if err != nil {
				http.Error(w, "Error reading request body", http.StatusBadRequest)
				return
			}
			klog.Infof("Received request: %s %s body=%s", r.Method, r.RequestURI, body)
			r.Body = readCloser{io.MultiReader(bytes.NewReader(body), r.Body), r.Body}
		} else {
			klog.V(1).Infof("Received request: %s %s", r.Method, r.RequestURI)
		}

		next.ServeHTTP(w, r)
	})
}

// NewRouter wires the gallery session API, the contact relay and the photo
// file server.
func NewRouter(gallery service.GalleryService, contact handler.ContactSender, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()

	r.Use(loggingMiddleware)
	r.Use(setCORSHeaders)

	r.PathPrefix(staticPrefix).Handler(http.StripPrefix(staticPrefix, http.FileServer(http.Dir(cfg.PhotosDir))))

	r.HandleFunc("/photos", handler.GetPhotos(gallery, cfg)).Methods("GET")
	r.HandleFunc("/contact", handler.SubmitContact(contact)).Methods("POST", "OPTIONS")

	s := r.PathPrefix("/sessions").Subrouter()
	s.HandleFunc("", handler.StartSession(gallery, cfg)).Methods("POST", "OPTIONS")
	s.HandleFunc("/{id}", handler.GetView(gallery, cfg)).Methods("GET")
	s.HandleFunc("/{id}", handler.EndSession(gallery)).Methods("DELETE", "OPTIONS")
	s.HandleFunc("/{id}/photos/{photoID:[0-9]+}", handler.ClickPhoto(gallery, cfg)).Methods("POST", "OPTIONS")
	s.HandleFunc("/{id}/contact", handler.RequestContact(gallery, cfg)).Methods("POST", "OPTIONS")
	s.HandleFunc("/{id}/dismiss", handler.Dismiss(gallery, cfg)).Methods("POST", "OPTIONS")
	s.HandleFunc("/{id}/viewport", handler.ResizeViewport(gallery, cfg)).Methods("PUT", "OPTIONS")

	return r
}

// StaticPrefix is the public path photos in PhotosDir are served under.
func StaticPrefix() string {
	return staticPrefix
}
