package service

import (
	"PortfolioBackend/internal/catalog"
	"PortfolioBackend/internal/gallery"
	"PortfolioBackend/internal/model"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoCatalog       = errors.New("catalog not loaded")
)

// PhotoSource supplies raw catalog records. Implemented by the postgres and
// YAML file repositories.
type PhotoSource interface {
	ListPhotos(ctx context.Context) ([]model.Photo, error)
}

type GalleryService interface {
	Reload(ctx context.Context) error
	Photos() ([]model.Photo, error)
	StartSession() (string, model.View, error)
	View(sessionID string) (model.View, error)
	ClickPhoto(sessionID string, photoID int) (model.View, error)
	RequestContact(sessionID string) (model.View, error)
	Dismiss(sessionID string) (model.View, error)
	Resize(sessionID string, width int) (model.View, error)
	EndSession(sessionID string) error
	ExpireIdle(ctx context.Context, every time.Duration)
}

// session serializes access to its controller, which is single-writer.
type session struct {
	mu       sync.Mutex
	ctrl     *gallery.Controller
	lastSeen time.Time
}

type galleryServiceImpl struct {
	source PhotoSource
	opts   []gallery.Option
	ttl    time.Duration
	now    func() time.Time

	mu       sync.RWMutex
	catalog  *catalog.Catalog
	sessions map[string]*session
}

// NewGalleryService keeps a session alive for ttl after its last request.
// A ttl of zero disables expiry.
func NewGalleryService(source PhotoSource, ttl time.Duration, opts ...gallery.Option) GalleryService {
	return &galleryServiceImpl{
		source:   source,
		opts:     opts,
		ttl:      ttl,
		now:      time.Now,
		sessions: map[string]*session{},
	}
}

func (s *galleryServiceImpl) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}

// sweep drops sessions idle for longer than the ttl and reports how many.
func (s *galleryServiceImpl) sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := s.expired(sess, now)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// ExpireIdle sweeps idle sessions every interval until ctx is done.
func (s *galleryServiceImpl) ExpireIdle(ctx context.Context, every time.Duration) {
	if s.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sweep(); n > 0 {
				klog.V(1).Infof("expired %d idle sessions", n)
			}
		}
	}
}

// Reload loads and validates a fresh catalog. New sessions use it; running
// sessions keep the catalog they started with. On error the previous catalog
// stays in place.
func (s *galleryServiceImpl) Reload(ctx context.Context) error {
	records, err := s.source.ListPhotos(ctx)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	cat, err := catalog.Load(records)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}

	s.mu.Lock()
	s.catalog = cat
	s.mu.Unlock()
	klog.Infof("catalog loaded: %d photos", cat.Len())
	return nil
}

func (s *galleryServiceImpl) currentCatalog() (*catalog.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil, ErrNoCatalog
	}
	return s.catalog, nil
}

func (s *galleryServiceImpl) Photos() ([]model.Photo, error) {
	cat, err := s.currentCatalog()
	if err != nil {
		return nil, err
	}
	return cat.Photos(), nil
}

func (s *galleryServiceImpl) StartSession() (string, model.View, error) {
	cat, err := s.currentCatalog()
	if err != nil {
		return "", model.View{}, err
	}
	ctrl, err := gallery.NewController(cat, s.opts...)
	if err != nil {
		return "", model.View{}, err
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &session{ctrl: ctrl, lastSeen: s.now()}
	s.mu.Unlock()

	klog.V(1).Infof("session %s started", id)
	return id, ctrl.CurrentView(), nil
}

// with runs fn on the session's controller and returns the resulting view.
func (s *galleryServiceImpl) with(sessionID string, fn func(*gallery.Controller) error) (model.View, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return model.View{}, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	now := s.now()
	if s.expired(sess, now) {
		return model.View{}, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	sess.lastSeen = now
	if err := fn(sess.ctrl); err != nil {
		return model.View{}, err
	}
	return sess.ctrl.CurrentView(), nil
}

func (s *galleryServiceImpl) View(sessionID string) (model.View, error) {
	return s.with(sessionID, func(*gallery.Controller) error { return nil })
}

// ClickPhoto resolves photoID against the session's own catalog.
func (s *galleryServiceImpl) ClickPhoto(sessionID string, photoID int) (model.View, error) {
	return s.with(sessionID, func(c *gallery.Controller) error {
		p, ok := c.Catalog().Lookup(photoID)
		if !ok {
			p = model.Photo{ID: photoID}
		}
		return c.OnPhotoClicked(p)
	})
}

func (s *galleryServiceImpl) RequestContact(sessionID string) (model.View, error) {
	return s.with(sessionID, func(c *gallery.Controller) error {
		c.OnContactRequested()
		return nil
	})
}

func (s *galleryServiceImpl) Dismiss(sessionID string) (model.View, error) {
	return s.with(sessionID, func(c *gallery.Controller) error {
		c.OnDismiss()
		return nil
	})
}

func (s *galleryServiceImpl) Resize(sessionID string, width int) (model.View, error) {
	return s.with(sessionID, func(c *gallery.Controller) error {
		c.OnViewportResized(width)
		return nil
	})
}

func (s *galleryServiceImpl) EndSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	delete(s.sessions, sessionID)
	klog.V(1).Infof("session %s ended", sessionID)
	return nil
}
