// Package gallery composes the catalog, breakpoint resolution and the overlay
// machine into the controller a presentation layer drives.
//
// A Controller is single-writer: every method runs to completion and none of
// them may be called concurrently. Callers sharing one across goroutines must
// serialize access themselves.
package gallery

import (
	"PortfolioBackend/internal/breakpoint"
	"PortfolioBackend/internal/catalog"
	"PortfolioBackend/internal/model"
	"PortfolioBackend/internal/overlay"
	"fmt"

	"k8s.io/klog/v2"
)

type Option func(*Controller)

// WithRules replaces the default breakpoint rules.
func WithRules(rules []model.BreakpointRule) Option {
	return func(c *Controller) {
		c.rules = append([]model.BreakpointRule(nil), rules...)
	}
}

// WithFallback replaces the layout used above every breakpoint.
func WithFallback(fallback model.DisplayConfig) Option {
	return func(c *Controller) {
		c.fallback = fallback
	}
}

type Controller struct {
	catalog  *catalog.Catalog
	overlay  *overlay.Machine
	rules    []model.BreakpointRule
	fallback model.DisplayConfig
	display  model.DisplayConfig
	first    model.Photo
}

func NewController(cat *catalog.Catalog, opts ...Option) (*Controller, error) {
	first, err := cat.First()
	if err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}

	c := &Controller{
		catalog:  cat,
		overlay:  overlay.New(cat),
		rules:    breakpoint.DefaultRules(),
		fallback: breakpoint.DefaultFallback(),
		first:    first,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.display = c.fallback
	return c, nil
}

func (c *Controller) OnPhotoClicked(p model.Photo) error {
	if err := c.overlay.SelectPhoto(p); err != nil {
		klog.V(2).Infof("gallery: rejected click: %v", err)
		return err
	}
	return nil
}

func (c *Controller) OnContactRequested() {
	c.overlay.OpenContact()
}

// OnDismiss closes whichever overlay is open.
func (c *Controller) OnDismiss() {
	switch c.overlay.State().Kind {
	case model.OverlayLightbox:
		c.overlay.CloseLightbox()
	case model.OverlayContact:
		c.overlay.CloseContact()
	}
}

func (c *Controller) OnViewportResized(width int) {
	c.display = breakpoint.Resolve(width, c.rules, c.fallback)
}

func (c *Controller) CurrentView() model.View {
	return model.View{
		DisplayConfig: c.display,
		Overlay:       c.overlay.State(),
		Catalog:       c.catalog.Photos(),
	}
}

// DefaultSelection is the photo the lightbox would show: the catalog's first
// photo until one is clicked, then the most recently clicked photo.
func (c *Controller) DefaultSelection() model.Photo {
	if p, ok := c.overlay.Selected(); ok {
		return p
	}
	return c.first
}

func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}
