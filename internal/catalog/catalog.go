// Package catalog holds the immutable, ordered set of photos a gallery
// session renders.
package catalog

import (
	"PortfolioBackend/internal/model"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCatalog is returned when there is no photo to seed the default
// selection with.
var ErrEmptyCatalog = errors.New("catalog is empty")

// ValidationError names the record that failed to load.
type ValidationError struct {
	Index  int
	ID     int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid photo record #%d (id=%d): %s", e.Index, e.ID, e.Reason)
}

type Catalog struct {
	photos []model.Photo
	byID   map[int]int
}

// Load validates records and returns them as a catalog in input order.
func Load(records []model.Photo) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		photos: make([]model.Photo, 0, len(records)),
		byID:   make(map[int]int, len(records)),
	}
	for i, r := range records {
		if strings.TrimSpace(r.Src) == "" {
			return nil, &ValidationError{Index: i, ID: r.ID, Reason: "src is empty"}
		}
		if strings.TrimSpace(r.Title) == "" {
			return nil, &ValidationError{Index: i, ID: r.ID, Reason: "title is empty"}
		}
		if prev, ok := c.byID[r.ID]; ok {
			return nil, &ValidationError{Index: i, ID: r.ID, Reason: fmt.Sprintf("duplicate id, first seen at #%d", prev)}
		}
		c.byID[r.ID] = i
		c.photos = append(c.photos, r)
	}
	return c, nil
}

func (c *Catalog) First() (model.Photo, error) {
	if c == nil || len(c.photos) == 0 {
		return model.Photo{}, ErrEmptyCatalog
	}
	return c.photos[0], nil
}

// Contains reports whether p is a catalog entry. A photo carrying a known ID
// but different content is not a member.
func (c *Catalog) Contains(p model.Photo) bool {
	got, ok := c.Lookup(p.ID)
	return ok && got == p
}

func (c *Catalog) Lookup(id int) (model.Photo, bool) {
	if c == nil {
		return model.Photo{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return model.Photo{}, false
	}
	return c.photos[i], true
}

// Photos returns a copy of the catalog in load order.
func (c *Catalog) Photos() []model.Photo {
	if c == nil {
		return nil
	}
	out := make([]model.Photo, len(c.photos))
	copy(out, c.photos)
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.photos)
}
