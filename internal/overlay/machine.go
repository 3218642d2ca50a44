// Package overlay arbitrates between the photo lightbox and the contact
// form. At most one of them is open at any time.
package overlay

import (
	"PortfolioBackend/internal/model"
	"errors"
	"fmt"
)

var ErrUnknownPhoto = errors.New("photo is not in the catalog")

type UnknownPhotoError struct {
	Photo model.Photo
}

func (e *UnknownPhotoError) Error() string {
	return fmt.Sprintf("select photo %d (%q): %v", e.Photo.ID, e.Photo.Title, ErrUnknownPhoto)
}

func (e *UnknownPhotoError) Unwrap() error { return ErrUnknownPhoto }

// Membership is satisfied by *catalog.Catalog.
type Membership interface {
	Contains(model.Photo) bool
}

type Machine struct {
	members  Membership
	state    model.OverlayState
	selected *model.Photo
}

func New(m Membership) *Machine {
	return &Machine{members: m, state: model.Closed()}
}

// SelectPhoto opens the lightbox on p from any state, replacing whatever
// overlay was open. The state is left untouched when p is unknown.
func (m *Machine) SelectPhoto(p model.Photo) error {
	if !m.members.Contains(p) {
		return &UnknownPhotoError{Photo: p}
	}
	m.state = model.LightboxOpen(p)
	m.selected = &p
	return nil
}

func (m *Machine) OpenContact() {
	m.state = model.ContactOpen()
}

func (m *Machine) CloseLightbox() {
	if m.state.Kind == model.OverlayLightbox {
		m.state = model.Closed()
	}
}

func (m *Machine) CloseContact() {
	if m.state.Kind == model.OverlayContact {
		m.state = model.Closed()
	}
}

func (m *Machine) State() model.OverlayState {
	s := m.state
	if s.Photo != nil {
		p := *s.Photo
		s.Photo = &p
	}
	return s
}

// Selected is the last photo shown in the lightbox, kept after it closes.
func (m *Machine) Selected() (model.Photo, bool) {
	if m.selected == nil {
		return model.Photo{}, false
	}
	return *m.selected, true
}
