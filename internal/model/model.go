package model

import "fmt"

type Photo struct {
	ID    int    `json:"id" yaml:"id"`
	Src   string `json:"src" yaml:"src"`
	Title string `json:"title" yaml:"title"`
	Thumb string `json:"thumb,omitempty" yaml:"thumb,omitempty"`
}

// DisplayConfig is the resolved carousel layout for a viewport.
type DisplayConfig struct {
	ItemsVisible  int `json:"items_visible"`
	ItemsScrolled int `json:"items_scrolled"`
}

func (c DisplayConfig) Valid() bool {
	return c.ItemsVisible > 0 && c.ItemsScrolled > 0 && c.ItemsScrolled <= c.ItemsVisible
}

// BreakpointRule applies Config to every viewport no wider than MaxWidth.
type BreakpointRule struct {
	MaxWidth int           `json:"max_width"`
	Config   DisplayConfig `json:"config"`
}

type OverlayKind int

const (
	OverlayClosed OverlayKind = iota
	OverlayLightbox
	OverlayContact
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayClosed:
		return "closed"
	case OverlayLightbox:
		return "lightbox"
	case OverlayContact:
		return "contact"
	default:
		return "unknown"
	}
}

func (k OverlayKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *OverlayKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "closed":
		*k = OverlayClosed
	case "lightbox":
		*k = OverlayLightbox
	case "contact":
		*k = OverlayContact
	default:
		return fmt.Errorf("unknown overlay kind %q", b)
	}
	return nil
}

// OverlayState is the single active overlay. Photo is non-nil only for
// OverlayLightbox.
type OverlayState struct {
	Kind  OverlayKind `json:"kind"`
	Photo *Photo      `json:"photo,omitempty"`
}

func Closed() OverlayState {
	return OverlayState{Kind: OverlayClosed}
}

func LightboxOpen(p Photo) OverlayState {
	return OverlayState{Kind: OverlayLightbox, Photo: &p}
}

func ContactOpen() OverlayState {
	return OverlayState{Kind: OverlayContact}
}

// Equal compares kind and, for the lightbox, the shown photo.
func (s OverlayState) Equal(o OverlayState) bool {
	if s.Kind != o.Kind {
		return false
	}
	if s.Photo == nil || o.Photo == nil {
		return s.Photo == nil && o.Photo == nil
	}
	return *s.Photo == *o.Photo
}

// View is everything a presentation layer needs to render the gallery.
type View struct {
	DisplayConfig DisplayConfig `json:"display_config"`
	Overlay       OverlayState  `json:"overlay"`
	Catalog       []Photo       `json:"catalog"`
}

// ContactMessage is relayed as-is to the contact endpoint.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
