package model

import (
	"encoding/json"
	"testing"
)

func TestOverlayKind_String(t *testing.T) {
	tests := []struct {
		kind     OverlayKind
		expected string
	}{
		{OverlayClosed, "closed"},
		{OverlayLightbox, "lightbox"},
		{OverlayContact, "contact"},
		{OverlayKind(7), "unknown"},
	}

	for _, test := range tests {
		if result := test.kind.String(); result != test.expected {
			t.Errorf("OverlayKind(%d).String() = %s, expected %s", int(test.kind), result, test.expected)
		}
	}
}

func TestOverlayState_Equal(t *testing.T) {
	a := Photo{ID: 1, Src: "/a.jpg", Title: "A"}
	b := Photo{ID: 2, Src: "/b.jpg", Title: "B"}

	tests := []struct {
		x, y     OverlayState
		expected bool
	}{
		{Closed(), Closed(), true},
		{ContactOpen(), ContactOpen(), true},
		{LightboxOpen(a), LightboxOpen(a), true},
		{LightboxOpen(a), LightboxOpen(b), false},
		{LightboxOpen(a), Closed(), false},
		{ContactOpen(), Closed(), false},
	}

	for i, test := range tests {
		if result := test.x.Equal(test.y); result != test.expected {
			t.Errorf("case %d: Equal() = %v, expected %v", i, result, test.expected)
		}
	}
}

func TestDisplayConfig_Valid(t *testing.T) {
	tests := []struct {
		c        DisplayConfig
		expected bool
	}{
		{DisplayConfig{3, 1}, true},
		{DisplayConfig{1, 1}, true},
		{DisplayConfig{1, 2}, false},
		{DisplayConfig{0, 0}, false},
		{DisplayConfig{2, 0}, false},
	}

	for _, test := range tests {
		if result := test.c.Valid(); result != test.expected {
			t.Errorf("%+v.Valid() = %v, expected %v", test.c, result, test.expected)
		}
	}
}

func TestOverlayState_JSON(t *testing.T) {
	b, err := json.Marshal(LightboxOpen(Photo{ID: 3, Src: "/c.jpg", Title: "C"}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	expected := `{"kind":"lightbox","photo":{"id":3,"src":"/c.jpg","title":"C"}}`
	if string(b) != expected {
		t.Errorf("Marshal() = %s, expected %s", b, expected)
	}
}
