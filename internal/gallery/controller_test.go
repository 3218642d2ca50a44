package gallery

import (
	"PortfolioBackend/internal/catalog"
	"PortfolioBackend/internal/model"
	"PortfolioBackend/internal/overlay"
	"errors"
	"testing"
)

var samplePhotos = []model.Photo{
	{ID: 1, Src: "/photos/photo1.jpg", Title: "Coastline at Dawn"},
	{ID: 2, Src: "/photos/photo2.jpg", Title: "Forest Mist"},
	{ID: 3, Src: "/photos/photo3.jpg", Title: "City Lights"},
	{ID: 4, Src: "/photos/photo4.jpg", Title: "Desert Texture"},
	{ID: 5, Src: "/photos/photo5.jpg", Title: "Mountain Peak"},
}

func newController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	cat, err := catalog.Load(samplePhotos)
	if err != nil {
		t.Fatalf("catalog.Load() error = %v", err)
	}
	c, err := NewController(cat, opts...)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	return c
}

func TestController_InitialView(t *testing.T) {
	c := newController(t)
	v := c.CurrentView()

	if !v.Overlay.Equal(model.Closed()) {
		t.Errorf("initial overlay = %+v, expected closed", v.Overlay)
	}
	if v.DisplayConfig != (model.DisplayConfig{ItemsVisible: 3, ItemsScrolled: 1}) {
		t.Errorf("initial display config = %+v, expected 3/1", v.DisplayConfig)
	}
	if len(v.Catalog) != len(samplePhotos) {
		t.Errorf("catalog has %d photos, expected %d", len(v.Catalog), len(samplePhotos))
	}
	if c.DefaultSelection() != samplePhotos[0] {
		t.Errorf("DefaultSelection() = %+v, expected first photo", c.DefaultSelection())
	}
}

func TestNewController_EmptyCatalog(t *testing.T) {
	if _, err := NewController(&catalog.Catalog{}); !errors.Is(err, catalog.ErrEmptyCatalog) {
		t.Errorf("NewController(empty) error = %v, expected ErrEmptyCatalog", err)
	}
}

func TestController_ClickEveryPhoto(t *testing.T) {
	c := newController(t)
	for _, p := range samplePhotos {
		if err := c.OnPhotoClicked(p); err != nil {
			t.Fatalf("OnPhotoClicked(%d) error = %v", p.ID, err)
		}
		if got := c.CurrentView().Overlay; !got.Equal(model.LightboxOpen(p)) {
			t.Errorf("after clicking %d overlay = %+v", p.ID, got)
		}
		if c.DefaultSelection() != p {
			t.Errorf("DefaultSelection() = %+v, expected %+v", c.DefaultSelection(), p)
		}
	}
}

func TestController_MutualExclusion(t *testing.T) {
	c := newController(t)
	steps := []func(){
		c.OnContactRequested,
		func() { _ = c.OnPhotoClicked(samplePhotos[1]) },
		c.OnContactRequested,
		c.OnContactRequested,
		func() { _ = c.OnPhotoClicked(samplePhotos[3]) },
		func() { _ = c.OnPhotoClicked(samplePhotos[4]) },
	}
	for i, step := range steps {
		step()
		s := c.CurrentView().Overlay
		switch s.Kind {
		case model.OverlayLightbox:
			if s.Photo == nil {
				t.Errorf("step %d: lightbox without photo", i)
			}
		case model.OverlayContact:
			if s.Photo != nil {
				t.Errorf("step %d: contact overlay carries a photo", i)
			}
		default:
			t.Errorf("step %d: overlay %s, expected one open", i, s.Kind)
		}
	}
}

func TestController_Dismiss(t *testing.T) {
	c := newController(t)

	c.OnDismiss()
	if !c.CurrentView().Overlay.Equal(model.Closed()) {
		t.Fatal("OnDismiss() from closed changed state")
	}

	_ = c.OnPhotoClicked(samplePhotos[0])
	c.OnDismiss()
	if !c.CurrentView().Overlay.Equal(model.Closed()) {
		t.Errorf("OnDismiss() left lightbox open")
	}

	c.OnContactRequested()
	c.OnDismiss()
	c.OnDismiss()
	if !c.CurrentView().Overlay.Equal(model.Closed()) {
		t.Errorf("OnDismiss() left contact open")
	}
}

func TestController_UnknownPhoto(t *testing.T) {
	c := newController(t)
	_ = c.OnPhotoClicked(samplePhotos[2])
	before := c.CurrentView()

	err := c.OnPhotoClicked(model.Photo{ID: 42, Src: "/nope.jpg", Title: "Nope"})
	if !errors.Is(err, overlay.ErrUnknownPhoto) {
		t.Fatalf("OnPhotoClicked(unknown) error = %v, expected ErrUnknownPhoto", err)
	}
	if !c.CurrentView().Overlay.Equal(before.Overlay) {
		t.Errorf("overlay changed after rejected click: %+v", c.CurrentView().Overlay)
	}
}

func TestController_ViewportResize(t *testing.T) {
	c := newController(t)
	c.OnContactRequested()

	tests := []struct {
		width    int
		expected model.DisplayConfig
	}{
		{500, model.DisplayConfig{ItemsVisible: 1, ItemsScrolled: 1}},
		{800, model.DisplayConfig{ItemsVisible: 3, ItemsScrolled: 3}},
		{700, model.DisplayConfig{ItemsVisible: 2, ItemsScrolled: 2}},
		{1600, model.DisplayConfig{ItemsVisible: 3, ItemsScrolled: 1}},
	}
	for _, test := range tests {
		c.OnViewportResized(test.width)
		v := c.CurrentView()
		if v.DisplayConfig != test.expected {
			t.Errorf("OnViewportResized(%d) config = %+v, expected %+v", test.width, v.DisplayConfig, test.expected)
		}
		if !v.Overlay.Equal(model.ContactOpen()) {
			t.Errorf("OnViewportResized(%d) changed overlay to %+v", test.width, v.Overlay)
		}
	}
}

func TestController_CustomRules(t *testing.T) {
	rules := []model.BreakpointRule{{MaxWidth: 400, Config: model.DisplayConfig{ItemsVisible: 1, ItemsScrolled: 1}}}
	fb := model.DisplayConfig{ItemsVisible: 5, ItemsScrolled: 5}
	c := newController(t, WithRules(rules), WithFallback(fb))

	if c.CurrentView().DisplayConfig != fb {
		t.Errorf("initial config = %+v, expected custom fallback", c.CurrentView().DisplayConfig)
	}
	c.OnViewportResized(400)
	if c.CurrentView().DisplayConfig != rules[0].Config {
		t.Errorf("config at 400px = %+v, expected 1/1", c.CurrentView().DisplayConfig)
	}
}

func TestController_EndToEnd(t *testing.T) {
	c := newController(t)

	if err := c.OnPhotoClicked(samplePhotos[2]); err != nil {
		t.Fatalf("OnPhotoClicked() error = %v", err)
	}
	if !c.CurrentView().Overlay.Equal(model.LightboxOpen(samplePhotos[2])) {
		t.Fatalf("overlay = %+v, expected lightbox on photo 3", c.CurrentView().Overlay)
	}

	c.OnContactRequested()
	if !c.CurrentView().Overlay.Equal(model.ContactOpen()) {
		t.Fatalf("overlay = %+v, expected contact", c.CurrentView().Overlay)
	}

	c.OnDismiss()
	if !c.CurrentView().Overlay.Equal(model.Closed()) {
		t.Fatalf("overlay = %+v, expected closed", c.CurrentView().Overlay)
	}
}
