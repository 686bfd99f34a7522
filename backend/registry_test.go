package backend

import (
	"errors"
	"image"
	"slices"
	"testing"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/recorder"
)

// fakeBackend hands out surfaces that record into a recorder.
type fakeBackend struct{ name string }

func (b fakeBackend) Name() string { return b.name }

func (b fakeBackend) NewSurface(w, h int) (Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	return &fakeSurface{Recorder: recorder.New(), Textures: recorder.NewTextures(), size: image.Rect(0, 0, w, h)}, nil
}

type fakeSurface struct {
	*recorder.Recorder
	*recorder.Textures
	size image.Rectangle
}

func (s *fakeSurface) Clear(ggui.Color)    {}
func (s *fakeSurface) Flush() error        { return nil }
func (s *fakeSurface) Pixels() image.Image { return image.NewRGBA(s.size) }
func (s *fakeSurface) Close() error        { return nil }
func (s *fakeSurface) Image(tex ggui.Texture, p0, p1, uv0, uv1 ggui.Point) {
	s.Recorder.Image(tex, p0, p1, uv0, uv1)
}

// withRegistry runs the test against an empty registry and restores the
// previous one afterwards.
func withRegistry(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	saved := backends
	backends = make(map[string]Factory)
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		backends = saved
		registryMu.Unlock()
	})
}

func factory(name string) Factory {
	return func() Backend { return fakeBackend{name: name} }
}

func TestRegistryRegisterAndGet(t *testing.T) {
	withRegistry(t)
	Register("fake", factory("fake"))

	if !IsRegistered("fake") {
		t.Fatal("fake backend not registered")
	}
	b, err := Get("fake")
	if err != nil {
		t.Fatalf("Get(fake) error = %v", err)
	}
	if b.Name() != "fake" {
		t.Errorf("Name() = %q", b.Name())
	}
	s, err := b.NewSurface(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Pixels().Bounds(); got != image.Rect(0, 0, 4, 3) {
		t.Errorf("surface bounds = %v", got)
	}
	if _, err := b.NewSurface(0, 3); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewSurface(0, 3) error = %v", err)
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	withRegistry(t)
	if _, err := Get("nonexistent"); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Get(nonexistent) error = %v, want %v", err, ErrBackendNotAvailable)
	}
}

func TestRegistryAvailableSorted(t *testing.T) {
	withRegistry(t)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		Register(name, factory(name))
	}
	want := []string{"alpha", "mid", "zeta"}
	if got := Available(); !slices.Equal(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}

func TestRegistryDefault(t *testing.T) {
	tests := []struct {
		name       string
		registered []string
		want       string
	}{
		{"none", nil, ""},
		{"priority wins", []string{"alpha", BackendSoftware}, BackendSoftware},
		{"fallback by name", []string{"zeta", "beta"}, "beta"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withRegistry(t)
			for _, name := range tt.registered {
				Register(name, factory(name))
			}
			b := Default()
			if tt.want == "" {
				if b != nil {
					t.Errorf("Default() = %q, want nil", b.Name())
				}
				return
			}
			if b == nil || b.Name() != tt.want {
				t.Errorf("Default() = %v, want %q", b, tt.want)
			}
		})
	}
}

func TestRegistryUnregister(t *testing.T) {
	withRegistry(t)
	Register("temp", factory("temp"))
	Unregister("temp")
	if IsRegistered("temp") {
		t.Error("temp still registered after Unregister")
	}
	Unregister("temp") // no-op
}

func TestRegistryReplace(t *testing.T) {
	withRegistry(t)
	Register("x", factory("first"))
	Register("x", factory("second"))
	b, err := Get("x")
	if err != nil || b.Name() != "second" {
		t.Errorf("Get(x) = %v, %v; want the second factory", b, err)
	}
}
