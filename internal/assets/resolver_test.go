package assets

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
)

type memRepo struct{ byKey map[string]*domain.Asset }

func (m *memRepo) Get(_ context.Context, key string) (*domain.Asset, error) {
	return m.byKey[key], nil
}
func (m *memRepo) Put(_ context.Context, a *domain.Asset) error {
	m.byKey[a.Key] = a
	return nil
}
func (m *memRepo) ListKeys(_ context.Context) ([]string, error) {
	keys := make([]string, 0, len(m.byKey))
	for k := range m.byKey {
		keys = append(keys, k)
	}
	return keys, nil
}

func repoWith(names ...string) *memRepo {
	m := &memRepo{byKey: map[string]*domain.Asset{}}
	for _, n := range names {
		k := DeriveKey(n)
		m.byKey[k] = &domain.Asset{Key: k, Name: n, Data: []byte{0xFF}}
	}
	return m
}

func TestResolveExactIDKey(t *testing.T) {
	r := NewResolver(repoWith("SKU-9"), 0.75, zap.NewNop())
	a, err := r.Resolve(context.Background(), "SKU-9", "Totally Different Name")
	if err != nil {
		t.Fatal(err)
	}
	if a == nil || a.Name != "SKU-9" {
		t.Fatalf("asset = %+v", a)
	}
}

func TestResolveExactNameKey(t *testing.T) {
	r := NewResolver(repoWith("Chicken Burger"), 0.75, zap.NewNop())
	a, err := r.Resolve(context.Background(), "auto-gen-0", "Chicken  Burger!")
	if err != nil {
		t.Fatal(err)
	}
	if a == nil {
		t.Fatal("no match for normalized name key")
	}
}

func TestResolveFuzzy(t *testing.T) {
	r := NewResolver(repoWith("Chicken Burger"), 0.75, zap.NewNop())
	a, err := r.Resolve(context.Background(), "", "Chiken Burger")
	if err != nil {
		t.Fatal(err)
	}
	if a == nil {
		t.Fatal("fuzzy match above threshold not found")
	}
}

func TestResolveSubstring(t *testing.T) {
	// Too far for a fuzzy hit, but the stored key is contained in the name key.
	r := NewResolver(repoWith("Chicken"), 0.75, zap.NewNop())
	a, err := r.Resolve(context.Background(), "", "Grilled Chicken Burger Combo")
	if err != nil {
		t.Fatal(err)
	}
	if a == nil {
		t.Fatal("substring containment match not found")
	}
}

func TestResolveMiss(t *testing.T) {
	r := NewResolver(repoWith("Greek Salad"), 0.75, zap.NewNop())
	a, err := r.Resolve(context.Background(), "auto-gen-3", "Molten Lava Cake")
	if err != nil {
		t.Fatal(err)
	}
	if a != nil {
		t.Fatalf("unexpected match: %+v", a)
	}
}
