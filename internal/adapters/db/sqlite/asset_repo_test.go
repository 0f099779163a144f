package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
)

func testRepo(t *testing.T) *AssetRepo {
	t.Helper()
	db, err := Init(filepath.Join(t.TempDir(), "assets.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewAssetRepo(db)
}

func TestAssetRepoPutGet(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	a := &domain.Asset{Key: "menuimg_chicken_burger", Name: "Chicken Burger", ContentType: "image/png", Data: []byte{1, 2, 3}}
	if err := repo.Put(ctx, a); err != nil {
		t.Fatal(err)
	}
	got, err := repo.Get(ctx, "menuimg_chicken_burger")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Name != "Chicken Burger" || len(got.Data) != 3 {
		t.Fatalf("asset = %+v", got)
	}

	miss, err := repo.Get(ctx, "menuimg_nothing")
	if err != nil {
		t.Fatal(err)
	}
	if miss != nil {
		t.Fatalf("miss = %+v, want nil", miss)
	}
}

func TestAssetRepoUpsert(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	_ = repo.Put(ctx, &domain.Asset{Key: "menuimg_karak", Data: []byte{1}})
	if err := repo.Put(ctx, &domain.Asset{Key: "menuimg_karak", Name: "Karak", Data: []byte{9, 9}}); err != nil {
		t.Fatal(err)
	}
	got, err := repo.Get(ctx, "menuimg_karak")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Karak" || len(got.Data) != 2 {
		t.Fatalf("asset not replaced: %+v", got)
	}
}

func TestAssetRepoListKeys(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	for _, k := range []string{"menuimg_b", "menuimg_a"} {
		if err := repo.Put(ctx, &domain.Asset{Key: k, Data: []byte{0}}); err != nil {
			t.Fatal(err)
		}
	}
	keys, err := repo.ListKeys(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 || keys[0] != "menuimg_a" || keys[1] != "menuimg_b" {
		t.Fatalf("keys = %v", keys)
	}
}
