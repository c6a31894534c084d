package favorites

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/trojanworks/resourcehub/internal/utils"
	"github.com/trojanworks/resourcehub/pkg/resource"
)

func openTestDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "favorites.sqlite")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, path
}

func TestToggleRoundTrip(t *testing.T) {
	db, _ := openTestDB(t)
	overlay := NewOverlay(db)
	ctx := context.Background()

	fav, err := overlay.Toggle(ctx, "Acme Grant")
	if err != nil {
		t.Fatal(err)
	}
	if !fav {
		t.Fatal("first toggle must add")
	}

	if ok, _ := overlay.IsFavorite(ctx, "Acme Grant"); !ok {
		t.Fatal("expected Acme Grant to be a favorite")
	}

	fav, err = overlay.Toggle(ctx, "Acme Grant")
	if err != nil {
		t.Fatal(err)
	}
	if fav {
		t.Fatal("second toggle must remove")
	}

	names, err := overlay.Names(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Fatalf("expected empty set after double toggle, got %v", names)
	}
}

func TestInsertionOrderAndNoDuplicates(t *testing.T) {
	db, _ := openTestDB(t)
	overlay := NewOverlay(db)
	ctx := context.Background()

	for _, name := range []string{"b", "a", "c"} {
		if _, err := overlay.Toggle(ctx, name); err != nil {
			t.Fatal(err)
		}
	}

	names, err := overlay.Names(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !utils.AreSlicesEqual(names, []string{"b", "a", "c"}) {
		t.Fatalf("expected insertion order [b a c], got %v", names)
	}

	// Writing a list with a duplicate must collapse it.
	if err := db.Write(ctx, []string{"x", "x", "y"}); err != nil {
		t.Fatal(err)
	}
	names, err = db.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !utils.AreSlicesEqual(names, []string{"x", "y"}) {
		t.Fatalf("expected duplicates collapsed, got %v", names)
	}
}

func TestSecondReaderObservesMutation(t *testing.T) {
	db, path := openTestDB(t)
	overlay := NewOverlay(db)
	ctx := context.Background()

	if _, err := overlay.Toggle(ctx, "Acme Grant"); err != nil {
		t.Fatal(err)
	}

	other, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer other.Close()

	names, err := NewOverlay(other).Names(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !utils.AreSlicesEqual(names, []string{"Acme Grant"}) {
		t.Fatalf("independent reader sees %v", names)
	}
}

func TestMaterializeFollowsScanOrder(t *testing.T) {
	db, _ := openTestDB(t)
	overlay := NewOverlay(db)
	ctx := context.Background()

	// Favorites inserted external-first.
	for _, name := range []string{"Beta Fund", "Acme Grant"} {
		if _, err := overlay.Toggle(ctx, name); err != nil {
			t.Fatal(err)
		}
	}

	all := []resource.Resource{
		{Name: "Acme Grant", Category: "Funding", Type: resource.Internal},
		{Name: "Mentor Match", Category: "Mentorship", Type: resource.Internal},
		{Name: "Beta Fund", Category: "Accelerators", Type: resource.External},
	}

	matched, err := overlay.Materialize(ctx, all)
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 materialized favorites, got %d", len(matched))
	}
	// Scan order of the full list wins over favorite-insertion order.
	if matched[0].Name != "Acme Grant" || matched[1].Name != "Beta Fund" {
		t.Fatalf("unexpected order: %v", matched)
	}
	if matched[0].Type != resource.Internal || matched[1].Type != resource.External {
		t.Fatalf("provenance annotation lost: %v", matched)
	}
	if matched[0].Category != "Funding" {
		t.Fatalf("group key annotation lost: %v", matched[0])
	}
}
