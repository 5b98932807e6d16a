package repository

import (
	"context"
	"testing"
)

func TestCategoryRepository_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	first, err := repo.GetOrCreate(ctx, "alice", "work", "#ff0000")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if first.Color != "#ff0000" {
		t.Errorf("Color = %q, want %q", first.Color, "#ff0000")
	}

	again, err := repo.GetOrCreate(ctx, "alice", "work", "#00ff00")
	if err != nil {
		t.Fatalf("GetOrCreate again: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("second GetOrCreate returned new record %q, want %q", again.ID, first.ID)
	}
	if again.Color != "#ff0000" {
		t.Errorf("existing category color changed to %q", again.Color)
	}

	// Same name under another user is a separate record.
	other, err := repo.GetOrCreate(ctx, "bob", "work", "#0000ff")
	if err != nil {
		t.Fatalf("GetOrCreate other user: %v", err)
	}
	if other.ID == first.ID {
		t.Error("categories are shared across users")
	}
}

func TestCategoryRepository_GetOrCreate_EmptyName(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	category, err := repo.GetOrCreate(ctx, "alice", "", "#fff")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if category != nil {
		t.Errorf("GetOrCreate with empty name = %+v, want nil", category)
	}
}

func TestCategoryRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	for _, name := range []string{"work", "health", "study"} {
		if _, err := repo.GetOrCreate(ctx, "alice", name, "#fff"); err != nil {
			t.Fatalf("GetOrCreate %s: %v", name, err)
		}
	}
	if _, err := repo.GetOrCreate(ctx, "bob", "other", "#fff"); err != nil {
		t.Fatalf("GetOrCreate bob: %v", err)
	}

	categories, err := repo.ListByUser(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("ListByUser len = %d, want 3", len(categories))
	}
	// Sorted by name.
	want := []string{"health", "study", "work"}
	for i, name := range want {
		if categories[i].Name != name {
			t.Errorf("categories[%d] = %q, want %q", i, categories[i].Name, name)
		}
	}
}

func TestCategoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	category, err := repo.GetOrCreate(ctx, "alice", "work", "#fff")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if err := repo.Delete(ctx, "alice", category.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "alice", category.ID); err != nil {
		t.Errorf("second Delete: %v, want nil", err)
	}
	remaining, err := repo.ListByUser(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("ListByUser after delete = %d, want 0", len(remaining))
	}
}
