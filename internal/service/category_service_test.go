package service

import (
	"context"
	"errors"
	"testing"
)

func TestCategoryCreate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.mustRegister(t, "a@b.com")

	created, err := env.categories.Create(ctx, user.ID, "work", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Color != defaultCategoryColor {
		t.Errorf("Color = %q, want default %q", created.Color, defaultCategoryColor)
	}

	// Re-creating the same name hands back the stored record; the new
	// color is ignored.
	again, err := env.categories.Create(ctx, user.ID, "work", "#000000")
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if again.ID != created.ID || again.Color != created.Color {
		t.Errorf("second Create = %+v, want original %+v", again, created)
	}

	if _, err := env.categories.Create(ctx, user.ID, "", "#fff"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty name error = %v, want ErrInvalidInput", err)
	}
}

func TestCategoryDelete_LeavesTaskLabels(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.mustRegister(t, "a@b.com")

	task := env.mustCreateTask(t, user.ID, TaskInput{Title: "x", Category: "work"})

	categories, err := env.categories.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("categories = %d, want 1", len(categories))
	}

	if err := env.categories.Delete(ctx, user.ID, categories[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := env.tasks.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Category != "work" {
		t.Errorf("task Category = %q, want untouched work label", got.Category)
	}
}
