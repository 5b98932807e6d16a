package service

import (
	"context"
	"testing"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	if err := env.sample.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	users, err := env.userRepo.Count(ctx)
	if err != nil {
		t.Fatalf("user Count: %v", err)
	}
	if users != int64(len(sampleUsers)) {
		t.Errorf("users = %d, want %d", users, len(sampleUsers))
	}

	tasks, err := env.taskRepo.Count(ctx)
	if err != nil {
		t.Fatalf("task Count: %v", err)
	}
	want := int64(len(sampleUsers) * len(sampleTasks))
	if tasks != want {
		t.Errorf("tasks = %d, want %d", tasks, want)
	}

	// Demo accounts use working credentials.
	if _, err := env.auth.Login(ctx, "john@example.com", "password123"); err != nil {
		t.Errorf("demo login: %v", err)
	}
}

func TestSeed_SkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.mustRegister(t, "existing@b.com")

	if err := env.sample.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	users, err := env.userRepo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if users != 1 {
		t.Errorf("users = %d, want 1 (seed must not touch a populated store)", users)
	}
}
