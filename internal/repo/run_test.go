package repo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"huffman_coding_go/internal/model"
	"huffman_coding_go/internal/repo"
)

func TestInMemorySaveAndFind(t *testing.T) {
	r := repo.NewRunRepoInMemory()
	ctx := context.Background()

	run := &model.Run{ID: "abc123", Text: "banana", CreatedAt: time.Now()}
	if err := r.Save(ctx, run); err != nil {
		t.Fatal(err)
	}

	got, err := r.FindByID(ctx, "abc123")
	if err != nil {
		t.Fatal(err)
	}
	if got.Text != "banana" {
		t.Errorf("Text = %q, want banana", got.Text)
	}
}

func TestInMemoryNotFound(t *testing.T) {
	r := repo.NewRunRepoInMemory()
	if _, err := r.FindByID(context.Background(), "missing"); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("FindByID(missing) = %v, want ErrNotFound", err)
	}
}

func TestInMemoryListOrderedByCreation(t *testing.T) {
	r := repo.NewRunRepoInMemory()
	ctx := context.Background()

	base := time.Now()
	for i, id := range []string{"c", "a", "b"} {
		run := &model.Run{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Second)}
		if err := r.Save(ctx, run); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := r.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("List returned %d runs, want 3", len(runs))
	}
	for i, want := range []string{"c", "a", "b"} {
		if runs[i].ID != want {
			t.Errorf("runs[%d].ID = %q, want %q", i, runs[i].ID, want)
		}
	}
}
