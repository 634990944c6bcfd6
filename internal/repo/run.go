package repo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"huffman_coding_go/internal/model"
)

var ErrNotFound = errors.New("not found")

type RunRepo interface {
	Save(ctx context.Context, r *model.Run) error
	FindByID(ctx context.Context, id string) (*model.Run, error)
	List(ctx context.Context) ([]*model.Run, error)
}

type runRepoInMemory struct {
	mu    sync.RWMutex
	store map[string]*model.Run
}

func NewRunRepoInMemory() RunRepo {
	return &runRepoInMemory{store: make(map[string]*model.Run)}
}

func (r *runRepoInMemory) Save(_ context.Context, run *model.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[run.ID] = run
	return nil
}

func (r *runRepoInMemory) FindByID(_ context.Context, id string) (*model.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return run, nil
}

func (r *runRepoInMemory) List(_ context.Context) ([]*model.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Run, 0, len(r.store))
	for _, run := range r.store {
		out = append(out, run)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
