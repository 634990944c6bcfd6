package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"huffman_coding_go/internal/model"
	"huffman_coding_go/internal/repo"
	"huffman_coding_go/pkg/huffman"
	"huffman_coding_go/pkg/logger"
	"huffman_coding_go/pkg/stats"
	"huffman_coding_go/pkg/treeviz"
)

type CoderService struct {
	repo   repo.RunRepo
	logger logger.Logger
}

func NewCoderService(r repo.RunRepo, l logger.Logger) *CoderService {
	return &CoderService{repo: r, logger: l}
}

// RunID addresses a run by content: the same text always maps to the same
// run, so re-submitting an input overwrites rather than duplicates.
func RunID(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:12]
}

// Encode runs the full pipeline over text, verifies the round trip and
// persists the run. Empty text surfaces huffman.ErrEmptyInput.
func (s *CoderService) Encode(ctx context.Context, text string) (*model.Run, error) {
	freqs, root, codes, err := huffman.Build(text)
	if err != nil {
		return nil, err
	}
	encoded, err := huffman.Encode(text, codes)
	if err != nil {
		return nil, err
	}
	decoded, err := huffman.Decode(encoded, root)
	if err != nil {
		return nil, err
	}

	run := &model.Run{
		ID:          RunID(text),
		Text:        text,
		Frequencies: frequenciesByString(freqs),
		Codes:       codesByString(codes),
		Encoded:     encoded,
		Stats:       stats.Compute(text, encoded),
		Verified:    decoded == text,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, run); err != nil {
		return nil, err
	}
	s.logger.Infof("run %s: %d -> %d bits (%.2f%% saved)",
		run.ID, run.Stats.OriginalBits, run.Stats.EncodedBits, run.Stats.Ratio)
	return run, nil
}

// EncodeBatch runs one independent pipeline per input concurrently. Each
// pipeline is self-contained, so fan-out needs no coordination beyond the
// result slice.
func (s *CoderService) EncodeBatch(ctx context.Context, texts []string) ([]*model.Run, error) {
	runs := make([]*model.Run, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			run, err := s.Encode(ctx, text)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			runs[i] = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

func (s *CoderService) GetByID(ctx context.Context, id string) (*model.Run, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CoderService) List(ctx context.Context) ([]*model.Run, error) {
	return s.repo.List(ctx)
}

// Decode replays an encoded stream against the tree of a stored run. The
// tree is rebuilt from the stored text; the build is deterministic, so it
// matches the tree the run was encoded with.
func (s *CoderService) Decode(ctx context.Context, id, encoded string) (string, error) {
	root, err := s.treeOf(ctx, id)
	if err != nil {
		return "", err
	}
	return huffman.Decode(encoded, root)
}

// TreeDOT renders the stored run's code tree as Graphviz source.
func (s *CoderService) TreeDOT(ctx context.Context, id string) (string, error) {
	root, err := s.treeOf(ctx, id)
	if err != nil {
		return "", err
	}
	return treeviz.DOT(root), nil
}

func (s *CoderService) treeOf(ctx context.Context, id string) (*huffman.Node, error) {
	run, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_, root, _, err := huffman.Build(run.Text)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func frequenciesByString(freqs huffman.FrequencyTable) map[string]int {
	out := make(map[string]int, len(freqs))
	for s, f := range freqs {
		out[string(s)] = f
	}
	return out
}

func codesByString(codes huffman.CodeTable) map[string]string {
	out := make(map[string]string, len(codes))
	for s, code := range codes {
		out[string(s)] = code
	}
	return out
}
