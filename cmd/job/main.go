package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"huffman_coding_go/internal/repo"
	"huffman_coding_go/internal/service"
	"huffman_coding_go/pkg/logger"
)

// Round-trips a sample corpus through the pipeline, one run per input in
// parallel, and prints the compression figures.
var corpus = []string{
	"BANANA BANDANA",
	"the quick brown fox jumps over the lazy dog",
	"aaaa",
	"so much depends upon a red wheel barrow glazed with rain water beside the white chickens",
	"sphinx of black quartz, judge my vow",
}

func main() {
	svc := service.NewCoderService(repo.NewRunRepoInMemory(), logger.New())

	ctx := context.Background()
	g, ctx := errgroup.WithContext(ctx)
	for _, text := range corpus {
		text := text
		g.Go(func() error {
			run, err := svc.Encode(ctx, text)
			if err != nil {
				return fmt.Errorf("%q: %w", text, err)
			}
			if !run.Verified {
				return fmt.Errorf("%q: round trip mismatch", text)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	runs, err := svc.List(ctx)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	for _, run := range runs {
		fmt.Printf("%s  %4d -> %4d bits  %6.2f%%  %q\n",
			run.ID, run.Stats.OriginalBits, run.Stats.EncodedBits, run.Stats.Ratio, run.Text)
	}
}
