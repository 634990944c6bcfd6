package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"huffman_coding_go/internal/model"
)

type runRepoPG struct {
	pool *pgxpool.Pool
}

func NewRunRepoPG(pool *pgxpool.Pool) RunRepo {
	return &runRepoPG{pool: pool}
}

func (r *runRepoPG) Save(ctx context.Context, run *model.Run) error {
	freqs, err := json.Marshal(run.Frequencies)
	if err != nil {
		return fmt.Errorf("marshal frequencies: %w", err)
	}
	codes, err := json.Marshal(run.Codes)
	if err != nil {
		return fmt.Errorf("marshal codes: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO runs (id, input, frequencies, codes, encoded, original_bits, encoded_bits, saved_bits, ratio, verified, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET created_at = EXCLUDED.created_at`,
		run.ID, run.Text, freqs, codes, run.Encoded,
		run.Stats.OriginalBits, run.Stats.EncodedBits, run.Stats.SavedBits, run.Stats.Ratio,
		run.Verified, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (r *runRepoPG) FindByID(ctx context.Context, id string) (*model.Run, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, input, frequencies, codes, encoded, original_bits, encoded_bits, saved_bits, ratio, verified, created_at
FROM runs WHERE id = $1`, id)
	run, err := scanRun(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return run, err
}

func (r *runRepoPG) List(ctx context.Context) ([]*model.Run, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, input, frequencies, codes, encoded, original_bits, encoded_bits, saved_bits, ratio, verified, created_at
FROM runs ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []*model.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func scanRun(row pgx.Row) (*model.Run, error) {
	var (
		run          model.Run
		freqs, codes []byte
	)
	err := row.Scan(&run.ID, &run.Text, &freqs, &codes, &run.Encoded,
		&run.Stats.OriginalBits, &run.Stats.EncodedBits, &run.Stats.SavedBits, &run.Stats.Ratio,
		&run.Verified, &run.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(freqs, &run.Frequencies); err != nil {
		return nil, fmt.Errorf("unmarshal frequencies: %w", err)
	}
	if err := json.Unmarshal(codes, &run.Codes); err != nil {
		return nil, fmt.Errorf("unmarshal codes: %w", err)
	}
	return &run, nil
}
