package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resultRepoPG struct{ pool *pgxpool.Pool }

// NewResultRepoPG creates a Postgres-backed result slot store.
func NewResultRepoPG(pool *pgxpool.Pool) ResultRepository {
	return &resultRepoPG{pool: pool}
}

func (r *resultRepoPG) Save(ctx context.Context, sessionID uuid.UUID, res *Result, ttl time.Duration) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode analysis result: %w", err)
	}

	// Opportunistic cleanup of expired slots; session results never
	// outlive their TTL.
	if _, err := r.pool.Exec(ctx, `DELETE FROM analysis_result WHERE expires_at < NOW()`); err != nil {
		return fmt.Errorf("expire stale results: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO analysis_result (session_id, result, demo_mode, created_at, expires_at)
		VALUES ($1, $2, $3, NOW(), NOW() + make_interval(secs => $4))
		ON CONFLICT (session_id) DO UPDATE
		SET result = EXCLUDED.result,
		    demo_mode = EXCLUDED.demo_mode,
		    created_at = EXCLUDED.created_at,
		    expires_at = EXCLUDED.expires_at`,
		sessionID, payload, res.DemoMode, ttl.Seconds())
	if err != nil {
		return fmt.Errorf("save analysis result: %w", err)
	}
	return nil
}

func (r *resultRepoPG) Get(ctx context.Context, sessionID uuid.UUID) (*Result, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `
		SELECT result FROM analysis_result
		WHERE session_id = $1 AND expires_at >= NOW()`,
		sessionID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoResult
	}
	if err != nil {
		return nil, fmt.Errorf("load analysis result: %w", err)
	}

	var res Result
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, fmt.Errorf("decode analysis result: %w", err)
	}
	return &res, nil
}

func (r *resultRepoPG) Delete(ctx context.Context, sessionID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM analysis_result WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("delete analysis result: %w", err)
	}
	return nil
}
