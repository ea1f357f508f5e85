package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoResult is returned when a session has no stored analysis result,
// or its result has expired with the session.
var ErrNoResult = errors.New("no analysis result for session")

// ResultRepository stores the single current-result slot per session.
// Save fully replaces any previous result for the session; results are
// never merged and never outlive the session TTL.
type ResultRepository interface {
	Save(ctx context.Context, sessionID uuid.UUID, res *Result, ttl time.Duration) error
	Get(ctx context.Context, sessionID uuid.UUID) (*Result, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}
