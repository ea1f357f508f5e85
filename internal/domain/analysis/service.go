package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cardiocare/cardiocare/internal/domain/patient"
)

// ErrAnalysisInFlight is returned when a session submits while its
// previous submission is still outstanding.
var ErrAnalysisInFlight = errors.New("an analysis is already in progress for this session")

// Service orchestrates a submission: validation, the remote call, the
// connectivity-only fallback to the local estimator, and the session
// result slot.
type Service struct {
	analyzer Analyzer
	results  ResultRepository
	ttl      time.Duration

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

// NewService creates the analysis service. ttl bounds how long a stored
// result survives; it should match the session lifetime.
func NewService(analyzer Analyzer, results ResultRepository, ttl time.Duration) *Service {
	return &Service{
		analyzer: analyzer,
		results:  results,
		ttl:      ttl,
		inFlight: make(map[uuid.UUID]struct{}),
	}
}

// Analyze validates the record, submits it to the remote service, and
// stores the outcome in the session's result slot. Only one submission
// per session may be outstanding at a time.
//
// When the remote service is unreachable (connectivity failure), the
// local estimator substitutes a demonstration-mode result so the user
// still sees an assessment. Timeout and upstream API errors are
// reported as failures without substitution.
func (s *Service) Analyze(ctx context.Context, sessionID uuid.UUID, rec *patient.Record) (*Result, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	if !s.begin(sessionID) {
		return nil, ErrAnalysisInFlight
	}
	defer s.end(sessionID)

	res, err := s.analyzer.AnalyzeComplete(ctx, rec)
	if err != nil {
		var cerr *ClientError
		if !errors.As(err, &cerr) || cerr.Kind != KindConnectivity {
			return nil, err
		}
		res = Estimate(rec)
	}

	if err := s.results.Save(ctx, sessionID, res, s.ttl); err != nil {
		return nil, fmt.Errorf("store result: %w", err)
	}
	return res, nil
}

// Current returns the session's stored result, or ErrNoResult.
func (s *Service) Current(ctx context.Context, sessionID uuid.UUID) (*Result, error) {
	return s.results.Get(ctx, sessionID)
}

// SamplePatients returns example records for prefill, from the remote
// service when reachable and from the built-in set otherwise.
func (s *Service) SamplePatients(ctx context.Context) (*patient.SampleSet, error) {
	samples, err := s.analyzer.SamplePatients(ctx)
	if err != nil {
		var cerr *ClientError
		if errors.As(err, &cerr) && cerr.Kind == KindConnectivity {
			local := patient.Samples()
			return &local, nil
		}
		return nil, err
	}
	return samples, nil
}

func (s *Service) begin(sessionID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *Service) end(sessionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}
