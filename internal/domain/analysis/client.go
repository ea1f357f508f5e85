package analysis

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cardiocare/cardiocare/internal/domain/patient"
)

// Analyzer is the client contract for the remote analysis service.
type Analyzer interface {
	// AnalyzeComplete submits a patient record and returns the full
	// prediction + explanations result.
	AnalyzeComplete(ctx context.Context, rec *patient.Record) (*Result, error)
	// SamplePatients fetches the service's example records.
	SamplePatients(ctx context.Context) (*patient.SampleSet, error)
	// Health probes the service's liveness endpoint.
	Health(ctx context.Context) (*ServiceHealth, error)
}

// ErrorKind classifies a failed call to the analysis service. The
// service layer dispatches on the kind, never on message text.
type ErrorKind int

const (
	// KindTimeout: the bounded wait elapsed before a response arrived.
	KindTimeout ErrorKind = iota + 1
	// KindAPI: the service responded with a non-success HTTP status.
	KindAPI
	// KindConnectivity: no response reached us at all.
	KindConnectivity
)

func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindAPI:
		return "api"
	case KindConnectivity:
		return "connectivity"
	}
	return "unknown"
}

// ClientError is the typed failure returned by Analyzer implementations.
// Status and Detail are set only for KindAPI, from the upstream response.
type ClientError struct {
	Kind   ErrorKind
	Status int
	Detail string
	Err    error
}

func (e *ClientError) Error() string {
	switch e.Kind {
	case KindAPI:
		if e.Detail != "" {
			return fmt.Sprintf("analysis service error (%d): %s", e.Status, e.Detail)
		}
		return fmt.Sprintf("analysis service error: %s", http.StatusText(e.Status))
	case KindTimeout:
		return "analysis service did not respond in time"
	default:
		return "analysis service unreachable"
	}
}

func (e *ClientError) Unwrap() error { return e.Err }
