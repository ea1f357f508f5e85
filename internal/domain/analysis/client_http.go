package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/cardiocare/cardiocare/internal/domain/patient"
)

// HTTPClient talks to the CardioCare analysis service over REST. It
// retries transport-level failures a few times (the analysis call is a
// pure computation, so replays are safe) and never retries on HTTP
// status codes, so upstream errors are reported as-is.
type HTTPClient struct {
	baseURL string
	http    *retryablehttp.Client
}

// NewHTTPClient creates a client for the service at baseURL. The timeout
// bounds each attempt including connection setup and body read.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.Logger = nil
	rc.HTTPClient.Timeout = timeout
	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		// Retry transport failures only; a received response is final.
		return err != nil, nil
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
	}
}

// AnalyzeComplete implements Analyzer.
func (c *HTTPClient) AnalyzeComplete(ctx context.Context, rec *patient.Record) (*Result, error) {
	var out Result
	if err := c.do(ctx, http.MethodPost, "/analise-completa", rec, &out); err != nil {
		return nil, err
	}
	out.Prediction.Category = ParseCategory(string(out.Prediction.Category))
	return &out, nil
}

// SamplePatients implements Analyzer.
func (c *HTTPClient) SamplePatients(ctx context.Context) (*patient.SampleSet, error) {
	var out patient.SampleSet
	if err := c.do(ctx, http.MethodGet, "/exemplo-paciente", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health implements Analyzer.
func (c *HTTPClient) Health(ctx context.Context) (*ServiceHealth, error) {
	var out ServiceHealth
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one call and decodes the JSON response into out. Failures
// are always *ClientError so callers can dispatch on the kind.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ClientError{
			Kind:   KindAPI,
			Status: resp.StatusCode,
			Detail: decodeErrorDetail(resp.Body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ClientError{Kind: KindAPI, Status: resp.StatusCode, Detail: "malformed response body", Err: err}
	}
	return nil
}

// classifyTransportError separates timeouts from plain connectivity
// failures. Anything that produced no usable response and did not time
// out is a connectivity error.
func classifyTransportError(err error) *ClientError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ClientError{Kind: KindTimeout, Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &ClientError{Kind: KindTimeout, Err: err}
	}
	return &ClientError{Kind: KindConnectivity, Err: err}
}

// decodeErrorDetail extracts the service's error detail message, if the
// body carries one.
func decodeErrorDetail(r io.Reader) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.Detail
}
