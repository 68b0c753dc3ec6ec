package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/verdict/internal/common"
	"github.com/Veraticus/verdict/internal/model"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Default endpoint settings.
const (
	DefaultBaseURL = "http://127.0.0.1:5000"
	DefaultPath    = "/predict"
)

// Classifier classifies a single piece of text.
type Classifier interface {
	Classify(ctx context.Context, text string) (model.ClassificationResponse, error)
}

// Config holds the client configuration.
type Config struct {
	HTTPClient *http.Client
	BaseURL    string
	Path       string
	// Timeout bounds a whole exchange. Zero means no timeout.
	Timeout time.Duration
}

// Client is the HTTP implementation of Classifier.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

var _ Classifier = (*Client)(nil)

// New creates a client for the configured service.
func New(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}

	endpoint, err := url.JoinPath(baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("%w: classifier url %q: %v", common.ErrInvalidConfig, baseURL, err)
	}

	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: classifier url %q is not absolute", common.ErrInvalidConfig, endpoint)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
	}, nil
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Classify posts text to the service. Text is trimmed first; empty text
// returns common.ErrEmptyInput without contacting the service.
func (c *Client) Classify(ctx context.Context, text string) (model.ClassificationResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ClassificationResponse{}, common.ErrEmptyInput
	}

	body, err := json.Marshal(model.PredictRequest{Text: text})
	if err != nil {
		return model.ClassificationResponse{}, &common.TransportError{Op: "encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return model.ClassificationResponse{}, &common.TransportError{Op: "create request", Err: err}
	}

	requestID := RequestIDFromContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	started := time.Now()
	common.LogDebug("Posting text to classifier", common.Fields{
		"endpoint":   c.endpoint,
		"request_id": requestID,
		"chars":      len([]rune(text)),
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.ClassificationResponse{}, &common.TransportError{Op: "POST " + c.endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.ClassificationResponse{}, &common.TransportError{Op: "read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.ClassificationResponse{}, decodeFailure(resp.StatusCode, respBody)
	}

	result, err := DecodeResponse(respBody)
	if err != nil {
		return model.ClassificationResponse{}, &common.TransportError{Op: "decode response", Err: err}
	}

	common.LogDebug("Classifier responded", common.Fields{
		"request_id":  requestID,
		"final_label": string(result.FinalLabel),
		"gated":       result.GatedToReview,
		"elapsed":     time.Since(started).String(),
	})

	return result, nil
}

type requestIDKey struct{}

// WithRequestID attaches a request id to ctx for the next Classify call.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id stored in ctx, or a fresh one.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
