package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/immersivevr/immersive/pkg/domain/model"
	"github.com/immersivevr/immersive/pkg/utils/logging"
	"github.com/immersivevr/immersive/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultTimeout bounds every request unless overridden
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of an error response is read
const maxErrorBody = 64 << 10

type client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
}

type Option func(*client)

// WithTimeout sets the per request deadline. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a catalog client for the API served at baseURL
func New(baseURL string, opts ...Option) (Client, error) {
	if baseURL == "" {
		return nil, goerr.New("catalog API URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid catalog API URL", goerr.V(URLKey, baseURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.New("catalog API URL must be http or https", goerr.V(URLKey, baseURL))
	}

	c := &client{
		baseURL: u,
		http:    http.DefaultClient,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *client) ListModels(ctx context.Context) ([]*model.ModelRecord, error) {
	var records []*model.ModelRecord
	if err := c.get(ctx, "/api/models", &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []*model.ModelRecord{}
	}
	return records, nil
}

func (c *client) GetModel(ctx context.Context, id int64) (*model.ModelRecord, error) {
	var record model.ModelRecord
	if err := c.get(ctx, "/api/models/"+strconv.FormatInt(id, 10), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *client) Appearance(ctx context.Context, id int64) (model.Appearance, error) {
	var appearance model.Appearance
	if err := c.get(ctx, "/api/models/"+strconv.FormatInt(id, 10)+"/appearance", &appearance); err != nil {
		return model.Appearance{}, err
	}
	return appearance, nil
}

func (c *client) endpoint(path string) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	return u.String()
}

func (c *client) get(ctx context.Context, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.endpoint(path)
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.V(URLKey, target))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return goerr.Wrap(err, "catalog request failed",
			goerr.V(URLKey, target), goerr.V(RequestIDKey, requestID))
	}
	defer func() {
		safe.Drain(ctx, resp.Body)
		safe.Close(ctx, resp.Body)
	}()

	logging.From(ctx).Debug("catalog request",
		"url", target,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp, target, requestID)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode catalog response",
			goerr.V(URLKey, target), goerr.V(RequestIDKey, requestID))
	}
	return nil
}

// responseError turns a non-2xx response into an error carrying the
// server's message when it sent one.
func responseError(resp *http.Response, target, requestID string) error {
	var body struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err := json.Unmarshal(data, &body); err != nil || body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode)
	}

	opts := []goerr.Option{
		goerr.V(StatusKey, resp.StatusCode),
		goerr.V(URLKey, target),
		goerr.V(RequestIDKey, requestID),
	}
	if resp.StatusCode == http.StatusNotFound {
		return goerr.Wrap(ErrNotFound, body.Message, opts...)
	}
	return goerr.New(body.Message, opts...)
}
