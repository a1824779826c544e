package imagegen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/hairhue/internal/logging"
	httputil "github.com/jmylchreest/hairhue/internal/util/http"
)

const (
	// FalName is the fal.ai provider name.
	FalName = "fal"

	// DefaultFalBaseURL is the fal.ai synchronous endpoint.
	DefaultFalBaseURL = "https://fal.run"

	falEditPath = "/fal-ai/nano-banana/edit"
)

// FalClient calls the fal.ai nano-banana edit model.
type FalClient struct {
	baseURL string
	key     string
	timeout time.Duration
	client  *http.Client
	logger  hclog.Logger
}

// FalOption configures a FalClient.
type FalOption func(*FalClient)

// WithFalBaseURL overrides DefaultFalBaseURL.
func WithFalBaseURL(u string) FalOption {
	return func(c *FalClient) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithFalHTTPClient sets the HTTP client.
func WithFalHTTPClient(hc *http.Client) FalOption {
	return func(c *FalClient) { c.client = hc }
}

// WithFalTimeout bounds each call.
func WithFalTimeout(d time.Duration) FalOption {
	return func(c *FalClient) { c.timeout = d }
}

// WithFalLogger sets the logger.
func WithFalLogger(l hclog.Logger) FalOption {
	return func(c *FalClient) { c.logger = logging.OrNull(l) }
}

// NewFalClient returns a client authenticating with key.
func NewFalClient(key string, opts ...FalOption) *FalClient {
	c := &FalClient{
		baseURL: DefaultFalBaseURL,
		key:     key,
		timeout: 2 * time.Minute,
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements Generator.
func (c *FalClient) Name() string { return FalName }

type falRequest struct {
	Prompt       string   `json:"prompt"`
	ImageURLs    []string `json:"image_urls"`
	NumImages    int      `json:"num_images"`
	OutputFormat string   `json:"output_format"`
}

type falResponse struct {
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	Description string `json:"description"`
}

// Transform implements Generator.
func (c *FalClient) Transform(ctx context.Context, req Request) (*Result, error) {
	if c.key == "" {
		return nil, fmt.Errorf("%s: api key not configured", FalName)
	}

	body := falRequest{
		Prompt:       req.Prompt,
		ImageURLs:    []string{req.ImageURL},
		NumImages:    1,
		OutputFormat: "jpeg",
	}

	start := time.Now()
	var resp falResponse
	err := httputil.PostJSON(ctx, c.baseURL+falEditPath, body, &resp, httputil.FetchOptions{
		Timeout: c.timeout,
		Client:  c.client,
		Headers: map[string]string{"Authorization": "Key " + c.key},
	})
	if err != nil {
		var se *httputil.StatusError
		if errors.As(err, &se) {
			c.logger.Warn("request rejected", "status", se.Status)
			return nil, &APIError{Provider: FalName, Status: se.Status, Body: se.Body}
		}
		return nil, fmt.Errorf("%s: %w", FalName, err)
	}

	if len(resp.Images) == 0 || resp.Images[0].URL == "" {
		return nil, fmt.Errorf("%s: %w", FalName, ErrNoImage)
	}

	c.logger.Debug("image generated", "duration", time.Since(start))
	return &Result{ImageURL: resp.Images[0].URL, Description: resp.Description}, nil
}
