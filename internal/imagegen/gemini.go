package imagegen

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"google.golang.org/genai"

	"github.com/jmylchreest/hairhue/internal/logging"
	"github.com/jmylchreest/hairhue/internal/storage"
	"github.com/jmylchreest/hairhue/internal/upload"
	httputil "github.com/jmylchreest/hairhue/internal/util/http"
)

const (
	// GeminiName is the Gemini provider name.
	GeminiName = "gemini"

	// DefaultGeminiModel edits images from text and image input.
	DefaultGeminiModel = "gemini-2.5-flash-image"
)

// contentGenerator is the part of the genai client used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient edits photos with a Gemini image model. Gemini returns image
// bytes, so results are published through an Uploader.
type GeminiClient struct {
	models   contentGenerator
	model    string
	uploader storage.Uploader
	fetch    func(ctx context.Context, url string) ([]byte, error)
	logger   hclog.Logger
}

// GeminiOption configures a GeminiClient.
type GeminiOption func(*GeminiClient)

// WithGeminiModel overrides DefaultGeminiModel.
func WithGeminiModel(model string) GeminiOption {
	return func(c *GeminiClient) {
		if model != "" {
			c.model = model
		}
	}
}

// WithGeminiLogger sets the logger.
func WithGeminiLogger(l hclog.Logger) GeminiOption {
	return func(c *GeminiClient) { c.logger = logging.OrNull(l) }
}

// WithGeminiHTTPClient sets the client used to fetch source images.
func WithGeminiHTTPClient(hc *http.Client) GeminiOption {
	return func(c *GeminiClient) {
		c.fetch = func(ctx context.Context, url string) ([]byte, error) {
			return httputil.Fetch(ctx, url, httputil.FetchOptions{Client: hc, MaxBytes: upload.MaxBytes})
		}
	}
}

// NewGeminiClient connects to the Gemini API with apiKey.
func NewGeminiClient(ctx context.Context, apiKey string, uploader storage.Uploader, opts ...GeminiOption) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s: api key not configured", GeminiName)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gen AI client: %w", err)
	}

	return newGeminiClient(client.Models, uploader, opts...), nil
}

func newGeminiClient(models contentGenerator, uploader storage.Uploader, opts ...GeminiOption) *GeminiClient {
	c := &GeminiClient{
		models:   models,
		model:    DefaultGeminiModel,
		uploader: uploader,
		logger:   hclog.NewNullLogger(),
		fetch: func(ctx context.Context, url string) ([]byte, error) {
			return httputil.Fetch(ctx, url, httputil.FetchOptions{Timeout: 30 * time.Second, MaxBytes: upload.MaxBytes})
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements Generator.
func (c *GeminiClient) Name() string { return GeminiName }

// Transform implements Generator.
func (c *GeminiClient) Transform(ctx context.Context, req Request) (*Result, error) {
	src, err := c.fetch(ctx, req.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch source image: %w", GeminiName, err)
	}
	info, err := upload.Inspect(src)
	if err != nil {
		return nil, fmt.Errorf("%s: source image: %w", GeminiName, err)
	}

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			genai.NewPartFromText(req.Prompt),
			genai.NewPartFromBytes(src, info.ContentType),
		},
	}}
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	c.logger.Debug("calling model", "model", c.model, "prompt_len", len(req.Prompt))
	resp, err := c.models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: image generation failed: %w", GeminiName, err)
	}

	blob, text := firstImage(resp)
	if blob == nil {
		return nil, fmt.Errorf("%s: %w", GeminiName, ErrNoImage)
	}

	out, err := upload.Inspect(blob.Data)
	if err != nil {
		return nil, fmt.Errorf("%s: generated image: %w", GeminiName, err)
	}

	url, err := c.uploader.Upload(ctx, storage.Object{Data: blob.Data, ContentType: out.ContentType, Ext: out.Ext()})
	if err != nil {
		return nil, fmt.Errorf("%s: publish result: %w", GeminiName, err)
	}

	return &Result{ImageURL: url, Description: text}, nil
}

// firstImage returns the first inline image and any text in resp.
func firstImage(resp *genai.GenerateContentResponse) (*genai.Blob, string) {
	if resp == nil {
		return nil, ""
	}

	var text string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Text != "" && text == "" {
				text = part.Text
			}
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData, text
			}
		}
	}
	return nil, text
}
