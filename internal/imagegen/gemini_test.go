package imagegen

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"google.golang.org/genai"

	"github.com/jmylchreest/hairhue/internal/storage"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

type fakeModels struct {
	model    string
	contents []*genai.Content
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.contents = model, contents
	return f.resp, f.err
}

func TestGeminiTransform(t *testing.T) {
	img := pngBytes(t)
	models := &fakeModels{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "recoloured"},
				{InlineData: &genai.Blob{MIMEType: "image/png", Data: img}},
			}},
		}},
	}}
	store := storage.NewMemoryStorage("http://files")

	c := newGeminiClient(models, store)
	c.fetch = func(context.Context, string) ([]byte, error) { return img, nil }

	res, err := c.Transform(context.Background(), Request{Prompt: "copper hair", ImageURL: "http://files/in.png"})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	if models.model != DefaultGeminiModel {
		t.Errorf("model = %q", models.model)
	}
	parts := models.contents[0].Parts
	if len(parts) != 2 || parts[0].Text != "copper hair" || parts[1].InlineData == nil || parts[1].InlineData.MIMEType != "image/png" {
		t.Errorf("request parts = %+v", parts)
	}
	if res.Description != "recoloured" {
		t.Errorf("description = %q", res.Description)
	}
	if obj, ok := store.Get(res.ImageURL); !ok || obj.ContentType != "image/png" {
		t.Errorf("result not uploaded: %q", res.ImageURL)
	}
}

func TestGeminiErrors(t *testing.T) {
	img := pngBytes(t)
	boom := errors.New("boom")

	tests := []struct {
		name   string
		models *fakeModels
		fetch  func(context.Context, string) ([]byte, error)
		want   error
	}{
		{
			name:   "fetch fails",
			models: &fakeModels{},
			fetch:  func(context.Context, string) ([]byte, error) { return nil, boom },
			want:   boom,
		},
		{
			name:   "model fails",
			models: &fakeModels{err: boom},
			fetch:  func(context.Context, string) ([]byte, error) { return img, nil },
			want:   boom,
		},
		{
			name:   "no image",
			models: &fakeModels{resp: &genai.GenerateContentResponse{}},
			fetch:  func(context.Context, string) ([]byte, error) { return img, nil },
			want:   ErrNoImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newGeminiClient(tt.models, storage.NewMemoryStorage("http://files"), WithGeminiModel("other-model"))
			c.fetch = tt.fetch
			if _, err := c.Transform(context.Background(), Request{}); !errors.Is(err, tt.want) {
				t.Errorf("Transform() error = %v, want %v", err, tt.want)
			}
		})
	}
}
