package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jmylchreest/hairhue/internal/choice"
	"github.com/jmylchreest/hairhue/internal/imagegen"
	"github.com/jmylchreest/hairhue/internal/palette"
	"github.com/jmylchreest/hairhue/internal/preset"
	"github.com/jmylchreest/hairhue/internal/prompt"
	"github.com/jmylchreest/hairhue/internal/security"
	"github.com/jmylchreest/hairhue/internal/storage"
	"github.com/jmylchreest/hairhue/internal/store"
	"github.com/jmylchreest/hairhue/internal/upload"
	"github.com/jmylchreest/hairhue/internal/version"
)

// maxJSONBody bounds JSON request bodies.
const maxJSONBody = 64 << 10

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Short(),
	})
}

// handleListPalette serves GET /v1/palette?premium=true&family=blonde.
func (s *Server) handleListPalette(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	includePremium := false
	if v := q.Get("premium"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_query", "premium must be true or false")
			return
		}
		includePremium = b
	}

	colors := s.deps.Palette.Available(includePremium)

	if f := q.Get("family"); f != "" {
		family := palette.Family(f)
		if !family.Valid() {
			writeError(w, http.StatusBadRequest, "invalid_query", "unknown family "+strconv.Quote(f))
			return
		}
		filtered := colors[:0]
		for _, c := range colors {
			if c.Family == family {
				filtered = append(filtered, c)
			}
		}
		colors = filtered
	}

	writeJSON(w, http.StatusOK, map[string]any{"colors": colors})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, map[string]any{
		"baseColorId": id,
		"suggestions": palette.SuggestAccents(id, s.deps.Palette),
	})
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"presets": preset.All()})
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	p, ok := preset.Lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no such preset")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleValidate returns the validator's verdict. A failed validation is
// still a 200: the verdict is the payload.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var c choice.ColorChoice
	if !decodeJSON(w, r, &c) {
		return
	}

	res := choice.Validate(c, s.deps.Palette)
	if !res.OK {
		validationFailuresTotal.WithLabelValues(reasonLabel(res)).Inc()
	}
	writeJSON(w, http.StatusOK, res)
}

// PromptRequest is the body of POST /v1/choices/prompt.
type PromptRequest struct {
	Choice  choice.ColorChoice `json:"choice"`
	Options *prompt.Options    `json:"options,omitempty"`
}

// PromptResponse is the reply to POST /v1/choices/prompt.
type PromptResponse struct {
	Prompt       string             `json:"prompt"`
	SimplePrompt string             `json:"simplePrompt"`
	Maintenance  choice.Maintenance `json:"maintenance"`
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	var req PromptRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	opts := prompt.DefaultOptions()
	if req.Options != nil {
		opts = *req.Options
	}

	p := s.deps.Palette
	writeJSON(w, http.StatusOK, PromptResponse{
		Prompt:       prompt.ToPrompt(req.Choice, p, opts),
		SimplePrompt: prompt.ToSimplePrompt(req.Choice, p),
		Maintenance:  choice.MaintenanceLevel(req.Choice, p),
	})
}

// TransformResponse is the reply to POST /v1/transform.
type TransformResponse struct {
	ImageURL string `json:"imageUrl"`
	Prompt   string `json:"prompt"`
	Provider string `json:"provider"`
}

// handleTransform validates a choice, publishes the source photo and asks a
// generator to recolour it.
func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxBytes+1<<20)
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large", upload.ErrTooLarge.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_form", "expected multipart/form-data")
		return
	}
	defer r.MultipartForm.RemoveAll()

	var c choice.ColorChoice
	if err := json.Unmarshal([]byte(r.FormValue("choice")), &c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_choice", "choice must be a JSON color choice")
		return
	}

	res := choice.Validate(c, s.deps.Palette)
	if !res.OK {
		validationFailuresTotal.WithLabelValues(reasonLabel(res)).Inc()
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:      "invalid_choice",
			Message:    res.Reason,
			Suggestion: res.Suggestion,
		})
		return
	}

	if s.usesPremium(c) && !s.deps.Entitlements.AllowPremium(r) {
		writeError(w, http.StatusForbidden, "premium_required", "premium colors require an upgraded plan")
		return
	}

	gen, ok := s.deps.Generators.Get(r.FormValue("provider"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown_provider", "unknown image provider")
		return
	}

	sourceURL, apiErr := s.sourceImage(r)
	if apiErr != nil {
		writeError(w, apiErr.status, apiErr.code, apiErr.msg)
		return
	}

	text := prompt.ToPrompt(c, s.deps.Palette, prompt.DefaultOptions())
	logger := s.logger.With("provider", gen.Name())

	ctx, cancel := context.WithTimeout(r.Context(), s.config.TransformTimeout)
	defer cancel()

	result, err := gen.Transform(ctx, imagegen.Request{Prompt: text, ImageURL: sourceURL})
	if err != nil {
		transformsTotal.WithLabelValues(gen.Name(), "error").Inc()
		logger.Error("transform failed", "error", err)
		writeError(w, http.StatusBadGateway, "upstream_failed", "image generation failed")
		return
	}
	transformsTotal.WithLabelValues(gen.Name(), "ok").Inc()

	rec := store.Transformation{
		SourceURL: sourceURL,
		ResultURL: result.ImageURL,
		Prompt:    text,
		Choice:    c,
		Provider:  gen.Name(),
	}
	if err := s.deps.Recorder.Record(r.Context(), rec); err != nil {
		logger.Warn("failed to record transformation", "error", err)
	}

	writeJSON(w, http.StatusOK, TransformResponse{
		ImageURL: result.ImageURL,
		Prompt:   text,
		Provider: gen.Name(),
	})
}

// apiError is a request failure with its HTTP status and error code.
type apiError struct {
	status int
	code   string
	msg    string
}

// sourceImage publishes the uploaded file, or accepts an image_url, and
// returns the URL the generator should read.
func (s *Server) sourceImage(r *http.Request) (string, *apiError) {
	file, _, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		return s.publish(r.Context(), file)
	case !errors.Is(err, http.ErrMissingFile):
		return "", &apiError{http.StatusBadRequest, "invalid_image", "could not read image"}
	}

	raw := r.FormValue("image_url")
	if raw == "" {
		return "", &apiError{http.StatusBadRequest, "missing_image", "image or image_url is required"}
	}
	u, err := security.ValidateImageURL(raw)
	if err != nil {
		return "", &apiError{http.StatusBadRequest, "invalid_image_url", "image_url: " + err.Error()}
	}
	return u.String(), nil
}

func (s *Server) publish(ctx context.Context, r io.Reader) (string, *apiError) {
	if s.deps.Uploader == nil {
		return "", &apiError{http.StatusServiceUnavailable, "uploads_disabled", "uploads are not configured; send image_url"}
	}

	data, info, err := upload.Read(r)
	switch {
	case errors.Is(err, upload.ErrTooLarge):
		return "", &apiError{http.StatusRequestEntityTooLarge, "too_large", err.Error()}
	case errors.Is(err, upload.ErrUnsupported), errors.Is(err, upload.ErrEmpty):
		return "", &apiError{http.StatusUnsupportedMediaType, "unsupported_image", err.Error()}
	case err != nil:
		return "", &apiError{http.StatusBadRequest, "invalid_image", err.Error()}
	}

	u, err := s.deps.Uploader.Upload(ctx, storage.Object{Data: data, ContentType: info.ContentType, Ext: info.Ext()})
	if err != nil {
		s.logger.Error("upload failed", "error", err)
		return "", &apiError{http.StatusBadGateway, "upload_failed", "could not store image"}
	}
	return u, nil
}

// usesPremium reports whether any colour in c is premium.
func (s *Server) usesPremium(c choice.ColorChoice) bool {
	for _, id := range c.ColorIDs() {
		if col, ok := s.deps.Palette.Lookup(id); ok && col.IsPremium {
			return true
		}
	}
	return false
}

// reasonLabel maps a failed result to a bounded metric label.
func reasonLabel(res choice.ValidationResult) string {
	switch res.Reason {
	case choice.ReasonInvalidChoice:
		return "invalid_choice"
	case choice.ReasonColorNotFound:
		return "color_not_found"
	case choice.ReasonBaseNotFound:
		return "base_not_found"
	case choice.ReasonAccentNotFound:
		return "accent_not_found"
	case choice.ReasonOmbrePlacement:
		return "ombre_placement"
	case choice.ReasonLowlightsTooStrong:
		return "lowlights_too_strong"
	}
	return "accent_too_close"
}

// decodeJSON decodes a bounded JSON body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}
