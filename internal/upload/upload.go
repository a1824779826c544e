// Package upload checks user-supplied photos before they are stored or sent
// to an image generator.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format
)

// MaxBytes is the largest accepted upload.
const MaxBytes = 25 << 20

var (
	// ErrEmpty is returned for zero-length input.
	ErrEmpty = errors.New("image is empty")

	// ErrTooLarge is returned for input over MaxBytes.
	ErrTooLarge = fmt.Errorf("image exceeds %d MiB", MaxBytes>>20)

	// ErrUnsupported is returned when the input is not a decodable image.
	ErrUnsupported = errors.New("unsupported or invalid image format")
)

// Info describes an accepted image.
type Info struct {
	Format      string `json:"format"`
	ContentType string `json:"contentType"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Size        int    `json:"size"`
}

// Ext returns the file extension for the format, with the leading dot.
func (i Info) Ext() string {
	if i.Format == "jpeg" {
		return ".jpg"
	}
	return "." + i.Format
}

var contentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

// Inspect validates data and reports its format and dimensions. Only the
// image header is decoded.
func Inspect(data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, ErrEmpty
	}
	if len(data) > MaxBytes {
		return Info{}, ErrTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	ct, ok := contentTypes[format]
	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrUnsupported, format)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return Info{}, fmt.Errorf("%w: zero dimensions", ErrUnsupported)
	}

	return Info{
		Format:      format,
		ContentType: ct,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Size:        len(data),
	}, nil
}

// Read reads at most MaxBytes+1 from r and inspects the result.
func Read(r io.Reader) ([]byte, Info, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBytes+1))
	if err != nil {
		return nil, Info{}, fmt.Errorf("failed to read image: %w", err)
	}
	info, err := Inspect(data)
	if err != nil {
		return nil, Info{}, err
	}
	return data, info, nil
}

// ReadFile loads and inspects an image from the local filesystem.
func ReadFile(path string) ([]byte, Info, error) {
	if path == "" {
		return nil, Info{}, fmt.Errorf("image path cannot be empty")
	}

	if !slices.Contains(SupportedImageExtensions(), strings.ToLower(filepath.Ext(path))) {
		return nil, Info{}, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
	}

	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Info{}, fmt.Errorf("image file not found: %s", path)
		}
		return nil, Info{}, fmt.Errorf("failed to stat image file: %w", err)
	}
	if st.IsDir() {
		return nil, Info{}, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	f, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, Info{}, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	return Read(f)
}
