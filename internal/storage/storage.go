// Package storage publishes images and returns URLs an image generator can
// read.
package storage

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
)

// Object is an image to publish.
type Object struct {
	Data        []byte
	ContentType string
	// Ext is the file extension including the dot, e.g. ".jpg".
	Ext string
}

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, obj Object) (string, error)
}

// ObjectKey returns uploads/<yyyy>/<mm>/<uuid><ext> for t.
func ObjectKey(t time.Time, ext string) string {
	return path.Join("uploads", fmt.Sprintf("%04d", t.Year()), fmt.Sprintf("%02d", int(t.Month())), uuid.NewString()+ext)
}
