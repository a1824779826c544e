// Package store records completed transformations.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/jmylchreest/hairhue/internal/choice"
)

// ErrNoDatabase is returned when a database recorder is requested without a
// DSN.
var ErrNoDatabase = errors.New("no database configured")

// Transformation is one successful recolour.
type Transformation struct {
	ID        string
	SourceURL string
	ResultURL string
	Prompt    string
	Choice    choice.ColorChoice
	Provider  string
	CreatedAt time.Time
}

// Recorder persists transformations.
type Recorder interface {
	Record(ctx context.Context, t Transformation) error
}

// Nop discards records.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(context.Context, Transformation) error { return nil }
