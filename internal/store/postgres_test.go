package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jmylchreest/hairhue/internal/choice"
)

func TestOpenPostgresWithoutDSN(t *testing.T) {
	if _, err := OpenPostgres(context.Background(), "", nil); !errors.Is(err, ErrNoDatabase) {
		t.Errorf("OpenPostgres(\"\") error = %v, want ErrNoDatabase", err)
	}
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	if err := r.Record(context.Background(), Transformation{}); err != nil {
		t.Errorf("Nop.Record() error = %v", err)
	}
}

// TestPostgresRoundTrip needs a disposable database in
// HAIRHUE_TEST_DATABASE_URL.
func TestPostgresRoundTrip(t *testing.T) {
	dsn := os.Getenv("HAIRHUE_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("HAIRHUE_TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := OpenPostgres(ctx, dsn, nil)
	if err != nil {
		t.Fatalf("OpenPostgres() error = %v", err)
	}
	defer pg.Close()

	if err := pg.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	in := Transformation{
		SourceURL: "https://img/in.jpg",
		ResultURL: "https://img/out.jpg",
		Prompt:    "auburn hair color",
		Choice:    choice.NewSingleTone("auburn"),
		Provider:  "fal",
	}
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	pg.now = func() time.Time { return fixed }

	in.ID = "6f1c7a1e-4a55-4b8e-9a3b-1c0e0d7b2f10"
	if err := pg.Record(ctx, in); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	defer pg.db.ExecContext(context.Background(), "DELETE FROM transformations WHERE id = $1", in.ID)

	got, err := pg.Get(ctx, in.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Prompt != in.Prompt || got.Provider != "fal" || got.Choice.SingleTone == nil || got.Choice.SingleTone.ColorID != "auburn" {
		t.Errorf("Get() = %+v", got)
	}
	if !got.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, fixed)
	}
}
