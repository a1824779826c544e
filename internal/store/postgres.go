package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	_ "github.com/lib/pq" // postgres

	"github.com/jmylchreest/hairhue/internal/logging"
)

const schema = `CREATE TABLE IF NOT EXISTS transformations (
	id         uuid PRIMARY KEY,
	source_url text NOT NULL,
	result_url text NOT NULL,
	prompt     text NOT NULL,
	choice     jsonb NOT NULL,
	provider   text NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now()
)`

const insertTransformation = `INSERT INTO transformations
	(id, source_url, result_url, prompt, choice, provider, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Postgres records transformations in the Supabase Postgres database.
type Postgres struct {
	db     *sql.DB
	logger hclog.Logger
	now    func() time.Time
}

// OpenPostgres connects to dsn and checks the connection.
func OpenPostgres(ctx context.Context, dsn string, logger hclog.Logger) (*Postgres, error) {
	if dsn == "" {
		return nil, ErrNoDatabase
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return NewPostgres(db, logger), nil
}

// NewPostgres wraps an open database handle.
func NewPostgres(db *sql.DB, logger hclog.Logger) *Postgres {
	return &Postgres{db: db, logger: logging.OrNull(logger), now: time.Now}
}

// Migrate creates the transformations table if it does not exist.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate transformations: %w", err)
	}
	return nil
}

// Record implements Recorder. Missing ids and timestamps are filled in.
func (p *Postgres) Record(ctx context.Context, t Transformation) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = p.now().UTC()
	}

	choiceJSON, err := json.Marshal(t.Choice)
	if err != nil {
		return fmt.Errorf("encode choice: %w", err)
	}

	_, err = p.db.ExecContext(ctx, insertTransformation,
		t.ID, t.SourceURL, t.ResultURL, t.Prompt, choiceJSON, t.Provider, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transformation: %w", err)
	}

	p.logger.Debug("recorded transformation", "id", t.ID, "provider", t.Provider)
	return nil
}

// Get loads a transformation by id.
func (p *Postgres) Get(ctx context.Context, id string) (Transformation, error) {
	var (
		t          Transformation
		choiceJSON []byte
	)
	row := p.db.QueryRowContext(ctx, `SELECT id, source_url, result_url, prompt, choice, provider, created_at
		FROM transformations WHERE id = $1`, id)
	if err := row.Scan(&t.ID, &t.SourceURL, &t.ResultURL, &t.Prompt, &choiceJSON, &t.Provider, &t.CreatedAt); err != nil {
		return Transformation{}, fmt.Errorf("load transformation %s: %w", id, err)
	}
	if err := json.Unmarshal(choiceJSON, &t.Choice); err != nil {
		return Transformation{}, fmt.Errorf("decode choice: %w", err)
	}
	return t, nil
}

// Close closes the database handle.
func (p *Postgres) Close() error {
	return p.db.Close()
}
