package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/memoirhq/memoir-backend/internal/model"
	"github.com/memoirhq/memoir-backend/internal/store"
	"github.com/memoirhq/memoir-backend/internal/story"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a Postgres-backed store over database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Autobiographies() store.Autobiographies { return &autobiographies{db: s.db} }
func (s *pgStore) Shares() store.Shares                   { return &shares{db: s.db} }

// HealthPing implements health.HealthPinger for the Postgres-backed store.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Bootstrap creates the document tables if they do not exist.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS autobiographies (
            user_id    TEXT PRIMARY KEY,
            data       JSONB NOT NULL,
            updated_at TIMESTAMPTZ
        );
        CREATE TABLE IF NOT EXISTS shared_stories (
            share_id      TEXT PRIMARY KEY,
            owner_id      TEXT NOT NULL,
            data          JSONB NOT NULL,
            creation_time TIMESTAMPTZ NOT NULL DEFAULT now()
        );
    `)
	return err
}

// --- Autobiographies ---

type autobiographies struct{ db *sql.DB }

func (a *autobiographies) Load(ctx context.Context, userID string) (*model.AutobiographyData, error) {
	var raw []byte
	row := a.db.QueryRowContext(ctx, `
        SELECT data FROM autobiographies WHERE user_id=$1
    `, userID)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.NewAutobiography(), nil
		}
		return nil, err
	}
	var out model.AutobiographyData
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out.Timeline == nil {
		out.Timeline = []model.LifeEvent{}
	}
	return &out, nil
}

func (a *autobiographies) Save(ctx context.Context, userID string, data *model.AutobiographyData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var updated *time.Time
	if data.UpdatedAt != nil {
		updated = data.UpdatedAt
	}
	_, err = a.db.ExecContext(ctx, `
        INSERT INTO autobiographies (user_id, data, updated_at)
        VALUES ($1,$2,$3)
        ON CONFLICT (user_id) DO UPDATE SET data=EXCLUDED.data, updated_at=EXCLUDED.updated_at
    `, userID, raw, updated)
	return err
}

func (a *autobiographies) ListAll(ctx context.Context) ([]*model.UserRecord, error) {
	rows, err := a.db.QueryContext(ctx, `
        SELECT user_id, data FROM autobiographies ORDER BY user_id
    `)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []*model.UserRecord
	for rows.Next() {
		var userID string
		var raw []byte
		if err := rows.Scan(&userID, &raw); err != nil {
			return nil, err
		}
		var data model.AutobiographyData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, err
		}
		res = append(res, &model.UserRecord{UserID: userID, Data: &data})
	}
	return res, rows.Err()
}

// --- Shares ---

type shares struct{ db *sql.DB }

func (s *shares) Create(ctx context.Context, ownerID string, data *model.AutobiographyData) (*model.SharedStory, error) {
	frozen := data.Clone()
	raw, err := json.Marshal(frozen)
	if err != nil {
		return nil, err
	}
	shareID := uuid.New().String()
	var created time.Time
	row := s.db.QueryRowContext(ctx, `
        INSERT INTO shared_stories (share_id, owner_id, data)
        VALUES ($1,$2,$3)
        RETURNING creation_time
    `, shareID, ownerID, raw)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	return &model.SharedStory{ShareID: shareID, OwnerID: ownerID, Data: frozen, CreationTime: created}, nil
}

func (s *shares) Get(ctx context.Context, shareID string) (*model.SharedStory, error) {
	var out model.SharedStory
	var raw []byte
	row := s.db.QueryRowContext(ctx, `
        SELECT share_id, owner_id, data, creation_time FROM shared_stories WHERE share_id=$1
    `, shareID)
	if err := row.Scan(&out.ShareID, &out.OwnerID, &raw, &out.CreationTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, story.NewNotFoundError("share", shareID)
		}
		return nil, err
	}
	var data model.AutobiographyData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	out.Data = &data
	return &out, nil
}
