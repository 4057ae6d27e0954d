package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/memoirhq/memoir-backend/internal/model"
	"github.com/memoirhq/memoir-backend/internal/store"
	"github.com/memoirhq/memoir-backend/internal/story"
)

// Open opens (or creates) the SQLite database at path and verifies
// connectivity. The local build target stores everything in one file.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// modernc.org/sqlite is not safe for concurrent writers over one file.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a SQLite-backed store over database/sql.
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Autobiographies() store.Autobiographies { return &autobiographies{db: s.db} }
func (s *sqliteStore) Shares() store.Shares                   { return &shares{db: s.db} }

// HealthPing implements health.HealthPinger for the SQLite-backed store.
func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Bootstrap creates the document tables if they do not exist.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS autobiographies (
            user_id    TEXT PRIMARY KEY,
            data       TEXT NOT NULL,
            updated_at TIMESTAMP
        );
        CREATE TABLE IF NOT EXISTS shared_stories (
            share_id      TEXT PRIMARY KEY,
            owner_id      TEXT NOT NULL,
            data          TEXT NOT NULL,
            creation_time TIMESTAMP NOT NULL
        );
    `)
	return err
}

// --- Autobiographies ---

type autobiographies struct{ db *sql.DB }

func (a *autobiographies) Load(ctx context.Context, userID string) (*model.AutobiographyData, error) {
	var raw []byte
	row := a.db.QueryRowContext(ctx, `SELECT data FROM autobiographies WHERE user_id=?`, userID)
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
	var updated interface{}
	if data.UpdatedAt != nil {
		updated = data.UpdatedAt.UTC().Format(time.RFC3339)
	}
	_, err = a.db.ExecContext(ctx, `
        INSERT INTO autobiographies (user_id, data, updated_at)
        VALUES (?,?,?)
        ON CONFLICT (user_id) DO UPDATE SET data=excluded.data, updated_at=excluded.updated_at
    `, userID, string(raw), updated)
	return err
}

func (a *autobiographies) ListAll(ctx context.Context) ([]*model.UserRecord, error) {
	rows, err := a.db.QueryContext(ctx, `SELECT user_id, data FROM autobiographies ORDER BY user_id`)
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
	created := time.Now().UTC().Truncate(time.Second)
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO shared_stories (share_id, owner_id, data, creation_time)
        VALUES (?,?,?,?)
    `, shareID, ownerID, string(raw), created.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	return &model.SharedStory{ShareID: shareID, OwnerID: ownerID, Data: frozen, CreationTime: created}, nil
}

func (s *shares) Get(ctx context.Context, shareID string) (*model.SharedStory, error) {
	var out model.SharedStory
	var raw []byte
	var created string
	row := s.db.QueryRowContext(ctx, `
        SELECT share_id, owner_id, data, creation_time FROM shared_stories WHERE share_id=?
    `, shareID)
	if err := row.Scan(&out.ShareID, &out.OwnerID, &raw, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, story.NewNotFoundError("share", shareID)
		}
		return nil, err
	}
	if ts, err := time.Parse(time.RFC3339, created); err == nil {
		out.CreationTime = ts
	}
	var data model.AutobiographyData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	out.Data = &data
	return &out, nil
}
