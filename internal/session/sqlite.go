package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
)

var ErrNotFound = errors.New("session: not found")

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	token      TEXT PRIMARY KEY,
	user_json  TEXT NOT NULL,
	saved_at   INTEGER NOT NULL
);
`

// SQLiteStore keeps sessions in a local sqlite file, the server-side analog
// of the original dashboard's localStorage token/user keys.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sess *domain.Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}
	savedAt := sess.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (token, user_json, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(token) DO UPDATE SET user_json = excluded.user_json, saved_at = excluded.saved_at`,
		sess.Token, string(userJSON), savedAt.UTC().UnixMilli())
	return err
}

func (s *SQLiteStore) Load(ctx context.Context, token string) (*domain.Session, error) {
	var userJSON string
	var savedAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT user_json, saved_at FROM sessions WHERE token = ?`, token).
		Scan(&userJSON, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, err
	}
	return &domain.Session{
		Token:   token,
		User:    user,
		SavedAt: time.UnixMilli(savedAt).UTC(),
	}, nil
}

func (s *SQLiteStore) Clear(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
