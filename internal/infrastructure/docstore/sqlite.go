package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore хранит документы локально: одна строка на документ, тело в JSON.
// Используется для разработки без доступа к Firestore.
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore открывает базу и создаёт таблицу документов
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	// _txlock=immediate берёт блокировку записи в начале транзакции Update,
	// _busy_timeout ждёт её вместо немедленного "database is locked"
	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_txlock=immediate&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// одно соединение: запросы из горутин обработчиков выполняются по очереди
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err = createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{conn: db}, nil
}

// createTables создаёт таблицу документов, если её нет
func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			path TEXT PRIMARY KEY,
			data TEXT NOT NULL
		)
	`)
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, ref Ref, dst any) (bool, error) {
	doc, err := s.load(ctx, s.conn, ref)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, decode(doc, dst)
}

func (s *SQLiteStore) Set(ctx context.Context, ref Ref, data any) error {
	doc, err := encode(data)
	if err != nil {
		return err
	}
	return s.store(ctx, s.conn, ref, doc)
}

func (s *SQLiteStore) Update(ctx context.Context, ref Ref, fields map[string]any) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	doc, err := s.load(ctx, tx, ref)
	if err != nil {
		return err
	}
	if err := merge(doc, fields); err != nil {
		return err
	}
	if err := s.store(ctx, tx, ref, doc); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) IsInitialized() bool {
	return s != nil && s.conn != nil
}

// Close закрывает соединение с базой
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *SQLiteStore) load(ctx context.Context, q queryer, ref Ref) (map[string]any, error) {
	var raw string
	err := q.QueryRowContext(ctx, "SELECT data FROM documents WHERE path = ?", ref.Path()).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("corrupt document %s: %w", ref.Path(), err)
	}
	return doc, nil
}

func (s *SQLiteStore) store(ctx context.Context, q queryer, ref Ref, doc map[string]any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", ref.Path(), err)
	}
	_, err = q.ExecContext(ctx,
		"INSERT OR REPLACE INTO documents (path, data) VALUES (?, ?)",
		ref.Path(), string(raw),
	)
	return err
}

var _ Store = (*SQLiteStore)(nil)
