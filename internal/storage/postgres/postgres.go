package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"notepad/internal/models"
	"notepad/internal/storage"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type Storage struct {
	db *sql.DB
}

func New(storagePath string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	if err := bootstrap(db); err != nil {
		return nil, fmt.Errorf("%s: bootstrap: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func bootstrap(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(120) UNIQUE NOT NULL,
			password_hash VARCHAR(256),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS notes (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			category TEXT,
			is_pinned BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create notes table: %w", err)
	}
	return nil
}

func (s *Storage) Ping() error {
	return s.db.Ping()
}

func (s *Storage) SaveUser(email, password string) (int, error) {
	const op = "storage.postgres.SaveUser"

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("%s: hash password: %w", op, err)
	}

	var userID int
	err = s.db.QueryRow(
		"INSERT INTO users(email, password_hash) VALUES($1, $2) RETURNING id",
		email, string(hashedPassword),
	).Scan(&userID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, storage.ErrUserExists
		}
		return 0, fmt.Errorf("%s: insert user: %w", op, err)
	}

	return userID, nil
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	const op = "storage.postgres.GetUserByEmail"

	var u models.User
	err := s.db.QueryRow(
		"SELECT id, email, password_hash, created_at FROM users WHERE email=$1",
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}
	return &u, nil
}

func (s *Storage) GetUserByID(userID int) (*models.User, error) {
	const op = "storage.postgres.GetUserByID"

	var u models.User
	err := s.db.QueryRow(
		"SELECT id, email, password_hash, created_at FROM users WHERE id=$1",
		userID,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}
	return &u, nil
}

// DeleteUser removes the account; its notes go with it via the cascade
// on notes.user_id.
func (s *Storage) DeleteUser(userID int) error {
	const op = "storage.postgres.DeleteUser"

	res, err := s.db.Exec("DELETE FROM users WHERE id=$1", userID)
	if err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return storage.ErrUserNotFound
	}
	return nil
}

func (s *Storage) SaveNote(userID int, title, content string, category *string, isPinned bool) (*models.Note, error) {
	const op = "storage.postgres.SaveNote"

	var n models.Note
	err := s.db.QueryRow(
		`INSERT INTO notes(user_id, title, content, category, is_pinned)
		 VALUES($1, $2, $3, $4, $5)
		 RETURNING id, user_id, title, content, category, is_pinned, created_at, updated_at`,
		userID, title, content, category, isPinned,
	).Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Category, &n.IsPinned, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: insert note: %w", op, err)
	}
	return &n, nil
}

// GetNote looks the note up by id and owner in one query, so a note that
// exists but belongs to someone else is indistinguishable from one that
// does not exist at all.
func (s *Storage) GetNote(userID, noteID int) (*models.Note, error) {
	const op = "storage.postgres.GetNote"

	var n models.Note
	err := s.db.QueryRow(
		`SELECT id, user_id, title, content, category, is_pinned, created_at, updated_at
		 FROM notes WHERE id=$1 AND user_id=$2`,
		noteID, userID,
	).Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Category, &n.IsPinned, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}
	return &n, nil
}

func (s *Storage) GetAllNotes(userID int, category *string, isPinned *bool) ([]models.Note, error) {
	const op = "storage.postgres.GetAllNotes"

	query := `SELECT id, user_id, title, content, category, is_pinned, created_at, updated_at
		FROM notes WHERE user_id = $1`
	args := []interface{}{userID}

	if category != nil {
		args = append(args, *category)
		query += " AND category = $" + strconv.Itoa(len(args))
	}
	if isPinned != nil {
		args = append(args, *isPinned)
		query += " AND is_pinned = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY is_pinned DESC, updated_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Category, &n.IsPinned, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return notes, nil
}

// UpdateNote writes the note back in a single owner-scoped statement and
// refreshes updated_at.
func (s *Storage) UpdateNote(note *models.Note) error {
	const op = "storage.postgres.UpdateNote"

	err := s.db.QueryRow(
		`UPDATE notes SET title=$1, content=$2, category=$3, is_pinned=$4, updated_at=NOW()
		 WHERE id=$5 AND user_id=$6
		 RETURNING updated_at`,
		note.Title, note.Content, note.Category, note.IsPinned, note.ID, note.UserID,
	).Scan(&note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNoteNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}
	return nil
}

func (s *Storage) DeleteNote(noteID, userID int) error {
	const op = "storage.postgres.DeleteNote"

	res, err := s.db.Exec("DELETE FROM notes WHERE id=$1 AND user_id=$2", noteID, userID)
	if err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return storage.ErrNoteNotFound
	}
	return nil
}

func (s *Storage) GetCategories(userID int) ([]string, error) {
	const op = "storage.postgres.GetCategories"

	rows, err := s.db.Query(
		"SELECT DISTINCT category FROM notes WHERE user_id=$1 AND category IS NOT NULL ORDER BY category",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return categories, nil
}
