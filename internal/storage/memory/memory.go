// Package memory implements the same storage surface as postgres over
// in-process maps. Each instance is fully isolated, which is what the
// tests rely on.
package memory

import (
	"sort"
	"sync"
	"time"

	"notepad/internal/models"
	"notepad/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

type Storage struct {
	mu         sync.RWMutex
	users      map[int]*models.User
	notes      map[int]*models.Note
	nextUserID int
	nextNoteID int
}

func New() *Storage {
	return &Storage{
		users:      make(map[int]*models.User),
		notes:      make(map[int]*models.Note),
		nextUserID: 1,
		nextNoteID: 1,
	}
}

func (s *Storage) Ping() error {
	return nil
}

func (s *Storage) SaveUser(email, password string) (int, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return 0, storage.ErrUserExists
		}
	}

	u := &models.User{
		ID:           s.nextUserID,
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}
	s.users[u.ID] = u
	s.nextUserID++

	return u.ID, nil
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := *u
			return &user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (s *Storage) GetUserByID(userID int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	user := *u
	return &user, nil
}

func (s *Storage) DeleteUser(userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return storage.ErrUserNotFound
	}
	delete(s.users, userID)
	for id, n := range s.notes {
		if n.UserID == userID {
			delete(s.notes, id)
		}
	}
	return nil
}

func (s *Storage) SaveNote(userID int, title, content string, category *string, isPinned bool) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	n := &models.Note{
		ID:        s.nextNoteID,
		UserID:    userID,
		Title:     title,
		Content:   content,
		Category:  category,
		IsPinned:  isPinned,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes[n.ID] = n
	s.nextNoteID++

	note := *n
	return &note, nil
}

func (s *Storage) GetNote(userID, noteID int) (*models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, storage.ErrNoteNotFound
	}
	note := *n
	return &note, nil
}

func (s *Storage) GetAllNotes(userID int, category *string, isPinned *bool) ([]models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]models.Note, 0)
	for _, n := range s.notes {
		if n.UserID != userID {
			continue
		}
		if category != nil && (n.Category == nil || *n.Category != *category) {
			continue
		}
		if isPinned != nil && n.IsPinned != *isPinned {
			continue
		}
		notes = append(notes, *n)
	}

	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].IsPinned != notes[j].IsPinned {
			return notes[i].IsPinned
		}
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})

	return notes, nil
}

func (s *Storage) UpdateNote(note *models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[note.ID]
	if !ok || n.UserID != note.UserID {
		return storage.ErrNoteNotFound
	}

	n.Title = note.Title
	n.Content = note.Content
	n.Category = note.Category
	n.IsPinned = note.IsPinned
	n.UpdatedAt = time.Now()

	note.UpdatedAt = n.UpdatedAt
	return nil
}

func (s *Storage) DeleteNote(noteID, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[noteID]
	if !ok || n.UserID != userID {
		return storage.ErrNoteNotFound
	}
	delete(s.notes, noteID)
	return nil
}

func (s *Storage) GetCategories(userID int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, n := range s.notes {
		if n.UserID != userID || n.Category == nil {
			continue
		}
		if !seen[*n.Category] {
			seen[*n.Category] = true
			categories = append(categories, *n.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}
