// Package guard is the single choke point for cross-account isolation:
// it resolves the requesting account and, when a note id is involved,
// confirms ownership with one combined lookup. A note that belongs to a
// different account surfaces as storage.ErrNoteNotFound, never as a
// distinct "forbidden" condition.
package guard

import (
	"notepad/internal/models"
)

type AccountGetter interface {
	GetUserByID(userID int) (*models.User, error)
}

type OwnedNoteGetter interface {
	GetNote(userID, noteID int) (*models.Note, error)
}

type Guard struct {
	accounts AccountGetter
	notes    OwnedNoteGetter
}

func New(accounts AccountGetter, notes OwnedNoteGetter) *Guard {
	return &Guard{
		accounts: accounts,
		notes:    notes,
	}
}

func (g *Guard) ResolveAccount(userID int) (*models.User, error) {
	return g.accounts.GetUserByID(userID)
}

// ResolveOwnedNote must stay a single filtered lookup. Fetching by note
// id and comparing owners afterward would leak existence through error
// shape and timing.
func (g *Guard) ResolveOwnedNote(userID, noteID int) (*models.Note, error) {
	return g.notes.GetNote(userID, noteID)
}
