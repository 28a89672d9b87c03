package guard

import (
	"errors"
	"testing"

	"notepad/internal/storage"
	"notepad/internal/storage/memory"
)

func TestResolveAccount(t *testing.T) {
	store := memory.New()
	g := New(store, store)

	uid, err := store.SaveUser("a@x.com", "pw")
	if err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	user, err := g.ResolveAccount(uid)
	if err != nil {
		t.Fatalf("ResolveAccount failed: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Errorf("Expected email a@x.com, got %q", user.Email)
	}

	if _, err := g.ResolveAccount(999); !errors.Is(err, storage.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestResolveOwnedNote(t *testing.T) {
	store := memory.New()
	g := New(store, store)

	alice, _ := store.SaveUser("a@x.com", "pw1")
	bob, _ := store.SaveUser("b@x.com", "pw2")
	note, _ := store.SaveNote(alice, "T1", "", nil, false)

	got, err := g.ResolveOwnedNote(alice, note.ID)
	if err != nil {
		t.Fatalf("ResolveOwnedNote failed for owner: %v", err)
	}
	if got.ID != note.ID {
		t.Errorf("Expected note %d, got %d", note.ID, got.ID)
	}

	// A foreign note and a missing note are the same failure.
	_, foreignErr := g.ResolveOwnedNote(bob, note.ID)
	_, missingErr := g.ResolveOwnedNote(alice, 999)
	if !errors.Is(foreignErr, storage.ErrNoteNotFound) {
		t.Errorf("Expected ErrNoteNotFound for foreign note, got %v", foreignErr)
	}
	if !errors.Is(missingErr, storage.ErrNoteNotFound) {
		t.Errorf("Expected ErrNoteNotFound for missing note, got %v", missingErr)
	}
}
