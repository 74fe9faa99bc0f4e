package domain

import "context"

// NoteRepository persists generated notes.
type NoteRepository interface {
	// Create stores a note and returns it with ID and CreatedAt set.
	Create(ctx context.Context, note *Note, uid int64) (*Note, error)

	// ListByUID returns the user's notes, newest first.
	ListByUID(ctx context.Context, uid int64) ([]*Note, error)
}

// UserRepository persists user accounts.
type UserRepository interface {
	// GetByUID fetches a user by id, nil when not found.
	GetByUID(ctx context.Context, uid int64) (*User, error)

	// GetByEmail fetches a user by email, nil when not found.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByUsername fetches a user by username, nil when not found.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create stores a user and returns it with ID set.
	Create(ctx context.Context, user *User) (*User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, uid int64, passwordHash string) error
}
