package dao

import (
	"context"
	"testing"
	"time"

	"github.com/notin-app/notin-service/internal/domain"

	"github.com/gookit/goutil/dump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()

	db, err := NewDBEngine(&DatabaseConfig{
		Type:            "sqlite",
		Path:            ":memory:",
		AutoMigrate:     true,
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: "30m",
		ConnMaxIdleTime: "10m",
	})
	require.NoError(t, err)
	return New(db)
}

func TestNoteCreate(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	note, err := repo.Create(ctx, &domain.Note{
		Title:     "Test Title",
		Content:   "# Test\ncontent",
		SourceURL: "https://www.youtube.com/watch?v=abc123",
	}, 1)
	require.NoError(t, err)

	dump.P(note)

	assert.NotZero(t, note.ID)
	assert.Equal(t, int64(1), note.UID)
	assert.Equal(t, "Test Title", note.Title)
	assert.Equal(t, "# Test\ncontent", note.Content)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", note.SourceURL)
	assert.False(t, note.CreatedAt.IsZero())
}

func TestNoteListByUIDOrder(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, &domain.Note{
			Title:     title,
			Content:   "body",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}, 1)
		require.NoError(t, err)
	}

	notes, err := repo.ListByUID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "third", notes[0].Title)
	assert.Equal(t, "second", notes[1].Title)
	assert.Equal(t, "first", notes[2].Title)
}

func TestNoteListByUIDExcludesOtherOwners(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Note{Title: "mine", Content: "a"}, 1)
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Note{Title: "theirs", Content: "b"}, 2)
	require.NoError(t, err)

	notes, err := repo.ListByUID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "mine", notes[0].Title)

	empty, err := repo.ListByUID(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUserRepository(t *testing.T) {
	d := newTestDao(t)
	repo := NewUserRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "hash",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "alice", byEmail.Username)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, byName)

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.UpdatePassword(ctx, created.ID, "newhash"))
	updated, err := repo.GetByUID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", updated.Password)
}
