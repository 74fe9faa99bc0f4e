package dao

import (
	"context"
	"time"

	"github.com/notin-app/notin-service/internal/domain"
	"github.com/notin-app/notin-service/internal/model"
	"github.com/notin-app/notin-service/pkg/timex"
)

// noteRepository implements domain.NoteRepository.
type noteRepository struct {
	dao *Dao
}

func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:        m.ID,
		UID:       m.UID,
		Title:     m.Title,
		Content:   m.Content,
		SourceURL: m.SourceURL,
		CreatedAt: time.Time(m.CreatedAt),
	}
}

func (r *noteRepository) toModel(note *domain.Note) *model.Note {
	if note == nil {
		return nil
	}
	return &model.Note{
		ID:        note.ID,
		UID:       note.UID,
		Title:     note.Title,
		Content:   note.Content,
		SourceURL: note.SourceURL,
		CreatedAt: timex.Time(note.CreatedAt),
	}
}

// Create stores a note for the given owner.
func (r *noteRepository) Create(ctx context.Context, note *domain.Note, uid int64) (*domain.Note, error) {
	m := r.toModel(note)
	m.UID = uid
	if time.Time(m.CreatedAt).IsZero() {
		m.CreatedAt = timex.Now()
	}
	if err := r.dao.DB().WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// ListByUID returns the owner's notes ordered by creation time, newest
// first.
func (r *noteRepository) ListByUID(ctx context.Context, uid int64) ([]*domain.Note, error) {
	var ms []*model.Note
	err := r.dao.DB().WithContext(ctx).
		Where("uid = ?", uid).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	notes := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, r.toDomain(m))
	}
	return notes, nil
}
