package service

import (
	"context"
	"testing"

	"github.com/notin-app/notin-service/internal/domain"
	"github.com/notin-app/notin-service/internal/dto"
	"github.com/notin-app/notin-service/internal/extractor"
	"github.com/notin-app/notin-service/pkg/code"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memNoteRepo struct {
	notes  []*domain.Note
	nextID int64
	err    error
}

func (r *memNoteRepo) Create(ctx context.Context, note *domain.Note, uid int64) (*domain.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	stored := *note
	stored.ID = r.nextID
	stored.UID = uid
	r.notes = append(r.notes, &stored)
	return &stored, nil
}

func (r *memNoteRepo) ListByUID(ctx context.Context, uid int64) ([]*domain.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Note
	for i := len(r.notes) - 1; i >= 0; i-- {
		if r.notes[i].UID == uid {
			out = append(out, r.notes[i])
		}
	}
	return out, nil
}

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(ctx context.Context, payload extractor.Payload) (string, error) {
	return s.text, s.err
}

type stubSynthesizer struct {
	notes    string
	title    string
	notesErr error
	titleErr error

	notesInput string
	titleInput string
}

func (s *stubSynthesizer) SynthesizeNotes(ctx context.Context, text string) (string, error) {
	s.notesInput = text
	return s.notes, s.notesErr
}

func (s *stubSynthesizer) SynthesizeTitle(ctx context.Context, text string) (string, error) {
	s.titleInput = text
	return s.title, s.titleErr
}

func newTestNoteService(repo *memNoteRepo, ext extractor.Extractor, syn *stubSynthesizer) NoteService {
	registry := extractor.NewRegistry()
	registry.Register(domain.SourceTypeYouTube, ext)
	registry.Register(domain.SourceTypePDF, ext)
	registry.Register(domain.SourceTypeDOCX, ext)
	return NewNoteService(repo, registry, syn, zap.NewNop())
}

func TestGenerateFromYouTube(t *testing.T) {
	repo := &memNoteRepo{}
	syn := &stubSynthesizer{notes: "# Test", title: "Test"}
	svc := newTestNoteService(repo, &stubExtractor{text: "transcript text"}, syn)

	note, err := svc.Generate(context.Background(), 7, &dto.NoteGenerateRequest{
		SourceType: "youtube",
		URL:        "https://www.youtube.com/watch?v=abc123",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(7), note.UID)
	assert.Equal(t, "Test", note.Title)
	assert.Equal(t, "# Test", note.Content)

	// The title is derived from the generated markdown, not the raw text.
	assert.Equal(t, "transcript text", syn.notesInput)
	assert.Equal(t, "# Test", syn.titleInput)
	require.NotNil(t, note.SourceURL)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", *note.SourceURL)

	require.Len(t, repo.notes, 1)
	assert.Equal(t, int64(7), repo.notes[0].UID)
}

func TestGenerateFromPDFHasNoSourceURL(t *testing.T) {
	repo := &memNoteRepo{}
	svc := newTestNoteService(repo,
		&stubExtractor{text: "pdf text"},
		&stubSynthesizer{notes: "# Doc", title: "Doc"})

	note, err := svc.Generate(context.Background(), 1, &dto.NoteGenerateRequest{
		SourceType: "pdf",
	}, []byte("%PDF-1.4 ..."))
	require.NoError(t, err)
	assert.Nil(t, note.SourceURL)
}

func TestGenerateInvalidSourceType(t *testing.T) {
	repo := &memNoteRepo{}
	svc := newTestNoteService(repo, &stubExtractor{text: "x"}, &stubSynthesizer{notes: "n", title: "t"})

	_, err := svc.Generate(context.Background(), 1, &dto.NoteGenerateRequest{
		SourceType: "epub",
	}, []byte("data"))
	assert.ErrorIs(t, err, code.ErrorInvalidSource)
	assert.Empty(t, repo.notes)
}

func TestGenerateMissingInput(t *testing.T) {
	repo := &memNoteRepo{}
	svc := newTestNoteService(repo, &stubExtractor{text: "x"}, &stubSynthesizer{notes: "n", title: "t"})

	_, err := svc.Generate(context.Background(), 1, &dto.NoteGenerateRequest{
		SourceType: "youtube",
	}, nil)
	assert.ErrorIs(t, err, code.ErrorMissingInput)

	_, err = svc.Generate(context.Background(), 1, &dto.NoteGenerateRequest{
		SourceType: "docx",
	}, nil)
	assert.ErrorIs(t, err, code.ErrorMissingInput)
	assert.Empty(t, repo.notes)
}

func TestGenerateEmptyContentNotPersisted(t *testing.T) {
	repo := &memNoteRepo{}
	svc := newTestNoteService(repo, &stubExtractor{text: "   \n\t "}, &stubSynthesizer{notes: "n", title: "t"})

	_, err := svc.Generate(context.Background(), 1, &dto.NoteGenerateRequest{
		SourceType: "pdf",
	}, []byte("data"))
	assert.ErrorIs(t, err, code.ErrorEmptyContent)
	assert.Empty(t, repo.notes)
}

func TestGenerateExtractionErrorPropagates(t *testing.T) {
	repo := &memNoteRepo{}
	svc := newTestNoteService(repo,
		&stubExtractor{err: code.ErrorExtraction.WithDetails("boom")},
		&stubSynthesizer{notes: "n", title: "t"})

	_, err := svc.Generate(context.Background(), 1, &dto.NoteGenerateRequest{
		SourceType: "pdf",
	}, []byte("data"))
	assert.ErrorIs(t, err, code.ErrorExtraction)
	assert.Empty(t, repo.notes)
}

func TestGenerateSynthesisErrorNotPersisted(t *testing.T) {
	repo := &memNoteRepo{}
	svc := newTestNoteService(repo,
		&stubExtractor{text: "text"},
		&stubSynthesizer{notesErr: code.ErrorGeneration.WithDetails("model down")})

	_, err := svc.Generate(context.Background(), 1, &dto.NoteGenerateRequest{
		SourceType: "pdf",
	}, []byte("data"))
	assert.ErrorIs(t, err, code.ErrorGeneration)
	assert.Empty(t, repo.notes)
}

func TestGenerateTitleErrorNotPersisted(t *testing.T) {
	repo := &memNoteRepo{}
	svc := newTestNoteService(repo,
		&stubExtractor{text: "text"},
		&stubSynthesizer{notes: "# Test", titleErr: code.ErrorGeneration})

	_, err := svc.Generate(context.Background(), 1, &dto.NoteGenerateRequest{
		SourceType: "pdf",
	}, []byte("data"))
	assert.ErrorIs(t, err, code.ErrorGeneration)
	assert.Empty(t, repo.notes)
}

func TestGenerateStorageError(t *testing.T) {
	repo := &memNoteRepo{err: errors.New("disk full")}
	svc := newTestNoteService(repo,
		&stubExtractor{text: "text"},
		&stubSynthesizer{notes: "# Test", title: "Test"})

	_, err := svc.Generate(context.Background(), 1, &dto.NoteGenerateRequest{
		SourceType: "pdf",
	}, []byte("data"))
	assert.ErrorIs(t, err, code.ErrorStorage)
}

func TestListReturnsOwnNotesOnly(t *testing.T) {
	repo := &memNoteRepo{}
	svc := newTestNoteService(repo,
		&stubExtractor{text: "text"},
		&stubSynthesizer{notes: "# Test", title: "Test"})

	_, err := svc.Generate(context.Background(), 1, &dto.NoteGenerateRequest{SourceType: "pdf"}, []byte("a"))
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), 2, &dto.NoteGenerateRequest{SourceType: "pdf"}, []byte("b"))
	require.NoError(t, err)

	notes, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, int64(1), notes[0].UID)

	empty, err := svc.List(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
