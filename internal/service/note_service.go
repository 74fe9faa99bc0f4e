package service

import (
	"context"
	"strings"

	"github.com/notin-app/notin-service/internal/domain"
	"github.com/notin-app/notin-service/internal/dto"
	"github.com/notin-app/notin-service/internal/extractor"
	"github.com/notin-app/notin-service/internal/synthesizer"
	"github.com/notin-app/notin-service/pkg/code"
	"github.com/notin-app/notin-service/pkg/timex"

	"go.uber.org/zap"
)

// NoteService defines the note generation and listing operations.
type NoteService interface {
	// Generate runs the full pipeline: validate, extract, synthesize,
	// persist. Nothing is stored unless every step succeeds.
	Generate(ctx context.Context, uid int64, params *dto.NoteGenerateRequest, file []byte) (*dto.NoteDTO, error)

	// List returns the user's notes, newest first.
	List(ctx context.Context, uid int64) ([]*dto.NoteDTO, error)
}

type noteService struct {
	noteRepo    domain.NoteRepository
	extractors  *extractor.Registry
	synthesizer synthesizer.Synthesizer
	logger      *zap.Logger
}

func NewNoteService(noteRepo domain.NoteRepository, extractors *extractor.Registry, syn synthesizer.Synthesizer, logger *zap.Logger) NoteService {
	return &noteService{
		noteRepo:    noteRepo,
		extractors:  extractors,
		synthesizer: syn,
		logger:      logger,
	}
}

func (s *noteService) domainToDTO(note *domain.Note) *dto.NoteDTO {
	if note == nil {
		return nil
	}
	result := &dto.NoteDTO{
		ID:        note.ID,
		UID:       note.UID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: timex.Time(note.CreatedAt),
	}
	if note.HasSourceURL() {
		url := note.SourceURL
		result.SourceURL = &url
	}
	return result
}

func (s *noteService) Generate(ctx context.Context, uid int64, params *dto.NoteGenerateRequest, file []byte) (*dto.NoteDTO, error) {
	sourceType, err := extractor.ParseSourceType(params.SourceType)
	if err != nil {
		return nil, err
	}

	// Each source type has one required input.
	switch sourceType {
	case domain.SourceTypeYouTube:
		if params.URL == "" {
			return nil, code.ErrorMissingInput.WithDetails("url is required for youtube sources")
		}
	default:
		if len(file) == 0 {
			return nil, code.ErrorMissingInput.WithDetails("source file is required for " + string(sourceType) + " sources")
		}
	}

	text, err := s.extractors.Extract(ctx, sourceType, extractor.Payload{
		URL:  params.URL,
		File: file,
	})
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, code.ErrorEmptyContent
	}

	content, err := s.synthesizer.SynthesizeNotes(ctx, text)
	if err != nil {
		return nil, err
	}

	title, err := s.synthesizer.SynthesizeTitle(ctx, content)
	if err != nil {
		return nil, err
	}

	note := &domain.Note{
		Title:   title,
		Content: content,
	}
	if sourceType == domain.SourceTypeYouTube {
		note.SourceURL = params.URL
	}

	created, err := s.noteRepo.Create(ctx, note, uid)
	if err != nil {
		s.logger.Error("NoteService.Generate store failed",
			zap.Int64("uid", uid),
			zap.String("sourceType", string(sourceType)),
			zap.Error(err),
		)
		return nil, code.ErrorStorage.WithDetails(err.Error())
	}

	s.logger.Info("note generated",
		zap.Int64("uid", uid),
		zap.Int64("noteId", created.ID),
		zap.String("sourceType", string(sourceType)),
	)
	return s.domainToDTO(created), nil
}

func (s *noteService) List(ctx context.Context, uid int64) ([]*dto.NoteDTO, error) {
	notes, err := s.noteRepo.ListByUID(ctx, uid)
	if err != nil {
		s.logger.Error("NoteService.List failed", zap.Int64("uid", uid), zap.Error(err))
		return nil, code.ErrorDBQuery
	}

	result := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		result = append(result, s.domainToDTO(n))
	}
	return result, nil
}

var _ NoteService = (*noteService)(nil)
