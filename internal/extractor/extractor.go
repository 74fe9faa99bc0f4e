// Package extractor turns a note source (YouTube video, PDF or DOCX
// upload) into plain text.
package extractor

import (
	"context"

	"github.com/notin-app/notin-service/internal/domain"
	"github.com/notin-app/notin-service/pkg/code"
)

// Payload carries the raw input for one extraction. URL is set for
// youtube sources, File for uploaded documents.
type Payload struct {
	URL  string
	File []byte
}

// Extractor extracts plain text from one source type.
type Extractor interface {
	Extract(ctx context.Context, payload Payload) (string, error)
}

// ParseSourceType validates the submitted source type string.
func ParseSourceType(s string) (domain.SourceType, error) {
	switch domain.SourceType(s) {
	case domain.SourceTypeYouTube, domain.SourceTypePDF, domain.SourceTypeDOCX:
		return domain.SourceType(s), nil
	}
	return "", code.ErrorInvalidSource
}

// Registry dispatches extraction by source type.
type Registry struct {
	extractors map[domain.SourceType]Extractor
}

func NewRegistry() *Registry {
	return &Registry{extractors: map[domain.SourceType]Extractor{}}
}

// Register binds an extractor to a source type, replacing any previous
// binding.
func (r *Registry) Register(t domain.SourceType, e Extractor) {
	r.extractors[t] = e
}

// Extract runs the extractor registered for t.
func (r *Registry) Extract(ctx context.Context, t domain.SourceType, payload Payload) (string, error) {
	e, ok := r.extractors[t]
	if !ok {
		return "", code.ErrorInvalidSource
	}
	return e.Extract(ctx, payload)
}
