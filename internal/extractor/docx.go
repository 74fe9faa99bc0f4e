package extractor

import (
	"bytes"
	"context"
	"strings"

	"github.com/notin-app/notin-service/pkg/code"

	"github.com/fumiama/go-docx"
	"go.uber.org/zap"
)

// DOCXExtractor extracts the paragraph text of a Word document.
type DOCXExtractor struct {
	logger *zap.Logger
}

func NewDOCXExtractor(logger *zap.Logger) *DOCXExtractor {
	return &DOCXExtractor{logger: logger}
}

func (e *DOCXExtractor) Extract(ctx context.Context, payload Payload) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(payload.File), int64(len(payload.File)))
	if err != nil {
		e.logger.Error("docx parse failed", zap.Error(err))
		return "", code.ErrorExtraction.WithDetails(err.Error())
	}

	// Paragraphs are joined with newlines.
	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, p.String())
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}
