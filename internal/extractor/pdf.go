package extractor

import (
	"bytes"
	"context"
	"strings"

	"github.com/notin-app/notin-service/pkg/code"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// PDFExtractor extracts the text of every page of a PDF document.
type PDFExtractor struct {
	logger *zap.Logger
}

func NewPDFExtractor(logger *zap.Logger) *PDFExtractor {
	return &PDFExtractor{logger: logger}
}

func (e *PDFExtractor) Extract(ctx context.Context, payload Payload) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(payload.File), int64(len(payload.File)))
	if err != nil {
		e.logger.Error("pdf parse failed", zap.Error(err))
		return "", code.ErrorExtraction.WithDetails(err.Error())
	}

	// Page texts are concatenated without a separator.
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Error("pdf page text failed", zap.Int("page", i), zap.Error(err))
			return "", code.ErrorExtraction.WithDetails(err.Error())
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}
