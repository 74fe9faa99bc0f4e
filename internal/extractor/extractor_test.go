package extractor

import (
	"context"
	"testing"

	"github.com/notin-app/notin-service/internal/domain"
	"github.com/notin-app/notin-service/pkg/code"
	"github.com/notin-app/notin-service/pkg/transcript"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFetcher struct {
	segments []transcript.Segment
	err      error
}

func (s *stubFetcher) Fetch(ctx context.Context, videoID string) ([]transcript.Segment, error) {
	return s.segments, s.err
}

func TestParseSourceType(t *testing.T) {
	for _, valid := range []string{"youtube", "pdf", "docx"} {
		st, err := ParseSourceType(valid)
		require.NoError(t, err)
		assert.Equal(t, domain.SourceType(valid), st)
	}

	_, err := ParseSourceType("epub")
	assert.ErrorIs(t, err, code.ErrorInvalidSource)

	_, err = ParseSourceType("")
	assert.ErrorIs(t, err, code.ErrorInvalidSource)
}

func TestVideoIDFromURL(t *testing.T) {
	id, err := videoIDFromURL("https://www.youtube.com/watch?v=abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	_, err = videoIDFromURL("https://www.youtube.com/watch")
	assert.ErrorIs(t, err, code.ErrorInvalidSource)

	_, err = videoIDFromURL("://not-a-url")
	assert.ErrorIs(t, err, code.ErrorInvalidSource)
}

func TestYouTubeExtractJoinsSegments(t *testing.T) {
	e := NewYouTubeExtractor(&stubFetcher{
		segments: []transcript.Segment{{Text: "Hi"}, {Text: "there"}},
	}, zap.NewNop())

	text, err := e.Extract(context.Background(), Payload{URL: "https://www.youtube.com/watch?v=abc123"})
	require.NoError(t, err)
	assert.Equal(t, "Hi there", text)
}

func TestYouTubeExtractFetchError(t *testing.T) {
	e := NewYouTubeExtractor(&stubFetcher{err: errors.New("captions unavailable")}, zap.NewNop())

	_, err := e.Extract(context.Background(), Payload{URL: "https://www.youtube.com/watch?v=abc123"})
	assert.ErrorIs(t, err, code.ErrorExtraction)
}

func TestPDFExtractMalformed(t *testing.T) {
	e := NewPDFExtractor(zap.NewNop())

	_, err := e.Extract(context.Background(), Payload{File: []byte("not a pdf")})
	assert.ErrorIs(t, err, code.ErrorExtraction)
}

func TestDOCXExtractMalformed(t *testing.T) {
	e := NewDOCXExtractor(zap.NewNop())

	_, err := e.Extract(context.Background(), Payload{File: []byte("not a docx")})
	assert.ErrorIs(t, err, code.ErrorExtraction)
}

func TestRegistryUnknownType(t *testing.T) {
	r := NewRegistry()
	_, err := r.Extract(context.Background(), domain.SourceType("epub"), Payload{})
	assert.ErrorIs(t, err, code.ErrorInvalidSource)
}
