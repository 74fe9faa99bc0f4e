package extractor

import (
	"context"
	"net/url"
	"strings"

	"github.com/notin-app/notin-service/pkg/code"
	"github.com/notin-app/notin-service/pkg/transcript"

	"go.uber.org/zap"
)

// YouTubeExtractor fetches a video transcript and joins its segments
// into one text.
type YouTubeExtractor struct {
	fetcher transcript.Fetcher
	logger  *zap.Logger
}

func NewYouTubeExtractor(fetcher transcript.Fetcher, logger *zap.Logger) *YouTubeExtractor {
	return &YouTubeExtractor{fetcher: fetcher, logger: logger}
}

// videoIDFromURL pulls the video id out of a watch URL. The id must be
// present as the v query parameter.
func videoIDFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", code.ErrorInvalidSource
	}
	id := u.Query().Get("v")
	if id == "" {
		return "", code.ErrorInvalidSource
	}
	return id, nil
}

func (e *YouTubeExtractor) Extract(ctx context.Context, payload Payload) (string, error) {
	videoID, err := videoIDFromURL(payload.URL)
	if err != nil {
		return "", err
	}

	segments, err := e.fetcher.Fetch(ctx, videoID)
	if err != nil {
		e.logger.Error("transcript fetch failed",
			zap.String("videoId", videoID),
			zap.Error(err))
		return "", code.ErrorExtraction.WithDetails(err.Error())
	}

	texts := make([]string, 0, len(segments))
	for _, s := range segments {
		texts = append(texts, s.Text)
	}
	return strings.Join(texts, " "), nil
}
