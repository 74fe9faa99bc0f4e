package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimedText(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.0" dur="1.5">Hi</text>
  <text start="1.5" dur="2.0">there &amp; welcome</text>
  <text start="3.5" dur="1.0">  </text>
</transcript>`)

	segments, err := parseTimedText(data)
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "Hi", segments[0].Text)
	assert.Equal(t, "there & welcome", segments[1].Text)
}

func TestParseTimedTextMalformed(t *testing.T) {
	_, err := parseTimedText([]byte("not xml at all <"))
	assert.Error(t, err)
}

func TestPickTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "https://yt/a", LanguageCode: "de", Kind: "asr"},
		{BaseURL: "https://yt/b", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "https://yt/c", LanguageCode: "en"},
	}

	track, ok := pickTrack(tracks, []string{"en"})
	require.True(t, ok)
	assert.Equal(t, "https://yt/c", track.BaseURL)
}

func TestPickTrackFallsBackToAuto(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "https://yt/a", LanguageCode: "en", Kind: "asr"},
	}

	track, ok := pickTrack(tracks, []string{"en"})
	require.True(t, ok)
	assert.Equal(t, "https://yt/a", track.BaseURL)
}

func TestPickTrackSkipsPoTokenOnly(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "https://yt/a?x=1&exp=xpe", LanguageCode: "en"},
	}

	_, ok := pickTrack(tracks, []string{"en"})
	assert.False(t, ok)
}
