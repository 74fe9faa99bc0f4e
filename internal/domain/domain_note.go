// Package domain defines the domain models and repository interfaces.
package domain

import "time"

// SourceType identifies where note content was extracted from.
type SourceType string

const (
	SourceTypeYouTube SourceType = "youtube"
	SourceTypePDF     SourceType = "pdf"
	SourceTypeDOCX    SourceType = "docx"
)

// Note is a generated note owned by a user.
type Note struct {
	ID      int64
	UID     int64
	Title   string
	Content string
	// SourceURL is set only for notes generated from a YouTube video.
	SourceURL string
	CreatedAt time.Time
}

// HasSourceURL reports whether the note carries an originating URL.
func (n *Note) HasSourceURL() bool {
	return n.SourceURL != ""
}
