package dto

import "github.com/notin-app/notin-service/pkg/timex"

// NoteGenerateRequest note generation parameters. The source file
// arrives as a multipart upload and is read by the handler.
type NoteGenerateRequest struct {
	SourceType string `json:"source_type" form:"source_type" binding:"required"`
	URL        string `json:"url" form:"url"`
}

// NoteDTO note response object. SourceURL is null for notes without an
// originating URL.
type NoteDTO struct {
	ID        int64      `json:"id"`
	UID       int64      `json:"uid"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	SourceURL *string    `json:"sourceUrl"`
	CreatedAt timex.Time `json:"createdAt"`
}
