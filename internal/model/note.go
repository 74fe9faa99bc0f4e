package model

import (
	"github.com/notin-app/notin-service/pkg/timex"
)

// Note is the persistence model for generated notes.
type Note struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	UID       int64      `gorm:"column:uid;index"`
	Title     string     `gorm:"column:title"`
	Content   string     `gorm:"column:content;type:text"`
	SourceURL string     `gorm:"column:source_url"`
	CreatedAt timex.Time `gorm:"column:created_at;index"`
}

func (Note) TableName() string {
	return "note"
}
