package model

import (
	"github.com/notin-app/notin-service/pkg/timex"
)

// User is the persistence model for accounts.
type User struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Email     string     `gorm:"column:email;uniqueIndex"`
	Username  string     `gorm:"column:username;uniqueIndex"`
	Password  string     `gorm:"column:password"`
	Avatar    string     `gorm:"column:avatar"`
	CreatedAt timex.Time `gorm:"column:created_at"`
	UpdatedAt timex.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "user"
}
