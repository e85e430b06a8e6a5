package db_models

import "time"

type Account struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"unique" json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
