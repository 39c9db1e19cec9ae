package models

import "time"

type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Usuario   string    `gorm:"uniqueIndex;size:50;not null" json:"usuario"`
	Clave     string    `gorm:"size:100;not null" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Usuario) TableName() string { return "usuarios" }
