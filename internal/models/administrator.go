package models

import "time"

// Administrator é a conta de equipe que opera o painel administrativo.
// E-mail não é único (ver usecase/auth); username é.
type Administrator struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:100;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	IsStaff     bool `gorm:"default:false" json:"is_staff"`
	IsSuperuser bool `gorm:"default:false" json:"is_superuser"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
