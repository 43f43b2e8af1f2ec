package models

import "time"

// Cliente é a empresa que acessa o portal com CNPJ + senha.
type Cliente struct {
	ID uint `gorm:"primaryKey" json:"id"`

	NomeEmpresa string `gorm:"size:255;not null" json:"nome_empresa"`
	CNPJ        string `gorm:"size:18;uniqueIndex;not null" json:"cnpj"`
	SenhaHash   string `gorm:"size:255;not null" json:"-"`

	Documentos []Documento `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"documentos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
