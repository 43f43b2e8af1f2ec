package models

import "time"

// Documento pertence a exatamente um Cliente. O conteúdo fica no blob store,
// a linha guarda apenas a chave de armazenamento.
type Documento struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ClienteID uint `gorm:"index;not null" json:"cliente_id"`

	Titulo      string `gorm:"size:200;not null" json:"titulo"`
	StorageKey  string `gorm:"size:255;uniqueIndex;not null" json:"-"`
	ContentType string `gorm:"size:100" json:"content_type"`
	Size        int64  `json:"size"`

	// DataEnvio é definida no servidor na criação e nunca muda.
	DataEnvio time.Time `json:"data_envio"`
}
