package models

import "time"

// Personaje keeps the uploaded image on disk; Imagen holds the raw bytes of
// the sanitized filename, never the image itself.
type Personaje struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Nombre      string    `gorm:"size:50;not null" json:"nombre"`
	Raza        string    `gorm:"size:50;not null" json:"raza"`
	Planeta     string    `gorm:"size:50;not null" json:"planeta"`
	Descripcion string    `gorm:"type:text;not null" json:"descripcion"`
	Imagen      []byte    `gorm:"not null" json:"-"`
	Edad        int       `gorm:"not null" json:"edad"`
	Altura      int       `gorm:"not null" json:"altura"`
	Peso        int       `gorm:"not null" json:"peso"`
	PoderPelea  int       `gorm:"column:poderpelea;not null" json:"poderpelea"`
	Habilidades string    `gorm:"size:200;not null" json:"habilidades"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (Personaje) TableName() string { return "personajes" }

func (p *Personaje) ImagenNombre() string { return string(p.Imagen) }
