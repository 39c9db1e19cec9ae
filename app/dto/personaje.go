package dto

import "github.com/ckoockiy/api-rest-dbz/app/models"

type PersonajeResponse struct {
	ID          uint   `json:"id"`
	Nombre      string `json:"nombre"`
	Raza        string `json:"raza"`
	Planeta     string `json:"planeta"`
	Descripcion string `json:"descripcion"`
	Imagen      string `json:"imagen"`
	Edad        int    `json:"edad"`
	Altura      int    `json:"altura"`
	Peso        int    `json:"peso"`
	PoderPelea  int    `json:"poderpelea"`
	Habilidades string `json:"habilidades"`
}

// NewPersonajeResponse swaps the stored filename for the public URL it can
// be fetched at.
func NewPersonajeResponse(p *models.Personaje, imagenURL string) PersonajeResponse {
	return PersonajeResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Raza:        p.Raza,
		Planeta:     p.Planeta,
		Descripcion: p.Descripcion,
		Imagen:      imagenURL,
		Edad:        p.Edad,
		Altura:      p.Altura,
		Peso:        p.Peso,
		PoderPelea:  p.PoderPelea,
		Habilidades: p.Habilidades,
	}
}

// PersonajeUpdate carries one optional slot per mutable field; nil means
// "leave as is". A replacement image travels separately as an upload.
type PersonajeUpdate struct {
	Nombre      *string
	Raza        *string
	Planeta     *string
	Descripcion *string
	Edad        *int
	Altura      *int
	Peso        *int
	PoderPelea  *int
	Habilidades *string
}
