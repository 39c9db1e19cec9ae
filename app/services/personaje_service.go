package services

import (
	"errors"
	"io"

	"github.com/ckoockiy/api-rest-dbz/app/dto"
	"github.com/ckoockiy/api-rest-dbz/app/models"
	"github.com/ckoockiy/api-rest-dbz/app/repo"
	"github.com/ckoockiy/api-rest-dbz/app/storage"
	"github.com/ckoockiy/api-rest-dbz/global"

	"gorm.io/gorm"
)

var ErrPersonajeNoEncontrado = errors.New("no se encontro el personaje solicitado")

type CrearPersonaje struct {
	Nombre      string
	Raza        string
	Planeta     string
	Descripcion string
	Edad        int
	Altura      int
	Peso        int
	PoderPelea  int
	Habilidades string
}

// Upload is an incoming image: the client-supplied filename plus its bytes.
type Upload struct {
	Nombre    string
	Contenido io.Reader
}

type PersonajeService struct {
	personajes *repo.PersonajeRepository
	archivos   *storage.Store
}

func NewPersonajeService(personajes *repo.PersonajeRepository, archivos *storage.Store) *PersonajeService {
	return &PersonajeService{personajes: personajes, archivos: archivos}
}

// Create stages the image, commits the row, then promotes the staged file
// into place. A failed insert rolls the staged file back; the database and
// the upload dir share no transaction, so a crash between commit and promote
// still leaves a row whose image is missing.
func (s *PersonajeService) Create(datos CrearPersonaje, imagen Upload) (*models.Personaje, error) {
	nombre, err := s.archivos.SanitizeFilename(imagen.Nombre)
	if err != nil {
		return nil, err
	}
	staged, err := s.archivos.Stage(nombre, imagen.Contenido)
	if err != nil {
		return nil, err
	}
	p := &models.Personaje{
		Nombre:      datos.Nombre,
		Raza:        datos.Raza,
		Planeta:     datos.Planeta,
		Descripcion: datos.Descripcion,
		Imagen:      []byte(nombre),
		Edad:        datos.Edad,
		Altura:      datos.Altura,
		Peso:        datos.Peso,
		PoderPelea:  datos.PoderPelea,
		Habilidades: datos.Habilidades,
	}
	if err := s.personajes.Create(p); err != nil {
		s.archivos.Discard(staged)
		return nil, err
	}
	if err := s.archivos.Promote(staged, nombre); err != nil {
		global.Logger.Error().Err(err).Uint("id", p.ID).Msg("image promote failed after row commit")
		return nil, err
	}
	return p, nil
}

func (s *PersonajeService) Get(id uint) (*models.Personaje, error) {
	p, err := s.personajes.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonajeNoEncontrado
		}
		return nil, err
	}
	return p, nil
}

func (s *PersonajeService) List() ([]models.Personaje, error) {
	return s.personajes.FindAll()
}

// Update mutates only the fields present in cambios. A replacement image is
// staged first and the old file stays on disk until the row update commits.
func (s *PersonajeService) Update(id uint, cambios dto.PersonajeUpdate, imagen *Upload) (*models.Personaje, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	anterior := p.ImagenNombre()
	var staged, nuevoNombre string
	if imagen != nil {
		nuevoNombre, err = s.archivos.SanitizeFilename(imagen.Nombre)
		if err != nil {
			return nil, err
		}
		staged, err = s.archivos.Stage(nuevoNombre, imagen.Contenido)
		if err != nil {
			return nil, err
		}
		p.Imagen = []byte(nuevoNombre)
	}

	aplicarCambios(p, cambios)

	if err := s.personajes.Save(p); err != nil {
		if staged != "" {
			s.archivos.Discard(staged)
		}
		return nil, err
	}
	if staged != "" {
		if err := s.archivos.Promote(staged, nuevoNombre); err != nil {
			global.Logger.Error().Err(err).Uint("id", p.ID).Msg("image promote failed after row update")
			return nil, err
		}
		if anterior != "" && anterior != nuevoNombre {
			s.archivos.Remove(anterior)
		}
	}
	return p, nil
}

// Delete removes the row, then best-effort removes the image so deleted
// characters do not leak files into the upload dir.
func (s *PersonajeService) Delete(id uint) error {
	p, err := s.Get(id)
	if err != nil {
		return err
	}
	rows, err := s.personajes.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPersonajeNoEncontrado
	}
	if nombre := p.ImagenNombre(); nombre != "" {
		s.archivos.Remove(nombre)
	}
	return nil
}

func aplicarCambios(p *models.Personaje, u dto.PersonajeUpdate) {
	if u.Nombre != nil {
		p.Nombre = *u.Nombre
	}
	if u.Raza != nil {
		p.Raza = *u.Raza
	}
	if u.Planeta != nil {
		p.Planeta = *u.Planeta
	}
	if u.Descripcion != nil {
		p.Descripcion = *u.Descripcion
	}
	if u.Edad != nil {
		p.Edad = *u.Edad
	}
	if u.Altura != nil {
		p.Altura = *u.Altura
	}
	if u.Peso != nil {
		p.Peso = *u.Peso
	}
	if u.PoderPelea != nil {
		p.PoderPelea = *u.PoderPelea
	}
	if u.Habilidades != nil {
		p.Habilidades = *u.Habilidades
	}
}
