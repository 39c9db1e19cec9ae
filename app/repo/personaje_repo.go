package repo

import (
	"github.com/ckoockiy/api-rest-dbz/app/models"

	"gorm.io/gorm"
)

type PersonajeRepository struct{ db *gorm.DB }

func NewPersonajeRepository(db *gorm.DB) *PersonajeRepository { return &PersonajeRepository{db: db} }

func (r *PersonajeRepository) Create(p *models.Personaje) error { return r.db.Create(p).Error }

func (r *PersonajeRepository) FindByID(id uint) (*models.Personaje, error) {
	var p models.Personaje
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonajeRepository) FindAll() ([]models.Personaje, error) {
	var ps []models.Personaje
	if err := r.db.Order("id").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *PersonajeRepository) Save(p *models.Personaje) error { return r.db.Save(p).Error }

// Delete reports how many rows went away so callers can tell a missing id
// from a successful delete.
func (r *PersonajeRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.Personaje{}, id)
	return res.RowsAffected, res.Error
}
