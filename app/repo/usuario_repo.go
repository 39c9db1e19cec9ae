package repo

import (
	"github.com/ckoockiy/api-rest-dbz/app/models"

	"gorm.io/gorm"
)

type UsuarioRepository struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository { return &UsuarioRepository{db: db} }

func (r *UsuarioRepository) CountByUsuario(usuario string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Usuario{}).Where("usuario = ?", usuario).Count(&count).Error
}

func (r *UsuarioRepository) Create(u *models.Usuario) error { return r.db.Create(u).Error }

func (r *UsuarioRepository) FindByUsuario(usuario string) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.db.Where("usuario = ?", usuario).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
