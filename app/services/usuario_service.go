package services

import (
	"errors"

	"github.com/ckoockiy/api-rest-dbz/app/models"
	"github.com/ckoockiy/api-rest-dbz/app/repo"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsuarioExiste = errors.New("el usuario ya existe")
	// ErrCredencialesInvalidas covers both an unknown username and a wrong
	// password so callers cannot tell registered accounts apart.
	ErrCredencialesInvalidas = errors.New("clave o usuario incorrecto")
)

type UsuarioService struct{ usuarios *repo.UsuarioRepository }

func NewUsuarioService(usuarios *repo.UsuarioRepository) *UsuarioService {
	return &UsuarioService{usuarios: usuarios}
}

// Register stores the bcrypt hash of the password, never the plaintext.
func (s *UsuarioService) Register(usuario, clave string) error {
	count, err := s.usuarios.CountByUsuario(usuario)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrUsuarioExiste
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.usuarios.Create(&models.Usuario{Usuario: usuario, Clave: string(hash)})
}

func (s *UsuarioService) ValidateCredentials(usuario, clave string) (*models.Usuario, error) {
	u, err := s.usuarios.FindByUsuario(usuario)
	if err != nil {
		return nil, ErrCredencialesInvalidas
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Clave), []byte(clave)) != nil {
		return nil, ErrCredencialesInvalidas
	}
	return u, nil
}
