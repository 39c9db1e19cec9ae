package services

import (
	"path/filepath"
	"testing"

	"github.com/ckoockiy/api-rest-dbz/app/models"
	"github.com/ckoockiy/api-rest-dbz/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	// one connection keeps concurrent writers off sqlite's lock errors
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&models.Usuario{}, &models.Personaje{}))
	return gdb
}

func newUsuarioService(t *testing.T) (*UsuarioService, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	return NewUsuarioService(repo.NewUsuarioRepository(gdb)), gdb
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, gdb := newUsuarioService(t)

	require.NoError(t, svc.Register("goku", "kamehameha"))

	var u models.Usuario
	require.NoError(t, gdb.Where("usuario = ?", "goku").First(&u).Error)
	assert.NotEqual(t, "kamehameha", u.Clave, "plaintext must never be stored")
	assert.NotEmpty(t, u.Clave)
}

func TestRegisterDuplicate(t *testing.T) {
	svc, gdb := newUsuarioService(t)

	require.NoError(t, svc.Register("goku", "kamehameha"))
	err := svc.Register("goku", "otra-clave")
	assert.ErrorIs(t, err, ErrUsuarioExiste)

	var count int64
	require.NoError(t, gdb.Model(&models.Usuario{}).Where("usuario = ?", "goku").Count(&count).Error)
	assert.EqualValues(t, 1, count, "a duplicate registration must not create a second row")
}

func TestValidateCredentials(t *testing.T) {
	svc, _ := newUsuarioService(t)
	require.NoError(t, svc.Register("goku", "kamehameha"))

	u, err := svc.ValidateCredentials("goku", "kamehameha")
	require.NoError(t, err)
	assert.Equal(t, "goku", u.Usuario)

	_, err = svc.ValidateCredentials("goku", "incorrecta")
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestValidateUnknownUserSameError(t *testing.T) {
	svc, _ := newUsuarioService(t)

	_, err := svc.ValidateCredentials("nadie", "clave")
	assert.ErrorIs(t, err, ErrCredencialesInvalidas,
		"unknown user and wrong password must be indistinguishable")
}
