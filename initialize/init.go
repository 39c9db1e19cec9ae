package initialize

import (
	"fmt"
	"net/http"

	"github.com/ckoockiy/api-rest-dbz/app/controllers"
	"github.com/ckoockiy/api-rest-dbz/app/db"
	jwtutil "github.com/ckoockiy/api-rest-dbz/app/jwt"
	"github.com/ckoockiy/api-rest-dbz/app/middleware"
	"github.com/ckoockiy/api-rest-dbz/app/models"
	"github.com/ckoockiy/api-rest-dbz/app/repo"
	"github.com/ckoockiy/api-rest-dbz/app/services"
	"github.com/ckoockiy/api-rest-dbz/app/storage"
	"github.com/ckoockiy/api-rest-dbz/config"
	"github.com/ckoockiy/api-rest-dbz/global"
	"github.com/ckoockiy/api-rest-dbz/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg        *config.Config
	DB         *gorm.DB
	Router     http.Handler
	Usuarios   *services.UsuarioService
	Personajes *services.PersonajeService
	Archivos   *storage.Store
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	// Connect DB
	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(&models.Usuario{}, &models.Personaje{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Storage
	archivos, err := storage.New(cfg.Storage.UploadDir, cfg.Storage.PublicBaseURL)
	if err != nil {
		return nil, err
	}

	// Services
	usuarioRepo := repo.NewUsuarioRepository(gdb)
	personajeRepo := repo.NewPersonajeRepository(gdb)
	usuarioSvc := services.NewUsuarioService(usuarioRepo)
	personajeSvc := services.NewPersonajeService(personajeRepo, archivos)

	// Token signer: secret from config, or a fresh one per process start.
	secret := []byte(cfg.JWT.Secret)
	if len(secret) == 0 {
		secret = jwtutil.NewRandomSecret()
		global.Logger.Warn().Msg("jwt secret not configured, generated an in-memory one; tokens will not survive a restart")
	}
	signer := &jwtutil.Signer{Secret: secret, Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}

	// Controllers
	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(usuarioSvc, signer)
	personajeCtrl := controllers.NewPersonajeController(personajeSvc, archivos)
	mw := &middleware.Auth{Signer: signer}

	// Router
	h := router.New(httpCtrl, authCtrl, personajeCtrl, mw, cfg.Storage.UploadDir)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Usuarios: usuarioSvc, Personajes: personajeSvc, Archivos: archivos}, nil
}
