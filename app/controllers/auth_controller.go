package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ckoockiy/api-rest-dbz/app/dto"
	jwtutil "github.com/ckoockiy/api-rest-dbz/app/jwt"
	"github.com/ckoockiy/api-rest-dbz/app/services"
	"github.com/ckoockiy/api-rest-dbz/global"
)

type AuthController struct {
	Usuarios *services.UsuarioService
	Signer   *jwtutil.Signer
}

func NewAuthController(usuarios *services.UsuarioService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Usuarios: usuarios, Signer: signer}
}

func (c *AuthController) Registrar(w http.ResponseWriter, r *http.Request) {
	var req dto.CredencialesRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Usuario == "" || req.Clave == "" {
		writeMensaje(w, http.StatusBadRequest, "Campos invalidos")
		return
	}
	if err := c.Usuarios.Register(req.Usuario, req.Clave); err != nil {
		if errors.Is(err, services.ErrUsuarioExiste) {
			// Generic wording on purpose; the body does not confirm that the
			// username is registered.
			writeMensaje(w, http.StatusBadRequest, "No se pudo completar el registro")
			return
		}
		global.Logger.Error().Err(err).Str("ip", r.RemoteAddr).Msg("register failed")
		writeMensaje(w, http.StatusInternalServerError, "Error en la peticion")
		return
	}
	writeMensaje(w, http.StatusCreated, "Usuario Creado Exitosamente")
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.CredencialesRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Usuario == "" || req.Clave == "" {
		writeMensaje(w, http.StatusBadRequest, "Campos invalidos")
		return
	}
	u, err := c.Usuarios.ValidateCredentials(req.Usuario, req.Clave)
	if err != nil {
		if errors.Is(err, services.ErrCredencialesInvalidas) {
			// Identical body for unknown user and wrong password.
			writeMensaje(w, http.StatusUnauthorized, "Clave o Usuario Incorrecto")
			return
		}
		global.Logger.Error().Err(err).Str("ip", r.RemoteAddr).Msg("login failed")
		writeMensaje(w, http.StatusInternalServerError, "Error en la peticion")
		return
	}
	token, err := c.Signer.Sign(u.Usuario)
	if err != nil {
		global.Logger.Error().Err(err).Str("ip", r.RemoteAddr).Msg("token sign failed")
		writeMensaje(w, http.StatusInternalServerError, "Error en la peticion")
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: token})
}
