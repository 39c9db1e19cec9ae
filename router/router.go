package router

import (
	"net/http"

	"github.com/ckoockiy/api-rest-dbz/app/controllers"
	"github.com/ckoockiy/api-rest-dbz/app/middleware"
)

// New builds the route table. Everything under /api requires a bearer
// token; uploaded images are served publicly under /static/uploads.
func New(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, personajeCtrl *controllers.PersonajeController, mw *middleware.Auth, uploadDir string) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /{$}", httpCtrl.Index)
	mux.HandleFunc("GET /ping", httpCtrl.Ping)
	mux.HandleFunc("POST /auth/registrar", authCtrl.Registrar)
	mux.HandleFunc("POST /auth/login", authCtrl.Login)
	mux.Handle("GET /static/uploads/", http.StripPrefix("/static/uploads/", http.FileServer(http.Dir(uploadDir))))

	// protected
	mux.Handle("POST /api/personajes", mw.RequireAuth(http.HandlerFunc(personajeCtrl.Crear)))
	mux.Handle("GET /api/personajes", mw.RequireAuth(http.HandlerFunc(personajeCtrl.Listar)))
	mux.Handle("GET /api/personaje/{id}", mw.RequireAuth(http.HandlerFunc(personajeCtrl.Obtener)))
	mux.Handle("PUT /api/personajes/{id}", mw.RequireAuth(http.HandlerFunc(personajeCtrl.Actualizar)))
	mux.Handle("DELETE /api/personajes/{id}", mw.RequireAuth(http.HandlerFunc(personajeCtrl.Eliminar)))

	return mux
}
