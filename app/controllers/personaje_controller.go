package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ckoockiy/api-rest-dbz/app/dto"
	"github.com/ckoockiy/api-rest-dbz/app/services"
	"github.com/ckoockiy/api-rest-dbz/app/storage"
	"github.com/ckoockiy/api-rest-dbz/global"
)

const maxUploadBytes = 10 << 20

type PersonajeController struct {
	Personajes *services.PersonajeService
	Archivos   *storage.Store
}

func NewPersonajeController(personajes *services.PersonajeService, archivos *storage.Store) *PersonajeController {
	return &PersonajeController{Personajes: personajes, Archivos: archivos}
}

func (c *PersonajeController) Crear(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeMensaje(w, http.StatusBadRequest, "Campos invalidos")
		return
	}
	datos, err := leerCrearPersonaje(r.PostForm)
	if err != nil {
		writeMensaje(w, http.StatusBadRequest, "Campos invalidos")
		return
	}
	file, header, err := r.FormFile("imagen")
	if err != nil {
		writeMensaje(w, http.StatusBadRequest, "Imagen requerida")
		return
	}
	defer file.Close()

	if _, err := c.Personajes.Create(datos, services.Upload{Nombre: header.Filename, Contenido: file}); err != nil {
		if errors.Is(err, storage.ErrNombreInvalido) {
			writeMensaje(w, http.StatusBadRequest, "Imagen invalida")
			return
		}
		global.Logger.Error().Err(err).Str("ip", r.RemoteAddr).Msg("create personaje failed")
		writeMensaje(w, http.StatusInternalServerError, "Error en la peticion")
		return
	}
	writeMensaje(w, http.StatusCreated, "Personaje Creado Exitosamente")
}

func (c *PersonajeController) Listar(w http.ResponseWriter, r *http.Request) {
	personajes, err := c.Personajes.List()
	if err != nil {
		global.Logger.Error().Err(err).Str("ip", r.RemoteAddr).Msg("list personajes failed")
		writeMensaje(w, http.StatusInternalServerError, "Error en la peticion")
		return
	}
	respuesta := make([]dto.PersonajeResponse, 0, len(personajes))
	for i := range personajes {
		p := &personajes[i]
		respuesta = append(respuesta, dto.NewPersonajeResponse(p, c.Archivos.PublicURL(p.ImagenNombre())))
	}
	writeJSON(w, http.StatusOK, respuesta)
}

func (c *PersonajeController) Obtener(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeMensaje(w, http.StatusNotFound, "No se encontro el personaje solicitado")
		return
	}
	p, err := c.Personajes.Get(id)
	if err != nil {
		c.responderError(w, r, err, "get personaje failed")
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPersonajeResponse(p, c.Archivos.PublicURL(p.ImagenNombre())))
}

func (c *PersonajeController) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeMensaje(w, http.StatusNotFound, "No se encontro el personaje solicitado")
		return
	}

	var upload *services.Upload
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeMensaje(w, http.StatusBadRequest, "Campos invalidos")
			return
		}
		if file, header, err := r.FormFile("imagen"); err == nil {
			defer file.Close()
			upload = &services.Upload{Nombre: header.Filename, Contenido: file}
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeMensaje(w, http.StatusBadRequest, "Campos invalidos")
			return
		}
	}

	cambios, err := leerCambios(r.PostForm)
	if err != nil {
		writeMensaje(w, http.StatusBadRequest, "Campos invalidos")
		return
	}

	if _, err := c.Personajes.Update(id, cambios, upload); err != nil {
		if errors.Is(err, storage.ErrNombreInvalido) {
			writeMensaje(w, http.StatusBadRequest, "Imagen invalida")
			return
		}
		c.responderError(w, r, err, "update personaje failed")
		return
	}
	writeMensaje(w, http.StatusCreated, "Personaje Actualizado Exitosamente")
}

func (c *PersonajeController) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeMensaje(w, http.StatusNotFound, "No se encontro el personaje solicitado")
		return
	}
	if err := c.Personajes.Delete(id); err != nil {
		c.responderError(w, r, err, "delete personaje failed")
		return
	}
	writeMensaje(w, http.StatusOK, "Personaje Eliminado Exitosamente")
}

func (c *PersonajeController) responderError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, services.ErrPersonajeNoEncontrado) {
		writeMensaje(w, http.StatusNotFound, "No se encontro el personaje solicitado")
		return
	}
	global.Logger.Error().Err(err).Str("ip", r.RemoteAddr).Msg(msg)
	writeMensaje(w, http.StatusInternalServerError, "Error en la peticion")
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func leerCrearPersonaje(form url.Values) (services.CrearPersonaje, error) {
	var datos services.CrearPersonaje
	datos.Nombre = form.Get("nombre")
	datos.Raza = form.Get("raza")
	datos.Planeta = form.Get("planeta")
	datos.Descripcion = form.Get("descripcion")
	datos.Habilidades = form.Get("habilidades")
	if datos.Nombre == "" || datos.Raza == "" || datos.Planeta == "" || datos.Descripcion == "" || datos.Habilidades == "" {
		return datos, errors.New("campos vacios")
	}
	var err error
	if datos.Edad, err = strconv.Atoi(form.Get("edad")); err != nil {
		return datos, err
	}
	if datos.Altura, err = strconv.Atoi(form.Get("altura")); err != nil {
		return datos, err
	}
	if datos.Peso, err = strconv.Atoi(form.Get("peso")); err != nil {
		return datos, err
	}
	if datos.PoderPelea, err = strconv.Atoi(form.Get("poderpelea")); err != nil {
		return datos, err
	}
	return datos, nil
}

// leerCambios maps only the fields present in the form onto the update
// struct; absent fields stay nil and untouched.
func leerCambios(form url.Values) (dto.PersonajeUpdate, error) {
	var cambios dto.PersonajeUpdate
	if v, ok := formValue(form, "nombre"); ok {
		cambios.Nombre = &v
	}
	if v, ok := formValue(form, "raza"); ok {
		cambios.Raza = &v
	}
	if v, ok := formValue(form, "planeta"); ok {
		cambios.Planeta = &v
	}
	if v, ok := formValue(form, "descripcion"); ok {
		cambios.Descripcion = &v
	}
	if v, ok := formValue(form, "habilidades"); ok {
		cambios.Habilidades = &v
	}
	enteros := []struct {
		key  string
		dest **int
	}{
		{"edad", &cambios.Edad},
		{"altura", &cambios.Altura},
		{"peso", &cambios.Peso},
		{"poderpelea", &cambios.PoderPelea},
	}
	for _, campo := range enteros {
		raw, ok := formValue(form, campo.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cambios, err
		}
		*campo.dest = &n
	}
	return cambios, nil
}

func formValue(form url.Values, key string) (string, bool) {
	vals, ok := form[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

