package services

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/ckoockiy/api-rest-dbz/app/dto"
	"github.com/ckoockiy/api-rest-dbz/app/repo"
	"github.com/ckoockiy/api-rest-dbz/app/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPersonajeService(t *testing.T) (*PersonajeService, *storage.Store) {
	t.Helper()
	gdb := newTestDB(t)
	store, err := storage.New(t.TempDir(), "http://127.0.0.1:5000")
	require.NoError(t, err)
	return NewPersonajeService(repo.NewPersonajeRepository(gdb), store), store
}

func datosGoku() CrearPersonaje {
	return CrearPersonaje{
		Nombre:      "Goku",
		Raza:        "Saiyajin",
		Planeta:     "Vegeta",
		Descripcion: "Guerrero criado en la Tierra",
		Edad:        45,
		Altura:      175,
		Peso:        62,
		PoderPelea:  9001,
		Habilidades: "Kamehameha, Kaioken",
	}
}

func TestCreateAndGet(t *testing.T) {
	svc, store := newPersonajeService(t)
	contenido := []byte("bytes de la imagen")

	p, err := svc.Create(datosGoku(), Upload{Nombre: "goku.png", Contenido: bytes.NewReader(contenido)})
	require.NoError(t, err)
	require.NotZero(t, p.ID)

	got, err := svc.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Goku", got.Nombre)
	assert.Equal(t, "Saiyajin", got.Raza)
	assert.Equal(t, "Vegeta", got.Planeta)
	assert.Equal(t, 45, got.Edad)
	assert.Equal(t, 9001, got.PoderPelea)
	assert.Equal(t, "goku.png", got.ImagenNombre())

	onDisk, err := os.ReadFile(store.Path("goku.png"))
	require.NoError(t, err)
	assert.Equal(t, contenido, onDisk)
}

func TestCreateSanitizesFilename(t *testing.T) {
	svc, store := newPersonajeService(t)

	p, err := svc.Create(datosGoku(), Upload{Nombre: "../../goku.png", Contenido: bytes.NewReader([]byte("x"))})
	require.NoError(t, err)
	assert.Equal(t, "goku.png", p.ImagenNombre())
	assert.FileExists(t, store.Path("goku.png"))
}

func TestCreateRejectsBadFilename(t *testing.T) {
	svc, _ := newPersonajeService(t)

	_, err := svc.Create(datosGoku(), Upload{Nombre: "goku.exe", Contenido: bytes.NewReader([]byte("x"))})
	assert.ErrorIs(t, err, storage.ErrNombreInvalido)
}

func TestUpdatePartialLeavesOtherFields(t *testing.T) {
	svc, _ := newPersonajeService(t)
	p, err := svc.Create(datosGoku(), Upload{Nombre: "goku.png", Contenido: bytes.NewReader([]byte("x"))})
	require.NoError(t, err)

	nombre := "Kakarotto"
	_, err = svc.Update(p.ID, dto.PersonajeUpdate{Nombre: &nombre}, nil)
	require.NoError(t, err)

	got, err := svc.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kakarotto", got.Nombre)
	assert.Equal(t, p.Raza, got.Raza)
	assert.Equal(t, p.Planeta, got.Planeta)
	assert.Equal(t, p.Descripcion, got.Descripcion)
	assert.Equal(t, p.Edad, got.Edad)
	assert.Equal(t, p.Altura, got.Altura)
	assert.Equal(t, p.Peso, got.Peso)
	assert.Equal(t, p.PoderPelea, got.PoderPelea)
	assert.Equal(t, p.Habilidades, got.Habilidades)
	assert.Equal(t, p.ImagenNombre(), got.ImagenNombre())
}

func TestUpdateReplacesImage(t *testing.T) {
	svc, store := newPersonajeService(t)
	p, err := svc.Create(datosGoku(), Upload{Nombre: "goku.png", Contenido: bytes.NewReader([]byte("vieja"))})
	require.NoError(t, err)

	nueva := []byte("nueva imagen")
	_, err = svc.Update(p.ID, dto.PersonajeUpdate{}, &Upload{Nombre: "ssj.png", Contenido: bytes.NewReader(nueva)})
	require.NoError(t, err)

	got, err := svc.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "ssj.png", got.ImagenNombre())

	onDisk, err := os.ReadFile(store.Path("ssj.png"))
	require.NoError(t, err)
	assert.Equal(t, nueva, onDisk)
	assert.NoFileExists(t, store.Path("goku.png"), "the replaced image must be removed")
}

func TestUpdateUnknownID(t *testing.T) {
	svc, _ := newPersonajeService(t)
	_, err := svc.Update(9999, dto.PersonajeUpdate{}, nil)
	assert.ErrorIs(t, err, ErrPersonajeNoEncontrado)
}

func TestDeleteRemovesRowAndFile(t *testing.T) {
	svc, store := newPersonajeService(t)
	p, err := svc.Create(datosGoku(), Upload{Nombre: "goku.png", Contenido: bytes.NewReader([]byte("x"))})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(p.ID))

	_, err = svc.Get(p.ID)
	assert.ErrorIs(t, err, ErrPersonajeNoEncontrado)
	assert.NoFileExists(t, store.Path("goku.png"))
}

func TestDeleteUnknownID(t *testing.T) {
	svc, _ := newPersonajeService(t)
	err := svc.Delete(9999)
	assert.ErrorIs(t, err, ErrPersonajeNoEncontrado)
}

func TestList(t *testing.T) {
	svc, _ := newPersonajeService(t)
	for i := 0; i < 3; i++ {
		datos := datosGoku()
		datos.Nombre = fmt.Sprintf("Personaje %d", i)
		_, err := svc.Create(datos, Upload{Nombre: fmt.Sprintf("p%d.png", i), Contenido: bytes.NewReader([]byte("x"))})
		require.NoError(t, err)
	}
	ps, err := svc.List()
	require.NoError(t, err)
	require.Len(t, ps, 3)
	assert.Equal(t, "Personaje 0", ps[0].Nombre)
}

// Two concurrent creates must each end up with exactly their own fields.
func TestConcurrentCreates(t *testing.T) {
	svc, _ := newPersonajeService(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			datos := datosGoku()
			datos.Nombre = fmt.Sprintf("Guerrero %d", i)
			datos.PoderPelea = 1000 + i
			_, errs[i] = svc.Create(datos, Upload{
				Nombre:    fmt.Sprintf("guerrero%d.png", i),
				Contenido: bytes.NewReader([]byte(fmt.Sprintf("imagen %d", i))),
			})
		}(i)
	}
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	ps, err := svc.List()
	require.NoError(t, err)
	require.Len(t, ps, 2)
	for _, p := range ps {
		switch p.Nombre {
		case "Guerrero 0":
			assert.Equal(t, 1000, p.PoderPelea)
			assert.Equal(t, "guerrero0.png", p.ImagenNombre())
		case "Guerrero 1":
			assert.Equal(t, 1001, p.PoderPelea)
			assert.Equal(t, "guerrero1.png", p.ImagenNombre())
		default:
			t.Fatalf("unexpected hybrid record: %+v", p)
		}
	}
}
