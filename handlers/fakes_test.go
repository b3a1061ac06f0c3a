package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/SamuelSarazua/backEnd-Asistencia/config"
	"github.com/SamuelSarazua/backEnd-Asistencia/models"
	"github.com/SamuelSarazua/backEnd-Asistencia/repository"
)

// Dobles en memoria de la capa de consultas. Reproducen la semántica
// observable del repository (centinelas, LEFT JOIN con 'Ausente' por
// defecto, upsert por (alumno, fecha)) sin base de datos.

type fakeProfesorStore struct {
	profesores []models.Profesor
	falla      error
}

func (f *fakeProfesorStore) Crear(p *models.Profesor) error {
	if f.falla != nil {
		return f.falla
	}
	for _, e := range f.profesores {
		if e.Correo == p.Correo {
			return repository.ErrCorreoDuplicado
		}
	}
	p.ID = uint(len(f.profesores) + 1)
	f.profesores = append(f.profesores, *p)
	return nil
}

func (f *fakeProfesorStore) BuscarPorCorreo(correo string) (*models.Profesor, error) {
	if f.falla != nil {
		return nil, f.falla
	}
	for i := range f.profesores {
		if f.profesores[i].Correo == correo {
			p := f.profesores[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNoEncontrado
}

func (f *fakeProfesorStore) BuscarPorID(id uint) (*models.Profesor, error) {
	for i := range f.profesores {
		if f.profesores[i].ID == id {
			p := f.profesores[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNoEncontrado
}

func (f *fakeProfesorStore) ActualizarContrasena(id uint, hash string) error {
	for i := range f.profesores {
		if f.profesores[i].ID == id {
			f.profesores[i].Contrasena = hash
			return nil
		}
	}
	return repository.ErrNoEncontrado
}

type fakeGradoStore struct {
	grados []models.Grado
	falla  error
}

func (f *fakeGradoStore) Listar() ([]models.Grado, error) {
	if f.falla != nil {
		return nil, f.falla
	}
	out := append([]models.Grado(nil), f.grados...)
	sort.Slice(out, func(i, j int) bool { return out[i].NombreGrado < out[j].NombreGrado })
	return out, nil
}

func (f *fakeGradoStore) BuscarPorID(id uint) (*models.Grado, error) {
	if f.falla != nil {
		return nil, f.falla
	}
	for i := range f.grados {
		if f.grados[i].ID == id {
			g := f.grados[i]
			return &g, nil
		}
	}
	return nil, repository.ErrNoEncontrado
}

type fakeAlumnoStore struct {
	alumnos     []models.Alumno
	asistencia  *fakeAsistenciaStore // para el join; puede ser nil
	ultimaFecha string
}

func (f *fakeAlumnoStore) BuscarPorIDAlumno(idAlumno string) (*models.Alumno, error) {
	for i := range f.alumnos {
		if f.alumnos[i].IDAlumno == idAlumno {
			a := f.alumnos[i]
			return &a, nil
		}
	}
	return nil, repository.ErrNoEncontrado
}

func (f *fakeAlumnoStore) delGrado(gradoID uint) []models.Alumno {
	var out []models.Alumno
	for _, a := range f.alumnos {
		if a.IDGrado == gradoID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Apellido != out[j].Apellido {
			return out[i].Apellido < out[j].Apellido
		}
		return out[i].Nombre < out[j].Nombre
	})
	return out
}

func (f *fakeAlumnoStore) ListarPorGrado(gradoID uint) ([]models.Alumno, error) {
	return f.delGrado(gradoID), nil
}

func (f *fakeAlumnoStore) ListarConAsistencia(gradoID uint, fecha string) ([]repository.AlumnoAsistencia, error) {
	f.ultimaFecha = fecha
	filas := []repository.AlumnoAsistencia{}
	for _, a := range f.delGrado(gradoID) {
		estado := models.EstadoAusente
		if f.asistencia != nil {
			if e, ok := f.asistencia.filas[claveAsistencia(a.IDAlumno, fecha)]; ok {
				estado = e
			}
		}
		filas = append(filas, repository.AlumnoAsistencia{
			ID: a.ID, IDAlumno: a.IDAlumno, Nombre: a.Nombre, Apellido: a.Apellido, Estado: estado,
		})
	}
	return filas, nil
}

func claveAsistencia(idAlumno, fecha string) string { return idAlumno + "|" + fecha }

type fakeAsistenciaStore struct {
	filas map[string]string // (alumno|fecha) -> estado
	falla error
}

func newFakeAsistenciaStore() *fakeAsistenciaStore {
	return &fakeAsistenciaStore{filas: map[string]string{}}
}

func (f *fakeAsistenciaStore) Registrar(idAlumno, fecha, estado string) error {
	if f.falla != nil {
		return f.falla
	}
	f.filas[claveAsistencia(idAlumno, fecha)] = estado
	return nil
}

func (f *fakeAsistenciaStore) ResumenDia(gradoID uint, fecha string) (int64, int64, error) {
	// El doble no conoce el grado; los tests usan un único grado.
	var presentes, total int64
	for k, v := range f.filas {
		if strings.HasSuffix(k, "|"+fecha) {
			total++
			if v == models.EstadoPresente {
				presentes++
			}
		}
	}
	return presentes, total - presentes, nil
}

/* ====================== utilidades HTTP ====================== */

func cfgDePrueba() *config.Config {
	return &config.Config{AppEnv: "test", JWTSecret: "secreto-de-prueba"}
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("respuesta no es JSON: %v (%s)", err, rec.Body.String())
	}
	return rec, parsed
}

func newEchoConRuta(t *testing.T, method, path string, h echo.HandlerFunc) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Add(method, path, h)
	return e
}

func servir(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var parsed map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("respuesta no es JSON: %v (%s)", err, rec.Body.String())
	}
	return rec, parsed
}

func exigeError(t *testing.T, rec *httptest.ResponseRecorder, body map[string]interface{}, status int, mensaje string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status esperado %d, fue %d (%s)", status, rec.Code, rec.Body.String())
	}
	if ok, _ := body["success"].(bool); ok {
		t.Fatalf("success debía ser false: %s", rec.Body.String())
	}
	if body["error"] != mensaje {
		t.Fatalf("mensaje esperado %q, fue %v", mensaje, body["error"])
	}
}
