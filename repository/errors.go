package repository

import "errors"

// Errores centinela de la capa de consultas. Los handlers los comparan
// con errors.Is y nunca inspeccionan códigos del motor de base de datos.
var (
	ErrNoEncontrado    = errors.New("registro no encontrado")
	ErrCorreoDuplicado = errors.New("correo ya registrado")
)
