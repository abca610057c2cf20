package repository

import "errors"

// Errores centinela del repositorio. Los handlers los traducen a HTTP:
// no encontrado -> 404, duplicado -> 409, datos insuficientes -> marcador
// explícito en el cuerpo de la respuesta.
var (
	ErrNotFound         = errors.New("registro no encontrado")
	ErrDuplicate        = errors.New("registro duplicado")
	ErrInsufficientData = errors.New("datos insuficientes para el cálculo")
)
