package domain

import "errors"

// Taxonomía de errores de dominio (sin dependencias externas). Cada categoría
// se corresponde con un código HTTP en la capa de interfaces:
// 401, 403, 422, 400, 404 y 409 respectivamente.
var (
	ErrNotAuthenticated = errors.New("usuario no autenticado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrValidation       = errors.New("entrada inválida")
	ErrIntegrity        = errors.New("regla de negocio violada")
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
)

// FieldErrors acumula errores de validación por campo, en el formato que
// espera el frontal: {"errors": {"dni": ["..."]}}.
type FieldErrors map[string][]string

// Add añade un mensaje de error para un campo.
func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

type taggedError struct {
	kind error
	msg  string
}

func (e *taggedError) Error() string { return e.msg }
func (e *taggedError) Unwrap() error { return e.kind }

// NotAuthenticated construye un error 401 con mensaje propio.
func NotAuthenticated(msg string) error {
	return &taggedError{kind: ErrNotAuthenticated, msg: msg}
}

// Integrity construye un error de regla de negocio (400) con mensaje propio.
func Integrity(msg string) error {
	return &taggedError{kind: ErrIntegrity, msg: msg}
}

// Forbidden construye un error de autorización (403) con mensaje propio.
func Forbidden(msg string) error {
	return &taggedError{kind: ErrForbidden, msg: msg}
}

// NotFound construye un error 404 con mensaje propio.
func NotFound(msg string) error {
	return &taggedError{kind: ErrNotFound, msg: msg}
}

type validationError struct {
	fields FieldErrors
}

func (e *validationError) Error() string { return "validación fallida" }
func (e *validationError) Unwrap() error { return ErrValidation }

// Validation construye un error de validación (422) con detalle por campo.
func Validation(fields FieldErrors) error {
	return &validationError{fields: fields}
}

// ValidationFields extrae el detalle por campo de un error de validación,
// o nil si el error no es de ese tipo.
func ValidationFields(err error) FieldErrors {
	var ve *validationError
	if errors.As(err, &ve) {
		return ve.fields
	}
	return nil
}
