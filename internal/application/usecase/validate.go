package usecase

import (
	"regexp"

	"github.com/correduria/backoffice/internal/domain"
)

// Reglas de formato heredadas del sistema original: DNI español de 8 dígitos
// más letra, teléfonos de 9 dígitos.
var (
	dniPattern   = regexp.MustCompile(`^[0-9]{8}[A-Za-z]$`)
	phonePattern = regexp.MustCompile(`^[0-9]{9}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

func checkDNI(fe domain.FieldErrors, dni string) {
	if !dniPattern.MatchString(dni) {
		fe.Add("dni", "El DNI debe tener 8 dígitos y una letra.")
	}
}

func checkName(fe domain.FieldErrors, field, value string) {
	if len(value) < 2 || len(value) > 25 {
		fe.Add(field, "Debe tener entre 2 y 25 caracteres.")
	}
}

func checkEmail(fe domain.FieldErrors, email *string) {
	if email != nil && !emailPattern.MatchString(*email) {
		fe.Add("email", "El email no es válido.")
	}
}

func checkPhone(fe domain.FieldErrors, field string, phone *string, required bool) {
	if phone == nil {
		if required {
			fe.Add(field, "El teléfono es obligatorio.")
		}
		return
	}
	if !phonePattern.MatchString(*phone) {
		fe.Add(field, "El teléfono debe tener 9 dígitos.")
	}
}

func checkLen(fe domain.FieldErrors, field, value string, min, max int) {
	if len(value) < min || len(value) > max {
		fe.Add(field, "Longitud fuera de rango.")
	}
}

func checkOptionalLen(fe domain.FieldErrors, field string, value *string, min, max int) {
	if value == nil {
		return
	}
	checkLen(fe, field, *value, min, max)
}

// finish devuelve el error 422 si se acumuló algún fallo de campo.
func finish(fe domain.FieldErrors) error {
	if len(fe) > 0 {
		return domain.Validation(fe)
	}
	return nil
}
