// Package validator holds the pure domain validation rules shared by
// the services: field presence, email format, enum membership and the
// numeric coercion the service catalog needs (clients send duracion and
// precio as either numbers or numeric strings).
package validator

import (
	"fmt"
	"strconv"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/odontosys/clinic-api/pkg/errors"
)

var validate = playground.New()

// Required fails when any named field has an empty value. Field order
// is preserved in the error message.
func Required(fields map[string]string, order ...string) error {
	var missing []string
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errors.BadRequest(fmt.Sprintf("Se requieren los campos: %s", strings.Join(order, ", ")))
	}
	return nil
}

// Email validates the address format.
func Email(address string) error {
	if err := validate.Var(address, "required,email"); err != nil {
		return errors.BadRequest("El formato del correo electrónico no es válido")
	}
	return nil
}

// OneOf checks membership of value in the allowed set.
func OneOf(value string, allowed []string, message string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errors.BadRequest(message)
}

// CoerceInt accepts JSON numbers and numeric strings.
func CoerceInt(field string, value interface{}) (int, error) {
	switch v := value.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, errors.BadRequest(fmt.Sprintf("El campo %s debe ser numérico", field))
		}
		return n, nil
	default:
		return 0, errors.BadRequest(fmt.Sprintf("El campo %s debe ser numérico", field))
	}
}

// CoerceFloat accepts JSON numbers and numeric strings.
func CoerceFloat(field string, value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, errors.BadRequest(fmt.Sprintf("El campo %s debe ser numérico", field))
		}
		return f, nil
	default:
		return 0, errors.BadRequest(fmt.Sprintf("El campo %s debe ser numérico", field))
	}
}
