package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/odontosys/clinic-api/pkg/errors"
)

func TestRequired(t *testing.T) {
	err := Required(map[string]string{"nombre": "Juan", "apellido": ""}, "nombre", "apellido")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
	assert.Equal(t, "Se requieren los campos: nombre, apellido", appErr.Message)

	assert.NoError(t, Required(map[string]string{"nombre": "Juan"}, "nombre"))
	assert.Error(t, Required(map[string]string{"nombre": "   "}, "nombre"))
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("juan.perez@example.com"))

	for _, invalid := range []string{"", "sin-arroba", "juan@", "@example.com"} {
		err := Email(invalid)
		require.Error(t, err, "expected %q to be invalid", invalid)
		appErr, _ := apperrors.AsAppError(err)
		assert.Equal(t, "El formato del correo electrónico no es válido", appErr.Message)
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"confirmada", "cancelada"}
	assert.NoError(t, OneOf("confirmada", allowed, "estado inválido"))

	err := OneOf("pendiente", allowed, "estado inválido")
	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, "estado inválido", appErr.Message)
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  int
		ok    bool
	}{
		{"json number", float64(30), 30, true},
		{"int", 45, 45, true},
		{"numeric string", "60", 60, true},
		{"padded string", " 90 ", 90, true},
		{"word", "treinta", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceInt("duracion", tt.value)
			if !tt.ok {
				require.Error(t, err)
				appErr, _ := apperrors.AsAppError(err)
				assert.Equal(t, "El campo duracion debe ser numérico", appErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceFloat(t *testing.T) {
	got, err := CoerceFloat("precio", "80000.50")
	require.NoError(t, err)
	assert.Equal(t, 80000.50, got)

	got, err = CoerceFloat("precio", float64(350000))
	require.NoError(t, err)
	assert.Equal(t, float64(350000), got)

	_, err = CoerceFloat("precio", "caro")
	require.Error(t, err)
}
