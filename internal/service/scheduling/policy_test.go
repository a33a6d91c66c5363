package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odontosys/clinic-api/internal/model"
	apperrors "github.com/odontosys/clinic-api/pkg/errors"
)

func TestPermissiveTransitionsAllowsEverything(t *testing.T) {
	for _, from := range model.Estados {
		for _, to := range model.Estados {
			assert.NoError(t, PermissiveTransitions(from, to))
		}
	}
}

func TestStrictTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    model.Estado
		to      model.Estado
		allowed bool
	}{
		{"confirmada to atendida", model.EstadoConfirmada, model.EstadoAtendida, true},
		{"confirmada to cancelada", model.EstadoConfirmada, model.EstadoCancelada, true},
		{"confirmada to no_asistio", model.EstadoConfirmada, model.EstadoNoAsistio, true},
		{"confirmada to itself", model.EstadoConfirmada, model.EstadoConfirmada, false},
		{"atendida is terminal", model.EstadoAtendida, model.EstadoConfirmada, false},
		{"cancelada is terminal", model.EstadoCancelada, model.EstadoAtendida, false},
		{"no_asistio is terminal", model.EstadoNoAsistio, model.EstadoCancelada, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := StrictTransitions(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.IsConflict(err))
		})
	}
}

func TestPolicyByName(t *testing.T) {
	assert.Error(t, PolicyByName("strict")(model.EstadoAtendida, model.EstadoConfirmada))
	assert.NoError(t, PolicyByName("permissive")(model.EstadoAtendida, model.EstadoConfirmada))
	assert.NoError(t, PolicyByName("")(model.EstadoAtendida, model.EstadoConfirmada))
}
