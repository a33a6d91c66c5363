package scheduling

import (
	"fmt"

	"github.com/odontosys/clinic-api/internal/model"
	apperrors "github.com/odontosys/clinic-api/pkg/errors"
)

// TransitionPolicy decides whether an appointment may move between two
// states. The enum check happens before the policy runs; a policy only
// restricts edges among valid states.
type TransitionPolicy func(from, to model.Estado) error

// PermissiveTransitions allows any state to reach any other. This is
// the observed clinic behavior and the default.
func PermissiveTransitions(model.Estado, model.Estado) error {
	return nil
}

// StrictTransitions only allows confirmada to move forward; atendida,
// cancelada and no_asistio are terminal.
func StrictTransitions(from, to model.Estado) error {
	if from == model.EstadoConfirmada && to != model.EstadoConfirmada {
		return nil
	}
	return apperrors.Conflict(fmt.Sprintf(
		"No se permite el cambio de estado de %q a %q", from, to,
	))
}

// PolicyByName selects a policy from configuration. Unknown names fall
// back to the permissive default.
func PolicyByName(name string) TransitionPolicy {
	if name == "strict" {
		return StrictTransitions
	}
	return PermissiveTransitions
}
