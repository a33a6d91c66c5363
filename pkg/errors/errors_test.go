package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsAppErrorUnwrapsChains(t *testing.T) {
	base := NotFound("Cita no encontrada")
	wrapped := fmt.Errorf("handling request: %w", base)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrNotFound, appErr.Code)
	assert.Equal(t, "Cita no encontrada", appErr.Message)
}

func TestInternalCarriesDetails(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	appErr := Internal(cause)

	assert.Equal(t, ErrInternal, appErr.Code)
	assert.Equal(t, "Error interno del servidor", appErr.Message)
	assert.Equal(t, cause.Error(), appErr.Details)
	assert.ErrorIs(t, appErr, cause)
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("x")))
	assert.False(t, IsNotFound(Conflict("x")))
	assert.True(t, IsConflict(Conflict("x")))
	assert.False(t, IsConflict(fmt.Errorf("plain")))
}
