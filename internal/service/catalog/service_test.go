package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/repository/memory"
	apperrors "github.com/odontosys/clinic-api/pkg/errors"
)

func TestCreateCoercesNumericStrings(t *testing.T) {
	svc := NewService(memory.NewStore().Servicios())

	servicio, err := svc.Create(context.Background(), &model.CreateServicioRequest{
		Nombre:   "Limpieza dental",
		Duracion: "30",
		Precio:   "80000.50",
	})
	require.NoError(t, err)
	assert.Equal(t, 30, servicio.Duracion)
	assert.Equal(t, 80000.50, servicio.Precio)
	assert.True(t, servicio.Activo)
}

func TestCreateAcceptsJSONNumbers(t *testing.T) {
	svc := NewService(memory.NewStore().Servicios())

	// JSON decoding hands numbers to the service as float64.
	servicio, err := svc.Create(context.Background(), &model.CreateServicioRequest{
		Nombre:   "Blanqueamiento",
		Duracion: float64(60),
		Precio:   float64(350000),
	})
	require.NoError(t, err)
	assert.Equal(t, 60, servicio.Duracion)
	assert.Equal(t, float64(350000), servicio.Precio)
}

func TestCreateRejectsNonNumeric(t *testing.T) {
	svc := NewService(memory.NewStore().Servicios())

	_, err := svc.Create(context.Background(), &model.CreateServicioRequest{
		Nombre:   "Limpieza dental",
		Duracion: "media hora",
		Precio:   float64(80000),
	})
	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, "El campo duracion debe ser numérico", appErr.Message)
}

func TestListActiveSortsByName(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Servicios())

	for _, nombre := range []string{"Ortodoncia", "Blanqueamiento", "Limpieza dental"} {
		_, err := svc.Create(context.Background(), &model.CreateServicioRequest{
			Nombre:   nombre,
			Duracion: float64(30),
			Precio:   float64(100),
		})
		require.NoError(t, err)
	}

	servicios, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, servicios, 3)
	assert.Equal(t, "Blanqueamiento", servicios[0].Nombre)
	assert.Equal(t, "Limpieza dental", servicios[1].Nombre)
	assert.Equal(t, "Ortodoncia", servicios[2].Nombre)
}
