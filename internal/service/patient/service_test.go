package patient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/repository/memory"
	apperrors "github.com/odontosys/clinic-api/pkg/errors"
)

func validRequest() *model.CreatePacienteRequest {
	return &model.CreatePacienteRequest{
		Nombre:            "Juan",
		Apellido:          "Pérez",
		CorreoElectronico: "Juan.Perez@Example.com",
		NumeroTelefono:    "+57 310 100 2030",
		Pais:              "Colombia",
		Ciudad:            "Bogotá",
		Direccion:         "Calle 45 #12-34",
		AceptaPoliticas:   true,
	}
}

func TestCreateRequiresAllFields(t *testing.T) {
	svc := NewService(memory.NewStore().Pacientes())

	req := validRequest()
	req.Ciudad = ""
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "Se requieren los campos")
}

func TestCreateRequiresPolicyAcceptance(t *testing.T) {
	svc := NewService(memory.NewStore().Pacientes())

	req := validRequest()
	req.AceptaPoliticas = false
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, "Debe aceptar las políticas de privacidad de datos", appErr.Message)
}

func TestCreateValidatesEmailFormat(t *testing.T) {
	svc := NewService(memory.NewStore().Pacientes())

	req := validRequest()
	req.CorreoElectronico = "no-es-un-correo"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, "El formato del correo electrónico no es válido", appErr.Message)
}

func TestCreateNormalizesEmail(t *testing.T) {
	svc := NewService(memory.NewStore().Pacientes())

	paciente, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "juan.perez@example.com", paciente.CorreoElectronico)
	assert.True(t, paciente.Activo)
	assert.True(t, paciente.AceptaPoliticas)
	assert.False(t, paciente.FechaRegistro.IsZero())
}

func TestCreateDuplicateEmailCaseInsensitive(t *testing.T) {
	svc := NewService(memory.NewStore().Pacientes())

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	dup := validRequest()
	dup.CorreoElectronico = "JUAN.PEREZ@EXAMPLE.COM"
	_, err = svc.Create(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestUpdateMergesFields(t *testing.T) {
	svc := NewService(memory.NewStore().Pacientes())

	paciente, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	nuevaCiudad := "Medellín"
	updated, err := svc.Update(context.Background(), paciente.ID, &model.UpdatePacienteRequest{
		Ciudad: &nuevaCiudad,
	})
	require.NoError(t, err)
	assert.Equal(t, "Medellín", updated.Ciudad)
	assert.Equal(t, paciente.Nombre, updated.Nombre)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestUpdateRejectsEmailCollision(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Pacientes())

	first, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.CorreoElectronico = "maria.garcia@example.com"
	otra, err := svc.Create(context.Background(), second)
	require.NoError(t, err)

	colision := first.CorreoElectronico
	_, err = svc.Update(context.Background(), otra.ID, &model.UpdatePacienteRequest{
		CorreoElectronico: &colision,
	})
	assert.True(t, apperrors.IsConflict(err))
}

func TestUpdateUnknownPatient(t *testing.T) {
	svc := NewService(memory.NewStore().Pacientes())

	nombre := "Pedro"
	_, err := svc.Update(context.Background(), "missing", &model.UpdatePacienteRequest{Nombre: &nombre})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteIsSoft(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Pacientes())

	paciente, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), paciente.ID))

	kept, err := store.Pacientes().Get(context.Background(), paciente.ID)
	require.NoError(t, err)
	assert.False(t, kept.Activo)
}

func TestSearchMatchesAndSorts(t *testing.T) {
	svc := NewService(memory.NewStore().Pacientes())

	for _, req := range []*model.CreatePacienteRequest{
		{Nombre: "Carlos", Apellido: "López", CorreoElectronico: "carlos.lopez@example.com", NumeroTelefono: "1", Pais: "Colombia", Ciudad: "Cali", Direccion: "x", AceptaPoliticas: true},
		{Nombre: "Ana", Apellido: "García", CorreoElectronico: "ana.garcia@example.com", NumeroTelefono: "2", Pais: "Colombia", Ciudad: "Bogotá", Direccion: "x", AceptaPoliticas: true},
		{Nombre: "María", Apellido: "García", CorreoElectronico: "maria.garcia@example.com", NumeroTelefono: "3", Pais: "Colombia", Ciudad: "Bogotá", Direccion: "x", AceptaPoliticas: true},
	} {
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}

	results, err := svc.Search(context.Background(), "garc")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Ana", results[0].Nombre)
	assert.Equal(t, "María", results[1].Nombre)

	all, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
