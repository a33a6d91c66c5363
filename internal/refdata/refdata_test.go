package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaisesSortedByName(t *testing.T) {
	paises := Paises()
	require.NotEmpty(t, paises)
	for i := 1; i < len(paises); i++ {
		assert.LessOrEqual(t, paises[i-1].Nombre, paises[i].Nombre)
	}
}

func TestCiudades(t *testing.T) {
	assert.NotEmpty(t, Ciudades("Colombia"))
	assert.Contains(t, Ciudades("Colombia"), "Bogotá")
	assert.Empty(t, Ciudades("Atlantis"))
}

func TestSucursalPorID(t *testing.T) {
	sucursal, ok := SucursalPorID("centro")
	require.True(t, ok)
	assert.Equal(t, "Sede Centro", sucursal.Nombre)

	_, ok = SucursalPorID("no-existe")
	assert.False(t, ok)
}

func TestMotivosCancelacion(t *testing.T) {
	motivos := MotivosCancelacion()
	assert.Len(t, motivos, 10)
	assert.Equal(t, "Emergencia médica", motivos[0])
}
