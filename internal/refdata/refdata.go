// Package refdata owns the static reference tables: countries, cities
// per country, clinic branches and cancellation reasons. Consumers read
// through the accessors; the tables are never persisted.
package refdata

type Pais struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

type Sucursal struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Ciudad    string `json:"ciudad"`
	Direccion string `json:"direccion"`
}

var paises = []Pais{
	{Codigo: "AR", Nombre: "Argentina"},
	{Codigo: "BO", Nombre: "Bolivia"},
	{Codigo: "CL", Nombre: "Chile"},
	{Codigo: "CO", Nombre: "Colombia"},
	{Codigo: "CR", Nombre: "Costa Rica"},
	{Codigo: "EC", Nombre: "Ecuador"},
	{Codigo: "MX", Nombre: "México"},
	{Codigo: "PA", Nombre: "Panamá"},
	{Codigo: "PY", Nombre: "Paraguay"},
	{Codigo: "PE", Nombre: "Perú"},
	{Codigo: "UY", Nombre: "Uruguay"},
	{Codigo: "VE", Nombre: "Venezuela"},
}

var ciudadesPorPais = map[string][]string{
	"Argentina": {"Buenos Aires", "Córdoba", "Corrientes", "La Plata", "Mar del Plata", "Mendoza", "Rosario", "Salta", "Santa Fe", "Tucumán"},
	"Chile":     {"Antofagasta", "Arica", "Chillán", "Concepción", "La Serena", "Rancagua", "Santiago", "Talca", "Temuco", "Valparaíso"},
	"Colombia":  {"Armenia", "Barranquilla", "Bogotá", "Bucaramanga", "Cali", "Cartagena", "Ibagué", "Manizales", "Medellín", "Montería", "Neiva", "Pasto", "Pereira", "Santa Marta", "Villavicencio"},
	"México":    {"Ciudad de México", "Guadalajara", "Juárez", "León", "Monterrey", "Puebla", "Querétaro", "San Luis Potosí", "Tijuana", "Torreón"},
	"Perú":      {"Arequipa", "Chimbote", "Chiclayo", "Cusco", "Huancayo", "Iquitos", "Lima", "Piura", "Tacna", "Trujillo"},
}

var sucursales = []Sucursal{
	{ID: "barranquilla", Nombre: "Sede Barranquilla", Ciudad: "Barranquilla", Direccion: "Calle 84 #45-30"},
	{ID: "bucaramanga", Nombre: "Sede Bucaramanga", Ciudad: "Bucaramanga", Direccion: "Carrera 27 #34-20"},
	{ID: "cali", Nombre: "Sede Cali", Ciudad: "Cali", Direccion: "Avenida 6N #28-10"},
	{ID: "cartagena", Nombre: "Sede Cartagena", Ciudad: "Cartagena", Direccion: "Avenida Pedro de Heredia #25-15"},
	{ID: "centro", Nombre: "Sede Centro", Ciudad: "Bogotá", Direccion: "Avenida 19 #85-30"},
	{ID: "medellin", Nombre: "Sede Medellín", Ciudad: "Medellín", Direccion: "Carrera 70 #52-20"},
	{ID: "norte", Nombre: "Sede Norte", Ciudad: "Bogotá", Direccion: "Calle 100 #15-20"},
	{ID: "sur", Nombre: "Sede Sur", Ciudad: "Bogotá", Direccion: "Carrera 30 #40-50"},
}

var motivosCancelacion = []string{
	"Emergencia médica",
	"Problemas familiares",
	"Conflicto de horarios",
	"Problemas económicos",
	"Reprogramación solicitada",
	"No se siente bien",
	"Problemas de transporte",
	"Cita duplicada",
	"Cambio de doctor solicitado",
	"Otro motivo",
}

// Paises returns the country table, pre-sorted by name.
func Paises() []Pais {
	return paises
}

// Ciudades returns the cities for a country, empty for unknown ones.
func Ciudades(pais string) []string {
	return ciudadesPorPais[pais]
}

// Sucursales returns the branch table.
func Sucursales() []Sucursal {
	return sucursales
}

// SucursalPorID looks up one branch.
func SucursalPorID(id string) (Sucursal, bool) {
	for _, s := range sucursales {
		if s.ID == id {
			return s, true
		}
	}
	return Sucursal{}, false
}

// MotivosCancelacion returns the fixed cancellation-reason list.
func MotivosCancelacion() []string {
	return motivosCancelacion
}
