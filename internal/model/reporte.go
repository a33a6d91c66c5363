package model

// Metricas are the per-estado appointment counts for one report.
type Metricas struct {
	Total       int `json:"total"`
	Confirmadas int `json:"confirmadas"`
	Atendidas   int `json:"atendidas"`
	Canceladas  int `json:"canceladas"`
	NoAsistio   int `json:"noAsistio"`
}

// ReporteFilters are the optional report query parameters.
type ReporteFilters struct {
	SucursalID      string
	ServicioID      string
	PublicoObjetivo string
	FechaInicio     string
	FechaFin        string
}

// Reporte folds the matching appointments into metrics plus the
// enriched attended and cancelled detail lists.
type Reporte struct {
	Metricas        Metricas           `json:"metricas"`
	CitasAtendidas  []*CitaEnriquecida `json:"citasAtendidas"`
	CitasCanceladas []*CitaEnriquecida `json:"citasCanceladas"`
	Filtros         map[string]string  `json:"filtros"`
}
