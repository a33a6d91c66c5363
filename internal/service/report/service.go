// Package report is a read-only aggregator over appointment documents.
// It adds no invariants of its own.
package report

import (
	"context"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/repository"
	"github.com/odontosys/clinic-api/internal/service/scheduling"
)

type Service struct {
	citas     repository.CitaRepository
	servicios repository.ServicioRepository
	enricher  *scheduling.Enricher
}

func NewService(citas repository.CitaRepository, servicios repository.ServicioRepository, enricher *scheduling.Enricher) *Service {
	return &Service{citas: citas, servicios: servicios, enricher: enricher}
}

func (s *Service) Generate(ctx context.Context, filters *model.ReporteFilters) (*model.Reporte, error) {
	citas, err := s.citas.List(ctx, &model.CitaFilters{
		SucursalID:  filters.SucursalID,
		FechaInicio: filters.FechaInicio,
		FechaFin:    filters.FechaFin,
	})
	if err != nil {
		return nil, err
	}

	citas, err = s.applyServicioFilters(ctx, citas, filters)
	if err != nil {
		return nil, err
	}

	var metricas model.Metricas
	var atendidas, canceladas []*model.Cita
	metricas.Total = len(citas)
	for _, cita := range citas {
		switch cita.Estado {
		case model.EstadoConfirmada:
			metricas.Confirmadas++
		case model.EstadoAtendida:
			metricas.Atendidas++
			atendidas = append(atendidas, cita)
		case model.EstadoCancelada:
			metricas.Canceladas++
			canceladas = append(canceladas, cita)
		case model.EstadoNoAsistio:
			metricas.NoAsistio++
		}
	}

	return &model.Reporte{
		Metricas:        metricas,
		CitasAtendidas:  s.enricher.EnrichAll(ctx, atendidas),
		CitasCanceladas: s.enricher.EnrichAll(ctx, canceladas),
		Filtros:         describeFilters(filters),
	}, nil
}

// applyServicioFilters narrows by servicio id or by the servicio's
// target audience; both need the servicio documents.
func (s *Service) applyServicioFilters(ctx context.Context, citas []*model.Cita, filters *model.ReporteFilters) ([]*model.Cita, error) {
	if filters.ServicioID == "" && filters.PublicoObjetivo == "" {
		return citas, nil
	}

	if filters.ServicioID != "" {
		filtered := citas[:0]
		for _, cita := range citas {
			if cita.ServicioID == filters.ServicioID {
				filtered = append(filtered, cita)
			}
		}
		citas = filtered
	}

	if filters.PublicoObjetivo != "" {
		ids := make([]string, 0, len(citas))
		seen := make(map[string]bool)
		for _, cita := range citas {
			if !seen[cita.ServicioID] {
				seen[cita.ServicioID] = true
				ids = append(ids, cita.ServicioID)
			}
		}
		servicios, err := s.servicios.GetMany(ctx, ids)
		if err != nil {
			return nil, err
		}
		filtered := citas[:0]
		for _, cita := range citas {
			if servicio, ok := servicios[cita.ServicioID]; ok && servicio.PublicoObjetivo == filters.PublicoObjetivo {
				filtered = append(filtered, cita)
			}
		}
		citas = filtered
	}

	return citas, nil
}

func describeFilters(filters *model.ReporteFilters) map[string]string {
	described := map[string]string{
		"sucursalId":  orDefault(filters.SucursalID, "todas"),
		"fechaInicio": orDefault(filters.FechaInicio, "sin_limite"),
		"fechaFin":    orDefault(filters.FechaFin, "sin_limite"),
	}
	if filters.ServicioID != "" {
		described["servicioId"] = filters.ServicioID
	}
	if filters.PublicoObjetivo != "" {
		described["publicoObjetivo"] = filters.PublicoObjetivo
	}
	return described
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
