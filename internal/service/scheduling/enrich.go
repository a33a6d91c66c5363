package scheduling

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/odontosys/clinic-api/internal/model"
	"github.com/odontosys/clinic-api/internal/refdata"
	"github.com/odontosys/clinic-api/internal/repository"
)

// Sentinel display values for missing related entities. Enrichment is
// best-effort: a broken reference degrades the row, never the request.
const (
	SentinelDoctor       = "Doctor no encontrado"
	SentinelEspecialidad = "Sin especialidad"
	SentinelServicio     = "Servicio no encontrado"
	SentinelSucursal     = "Sucursal no encontrada"
)

// Enricher joins doctor, servicio and sucursal display fields onto
// appointment rows. Lookups are batched per call and memoized in a
// short-lived cache so list responses cost two store round trips at
// most.
type Enricher struct {
	doctors   repository.DoctorRepository
	servicios repository.ServicioRepository
	cache     *gocache.Cache
}

func NewEnricher(doctors repository.DoctorRepository, servicios repository.ServicioRepository) *Enricher {
	return &Enricher{
		doctors:   doctors,
		servicios: servicios,
		cache:     gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (e *Enricher) EnrichOne(ctx context.Context, cita *model.Cita) *model.CitaEnriquecida {
	enriched := e.EnrichAll(ctx, []*model.Cita{cita})
	return enriched[0]
}

func (e *Enricher) EnrichAll(ctx context.Context, citas []*model.Cita) []*model.CitaEnriquecida {
	doctors, servicios := e.lookupRelated(ctx, citas)

	out := make([]*model.CitaEnriquecida, 0, len(citas))
	for _, cita := range citas {
		row := &model.CitaEnriquecida{
			Cita:               *cita,
			DoctorNombre:       SentinelDoctor,
			DoctorEspecialidad: SentinelEspecialidad,
			ServicioNombre:     SentinelServicio,
			SucursalNombre:     SentinelSucursal,
		}

		if doctor, ok := doctors[cita.DoctorID]; ok {
			row.DoctorNombre = doctor.Nombre
			row.DoctorEspecialidad = doctor.Especialidad
		}
		if servicio, ok := servicios[cita.ServicioID]; ok {
			row.ServicioNombre = servicio.Nombre
			row.ServicioPrecio = servicio.Precio
		}
		if sucursal, ok := refdata.SucursalPorID(cita.SucursalID); ok {
			row.SucursalNombre = sucursal.Nombre
		}

		out = append(out, row)
	}
	return out
}

// lookupRelated resolves every referenced doctor and servicio, serving
// from cache and fetching the remainder in one query per entity type.
// Lookup failures leave the sentinel values in place.
func (e *Enricher) lookupRelated(ctx context.Context, citas []*model.Cita) (map[string]*model.Doctor, map[string]*model.Servicio) {
	doctors := make(map[string]*model.Doctor)
	servicios := make(map[string]*model.Servicio)
	var missDoctors, missServicios []string

	for _, cita := range citas {
		if _, seen := doctors[cita.DoctorID]; !seen && cita.DoctorID != "" {
			if cached, ok := e.cache.Get("doctor:" + cita.DoctorID); ok {
				doctors[cita.DoctorID] = cached.(*model.Doctor)
			} else {
				doctors[cita.DoctorID] = nil
				missDoctors = append(missDoctors, cita.DoctorID)
			}
		}
		if _, seen := servicios[cita.ServicioID]; !seen && cita.ServicioID != "" {
			if cached, ok := e.cache.Get("servicio:" + cita.ServicioID); ok {
				servicios[cita.ServicioID] = cached.(*model.Servicio)
			} else {
				servicios[cita.ServicioID] = nil
				missServicios = append(missServicios, cita.ServicioID)
			}
		}
	}

	if len(missDoctors) > 0 {
		if fetched, err := e.doctors.GetMany(ctx, missDoctors); err == nil {
			for id, doctor := range fetched {
				doctors[id] = doctor
				e.cache.SetDefault("doctor:"+id, doctor)
			}
		}
	}
	if len(missServicios) > 0 {
		if fetched, err := e.servicios.GetMany(ctx, missServicios); err == nil {
			for id, servicio := range fetched {
				servicios[id] = servicio
				e.cache.SetDefault("servicio:"+id, servicio)
			}
		}
	}

	for id, doctor := range doctors {
		if doctor == nil {
			delete(doctors, id)
		}
	}
	for id, servicio := range servicios {
		if servicio == nil {
			delete(servicios, id)
		}
	}
	return doctors, servicios
}
