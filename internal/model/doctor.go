package model

import "time"

// Doctor is the schedule owner. Horario is the full slot-label template
// for any day, not a date-specific agenda.
type Doctor struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Nombre       string    `json:"nombre"`
	Especialidad string    `json:"especialidad"`
	Horario      []string  `json:"horario"`
	Telefono     string    `json:"telefono,omitempty"`
	Email        string    `json:"email,omitempty"`
	Activo       bool      `json:"activo"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateDoctorRequest struct {
	Nombre       string   `json:"nombre" binding:"required"`
	Especialidad string   `json:"especialidad" binding:"required"`
	Horario      []string `json:"horario" binding:"required,min=1,dive,required"`
	Telefono     string   `json:"telefono"`
	Email        string   `json:"email" binding:"omitempty,email"`
}
