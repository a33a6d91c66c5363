package model

import "time"

// Servicio is a dental treatment offered by the clinic. Reference-like:
// immutable after creation.
type Servicio struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Nombre          string    `json:"nombre"`
	Duracion        int       `json:"duracion"`
	Precio          float64   `json:"precio"`
	Descripcion     string    `json:"descripcion,omitempty"`
	PublicoObjetivo string    `json:"publicoObjetivo,omitempty"`
	Activo          bool      `json:"activo"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateServicioRequest leaves duracion and precio untyped: clients send
// them as numbers or numeric strings and the service coerces them.
type CreateServicioRequest struct {
	Nombre          string      `json:"nombre" binding:"required"`
	Duracion        interface{} `json:"duracion" binding:"required"`
	Precio          interface{} `json:"precio" binding:"required"`
	Descripcion     string      `json:"descripcion"`
	PublicoObjetivo string      `json:"publicoObjetivo"`
}
