package model

import "time"

// Paciente is never physically removed; deactivation flips Activo.
type Paciente struct {
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	Nombre            string    `json:"nombre"`
	Apellido          string    `json:"apellido"`
	CorreoElectronico string    `json:"correoElectronico"`
	NumeroTelefono    string    `json:"numeroTelefono"`
	Pais              string    `json:"pais"`
	Ciudad            string    `json:"ciudad"`
	Direccion         string    `json:"direccion"`
	FechaNacimiento   string    `json:"fechaNacimiento,omitempty"`
	AceptaPoliticas   bool      `json:"aceptaPoliticas"`
	FechaRegistro     time.Time `json:"fechaRegistro"`
	Activo            bool      `json:"activo"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt,omitempty"`
}

type CreatePacienteRequest struct {
	Nombre            string `json:"nombre"`
	Apellido          string `json:"apellido"`
	CorreoElectronico string `json:"correoElectronico"`
	NumeroTelefono    string `json:"numeroTelefono"`
	Pais              string `json:"pais"`
	Ciudad            string `json:"ciudad"`
	Direccion         string `json:"direccion"`
	FechaNacimiento   string `json:"fechaNacimiento"`
	AceptaPoliticas   bool   `json:"aceptaPoliticas"`
}

type UpdatePacienteRequest struct {
	Nombre            *string `json:"nombre"`
	Apellido          *string `json:"apellido"`
	CorreoElectronico *string `json:"correoElectronico"`
	NumeroTelefono    *string `json:"numeroTelefono"`
	Pais              *string `json:"pais"`
	Ciudad            *string `json:"ciudad"`
	Direccion         *string `json:"direccion"`
	FechaNacimiento   *string `json:"fechaNacimiento"`
}
