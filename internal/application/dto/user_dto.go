package dto

import "time"

// RegisterRequest entrada de registro. El registro es upsert-por-email:
// si el email ya existe, la llamada no muta nada y reporta created=false.
type RegisterRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
	Role  string `json:"role"`
}

// RegisterResponse resultado del registro. Un email repetido no es error.
type RegisterResponse struct {
	Created bool          `json:"created"`
	Message string        `json:"message,omitempty"`
	User    *UserResponse `json:"user,omitempty"`
}

// UpdateUserRequest patch administrativo: solo se aplican los campos
// presentes. status="active" limpia suspendReason aunque venga uno nuevo
// en la misma llamada (la regla del status gana).
type UpdateUserRequest struct {
	Name          *string `json:"name"`
	Photo         *string `json:"photo"`
	Role          *string `json:"role"`
	Status        *string `json:"status"`
	SuspendReason *string `json:"suspendReason"`
}

// UserResponse salida de una cuenta.
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Photo         string    `json:"photo,omitempty"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	SuspendReason *string   `json:"suspendReason,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// IssueTokenRequest claim de identidad que se intercambia por la cookie.
type IssueTokenRequest struct {
	Email string `json:"email"`
}
