package dto

import "time"

// RegisterRequest entrada do cadastro (password em texto, hasheado no use case).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nome     string `json:"nome" validate:"omitempty,max=200"`
	Empresa  string `json:"empresa" validate:"omitempty,max=200"`
	Telefone string `json:"telefone" validate:"omitempty,max=20"`
}

// ProfileResponse saída de um perfil (sem password).
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
	Empresa   string    `json:"empresa,omitempty"`
	Telefone  string    `json:"telefone,omitempty"`
	Plan      string    `json:"plan"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateProfileRequest entrada da edição de perfil.
type UpdateProfileRequest struct {
	Nome     string `json:"nome" validate:"omitempty,max=200"`
	Empresa  string `json:"empresa" validate:"omitempty,max=200"`
	Telefone string `json:"telefone" validate:"omitempty,max=20"`
}

// LoginRequest entrada do login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse saída com token JWT e perfil.
type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}
