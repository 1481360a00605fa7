package entity

import "time"

// Planos válidos para Profile.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// Profile representa um usuário do sistema (dono dos próprios leads, funil e créditos).
type Profile struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca em texto plano após persistir
	Nome         string
	Empresa      string // nome da empresa do usuário (opcional)
	Telefone     string
	Plan         string // free, pro
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
