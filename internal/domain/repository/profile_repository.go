package repository

import "github.com/acheileads/achei-leads-api/internal/domain/entity"

// ProfileRepository define a porta de persistência para Profile.
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	FindByEmail(email string) (*entity.Profile, error)
	Update(profile *entity.Profile) error
}
