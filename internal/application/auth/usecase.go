package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/domain"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
	"github.com/acheileads/achei-leads-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: cadastro, login e perfil.
type AuthUseCase struct {
	profileRepo  repository.ProfileRepository
	creditRepo   repository.CreditRepository
	jwtCfg       JWTConfig
	welcomeBonus int
}

// NewAuthUseCase constrói o caso de uso de auth.
// welcomeBonus créditos de boas-vindas lançados no cadastro.
func NewAuthUseCase(profileRepo repository.ProfileRepository, creditRepo repository.CreditRepository, jwtCfg JWTConfig, welcomeBonus int) *AuthUseCase {
	return &AuthUseCase{
		profileRepo:  profileRepo,
		creditRepo:   creditRepo,
		jwtCfg:       jwtCfg,
		welcomeBonus: welcomeBonus,
	}
}

// Register cria um perfil: hasheia o password com bcrypt, persiste, abre o
// extrato com o bônus de boas-vindas e devolve token + perfil.
// Devolve ErrEmailAlreadyExists se o e-mail já estiver cadastrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.LoginResponse, error) {
	existing, _ := uc.profileRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	nome := in.Nome
	if nome == "" {
		nome = in.Email
	}
	profile := &entity.Profile{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nome:         nome,
		Empresa:      in.Empresa,
		Telefone:     in.Telefone,
		Plan:         entity.PlanFree,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.profileRepo.Create(profile); err != nil {
		return nil, err
	}

	if uc.welcomeBonus > 0 {
		if err := uc.creditRepo.AdjustBalance(profile.ID, uc.welcomeBonus); err != nil {
			return nil, err
		}
		if err := uc.creditRepo.AddTransaction(&entity.CreditTransaction{
			ID:         uuid.New().String(),
			UserID:     profile.ID,
			Tipo:       entity.CreditTipoBonus,
			Quantidade: uc.welcomeBonus,
			Descricao:  "Créditos de boas-vindas",
			CreatedAt:  now,
		}); err != nil {
			return nil, err
		}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, profile.Email, profile.Plan, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Profile: *toProfileResponse(profile),
	}, nil
}

// Login verifica email/password, gera JWT e devolve token + perfil.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, err := uc.profileRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if profile.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, profile.Email, profile.Plan, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Profile: *toProfileResponse(profile),
	}, nil
}

// GetProfile devolve o perfil do usuário autenticado.
func (uc *AuthUseCase) GetProfile(userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	return toProfileResponse(profile), nil
}

// UpdateProfile edita nome, empresa e telefone.
func (uc *AuthUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Nome != "" {
		profile.Nome = in.Nome
	}
	if in.Empresa != "" {
		profile.Empresa = in.Empresa
	}
	if in.Telefone != "" {
		profile.Telefone = in.Telefone
	}
	profile.UpdatedAt = time.Now()
	if err := uc.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		Nome:      p.Nome,
		Empresa:   p.Empresa,
		Telefone:  p.Telefone,
		Plan:      p.Plan,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
