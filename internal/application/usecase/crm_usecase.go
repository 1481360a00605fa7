package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/domain"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

// Cor padrão de uma etapa nova.
const defaultStageColor = "#6b7280"

// CRMUseCase casos de uso do funil de vendas: etapas, kanban, atividades.
type CRMUseCase struct {
	stageRepo    repository.StageRepository
	companyRepo  repository.CompanyRepository
	activityRepo repository.ActivityRepository
}

// NewCRMUseCase constrói o caso de uso com os ports de persistência.
func NewCRMUseCase(
	stageRepo repository.StageRepository,
	companyRepo repository.CompanyRepository,
	activityRepo repository.ActivityRepository,
) *CRMUseCase {
	return &CRMUseCase{
		stageRepo:    stageRepo,
		companyRepo:  companyRepo,
		activityRepo: activityRepo,
	}
}

// ── Etapas ────────────────────────────────────────────────────────────────────

// CreateStage cria uma etapa no fim do funil.
func (uc *CRMUseCase) CreateStage(userID string, in dto.CreateStageRequest) (*dto.StageResponse, error) {
	existing, err := uc.stageRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	cor := in.Cor
	if cor == "" {
		cor = defaultStageColor
	}
	now := time.Now()
	stage := &entity.PipelineStage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Nome:      in.Nome,
		Cor:       cor,
		Posicao:   len(existing),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.stageRepo.Create(stage); err != nil {
		return nil, err
	}
	return toStageResponse(stage), nil
}

// ListStages lista as etapas do usuário em ordem de posição.
func (uc *CRMUseCase) ListStages(userID string) ([]dto.StageResponse, error) {
	stages, err := uc.stageRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StageResponse, 0, len(stages))
	for _, s := range stages {
		out = append(out, *toStageResponse(s))
	}
	return out, nil
}

// UpdateStage edita nome e cor de uma etapa.
func (uc *CRMUseCase) UpdateStage(userID, id string, in dto.UpdateStageRequest) (*dto.StageResponse, error) {
	stage, err := uc.stageRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != "" {
		stage.Nome = in.Nome
	}
	if in.Cor != "" {
		stage.Cor = in.Cor
	}
	stage.UpdatedAt = time.Now()
	if err := uc.stageRepo.Update(stage); err != nil {
		return nil, err
	}
	return toStageResponse(stage), nil
}

// ReorderStages aplica a nova ordem das colunas (posicao = índice na lista).
func (uc *CRMUseCase) ReorderStages(userID string, in dto.ReorderStagesRequest) error {
	return uc.stageRepo.UpdatePositions(userID, in.IDs)
}

// DeleteStage exclui uma etapa. As empresas da etapa nunca são excluídas:
// são desvinculadas (crm_stage_id = NULL) antes da remoção.
func (uc *CRMUseCase) DeleteStage(userID, id string) error {
	stage, err := uc.stageRepo.GetByID(userID, id)
	if err != nil {
		return err
	}
	if stage == nil {
		return domain.ErrNotFound
	}
	if err := uc.companyRepo.ReassignStageToNull(userID, id); err != nil {
		return err
	}
	return uc.stageRepo.Delete(userID, id)
}

// ── Kanban ────────────────────────────────────────────────────────────────────

// Board monta o quadro kanban: etapas ordenadas com contagem e soma de valor,
// mais a coluna "sem etapa" no fim.
func (uc *CRMUseCase) Board(userID string) (*dto.BoardResponse, error) {
	stages, err := uc.stageRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	aggregates, err := uc.companyRepo.StageAggregates(userID)
	if err != nil {
		return nil, err
	}

	byStage := make(map[string]repository.StageAggregate, len(aggregates))
	var unassigned repository.StageAggregate
	for _, a := range aggregates {
		if a.StageID == nil {
			unassigned = a
			continue
		}
		byStage[*a.StageID] = a
	}

	board := &dto.BoardResponse{Colunas: make([]dto.BoardColumn, 0, len(stages)+1)}
	for _, s := range stages {
		agg := byStage[s.ID]
		board.Colunas = append(board.Colunas, dto.BoardColumn{
			Stage:      toStageResponse(s),
			Quantidade: agg.Count,
			ValorTotal: valorOuZero(agg.ValorTotal),
		})
	}
	board.Colunas = append(board.Colunas, dto.BoardColumn{
		Stage:      nil,
		Quantidade: unassigned.Count,
		ValorTotal: valorOuZero(unassigned.ValorTotal),
	})
	return board, nil
}

// MoveCompany move a empresa para outra etapa (nil = sem etapa) e registra a
// movimentação no histórico.
func (uc *CRMUseCase) MoveCompany(userID, companyID string, in dto.MoveCompanyRequest) error {
	company, err := uc.companyRepo.GetByID(userID, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if in.StageID != nil {
		stage, err := uc.stageRepo.GetByID(userID, *in.StageID)
		if err != nil {
			return err
		}
		if stage == nil {
			return domain.ErrNotFound
		}
	}

	if err := uc.companyRepo.SetStage(userID, companyID, in.StageID); err != nil {
		return err
	}
	return uc.activityRepo.AddStageHistory(&entity.StageHistory{
		ID:          uuid.New().String(),
		UserID:      userID,
		CompanyID:   companyID,
		FromStageID: company.CRMStageID,
		ToStageID:   in.StageID,
		MovedAt:     time.Now(),
	})
}

// StageHistory devolve as movimentações de uma empresa no funil.
func (uc *CRMUseCase) StageHistory(userID, companyID string) ([]dto.StageHistoryResponse, error) {
	history, err := uc.activityRepo.ListStageHistory(userID, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StageHistoryResponse, 0, len(history))
	for _, h := range history {
		out = append(out, dto.StageHistoryResponse{
			ID:          h.ID,
			CompanyID:   h.CompanyID,
			FromStageID: h.FromStageID,
			ToStageID:   h.ToStageID,
			MovedAt:     h.MovedAt,
		})
	}
	return out, nil
}

// ── Atividades ────────────────────────────────────────────────────────────────

// CreateActivity cria uma atividade ligada a uma empresa do usuário.
func (uc *CRMUseCase) CreateActivity(userID, companyID string, in dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	company, err := uc.companyRepo.GetByID(userID, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	activity := &entity.CrmActivity{
		ID:         uuid.New().String(),
		UserID:     userID,
		CompanyID:  companyID,
		Tipo:       in.Tipo,
		Descricao:  in.Descricao,
		Vencimento: in.Vencimento,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.activityRepo.Create(activity); err != nil {
		return nil, err
	}
	return toActivityResponse(activity), nil
}

// ListActivities lista as atividades de uma empresa.
func (uc *CRMUseCase) ListActivities(userID, companyID string) ([]dto.ActivityResponse, error) {
	activities, err := uc.activityRepo.ListByCompany(userID, companyID)
	if err != nil {
		return nil, err
	}
	return toActivityResponses(activities), nil
}

// ListPendingActivities lista a agenda do usuário (não concluídas, vencimento primeiro).
func (uc *CRMUseCase) ListPendingActivities(userID string) ([]dto.ActivityResponse, error) {
	activities, err := uc.activityRepo.ListPending(userID)
	if err != nil {
		return nil, err
	}
	return toActivityResponses(activities), nil
}

// UpdateActivity edita/conclui uma atividade.
func (uc *CRMUseCase) UpdateActivity(userID, id string, in dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	activity, err := uc.activityRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, domain.ErrNotFound
	}
	if in.Descricao != nil {
		activity.Descricao = *in.Descricao
	}
	if in.Concluida != nil {
		activity.Concluida = *in.Concluida
	}
	if in.Vencimento != nil {
		activity.Vencimento = in.Vencimento
	}
	activity.UpdatedAt = time.Now()
	if err := uc.activityRepo.Update(activity); err != nil {
		return nil, err
	}
	return toActivityResponse(activity), nil
}

// DeleteActivity exclui uma atividade do usuário.
func (uc *CRMUseCase) DeleteActivity(userID, id string) error {
	return uc.activityRepo.Delete(userID, id)
}

// ── Conversões ────────────────────────────────────────────────────────────────

func toStageResponse(s *entity.PipelineStage) *dto.StageResponse {
	return &dto.StageResponse{
		ID:      s.ID,
		Nome:    s.Nome,
		Cor:     s.Cor,
		Posicao: s.Posicao,
	}
}

func toActivityResponse(a *entity.CrmActivity) *dto.ActivityResponse {
	return &dto.ActivityResponse{
		ID:         a.ID,
		CompanyID:  a.CompanyID,
		Tipo:       a.Tipo,
		Descricao:  a.Descricao,
		Concluida:  a.Concluida,
		Vencimento: a.Vencimento,
		CreatedAt:  a.CreatedAt,
	}
}

func toActivityResponses(list []*entity.CrmActivity) []dto.ActivityResponse {
	out := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toActivityResponse(a))
	}
	return out
}

func valorOuZero(v decimal.Decimal) decimal.Decimal {
	// decimal.Decimal zero-value já representa 0; normalizamos para serializar "0".
	if v.IsZero() {
		return decimal.Zero
	}
	return v
}
