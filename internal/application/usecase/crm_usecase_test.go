package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/usecase"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
)

const crmTestUser = "00000000-0000-0000-0000-000000000002"

func buildCRMUC() (*usecase.CRMUseCase, *fakeStageRepo, *fakeCompanyRepo, *fakeActivityRepo) {
	stageRepo := newFakeStageRepo()
	companyRepo := newFakeCompanyRepo()
	activityRepo := newFakeActivityRepo()
	uc := usecase.NewCRMUseCase(stageRepo, companyRepo, activityRepo)
	return uc, stageRepo, companyRepo, activityRepo
}

func seedCompany(repo *fakeCompanyRepo, stageID *string, valor string) *entity.Company {
	c := &entity.Company{
		ID:         uuid.New().String(),
		UserID:     crmTestUser,
		Nome:       "Empresa " + uuid.New().String()[:8],
		CRMStageID: stageID,
		CreatedAt:  time.Now(),
	}
	if valor != "" {
		v, _ := decimal.NewFromString(valor)
		c.ValorNegocio = &v
	}
	_ = repo.Create(c)
	return c
}

func TestCreateStage_PosicaoNoFimDoFunil(t *testing.T) {
	uc, _, _, _ := buildCRMUC()

	s1, err := uc.CreateStage(crmTestUser, dto.CreateStageRequest{Nome: "Prospecção"})
	require.NoError(t, err)
	s2, err := uc.CreateStage(crmTestUser, dto.CreateStageRequest{Nome: "Negociação"})
	require.NoError(t, err)

	assert.Equal(t, 0, s1.Posicao)
	assert.Equal(t, 1, s2.Posicao)
}

func TestDeleteStage_EmpresasFicamSemEtapa(t *testing.T) {
	uc, _, companyRepo, _ := buildCRMUC()

	stage, err := uc.CreateStage(crmTestUser, dto.CreateStageRequest{Nome: "Prospecção"})
	require.NoError(t, err)

	c := seedCompany(companyRepo, &stage.ID, "")
	require.NoError(t, uc.DeleteStage(crmTestUser, stage.ID))

	// A etapa some, a empresa fica — apenas desvinculada.
	got, err := companyRepo.GetByID(crmTestUser, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.CRMStageID)
}

func TestMoveCompany_RegistraHistorico(t *testing.T) {
	uc, _, companyRepo, activityRepo := buildCRMUC()

	origem, err := uc.CreateStage(crmTestUser, dto.CreateStageRequest{Nome: "Prospecção"})
	require.NoError(t, err)
	destino, err := uc.CreateStage(crmTestUser, dto.CreateStageRequest{Nome: "Fechamento"})
	require.NoError(t, err)

	c := seedCompany(companyRepo, &origem.ID, "")
	require.NoError(t, uc.MoveCompany(crmTestUser, c.ID, dto.MoveCompanyRequest{StageID: &destino.ID}))

	got, _ := companyRepo.GetByID(crmTestUser, c.ID)
	require.NotNil(t, got.CRMStageID)
	assert.Equal(t, destino.ID, *got.CRMStageID)

	require.Len(t, activityRepo.history, 1)
	h := activityRepo.history[0]
	assert.Equal(t, origem.ID, *h.FromStageID)
	assert.Equal(t, destino.ID, *h.ToStageID)
}

func TestMoveCompany_EtapaInexistente(t *testing.T) {
	uc, _, companyRepo, _ := buildCRMUC()
	c := seedCompany(companyRepo, nil, "")

	inexistente := uuid.New().String()
	err := uc.MoveCompany(crmTestUser, c.ID, dto.MoveCompanyRequest{StageID: &inexistente})
	assert.Error(t, err)
}

func TestBoard_AgregaPorColunaComSemEtapaNoFim(t *testing.T) {
	uc, _, companyRepo, _ := buildCRMUC()

	stage, err := uc.CreateStage(crmTestUser, dto.CreateStageRequest{Nome: "Negociação"})
	require.NoError(t, err)

	seedCompany(companyRepo, &stage.ID, "1500.00")
	seedCompany(companyRepo, &stage.ID, "500.00")
	seedCompany(companyRepo, nil, "")

	board, err := uc.Board(crmTestUser)
	require.NoError(t, err)
	require.Len(t, board.Colunas, 2)

	col := board.Colunas[0]
	require.NotNil(t, col.Stage)
	assert.Equal(t, stage.ID, col.Stage.ID)
	assert.Equal(t, 2, col.Quantidade)
	assert.True(t, col.ValorTotal.Equal(decimal.RequireFromString("2000.00")),
		"valor total da coluna deve somar os negócios")

	// Coluna "sem etapa" sempre por último.
	semEtapa := board.Colunas[len(board.Colunas)-1]
	assert.Nil(t, semEtapa.Stage)
	assert.Equal(t, 1, semEtapa.Quantidade)
}

func TestActivities_CriarConcluirListarPendentes(t *testing.T) {
	uc, _, companyRepo, _ := buildCRMUC()
	c := seedCompany(companyRepo, nil, "")

	a, err := uc.CreateActivity(crmTestUser, c.ID, dto.CreateActivityRequest{
		Tipo:      entity.ActivityTipoTarefa,
		Descricao: "Ligar para o contato",
	})
	require.NoError(t, err)

	pendentes, err := uc.ListPendingActivities(crmTestUser)
	require.NoError(t, err)
	assert.Len(t, pendentes, 1)

	concluida := true
	_, err = uc.UpdateActivity(crmTestUser, a.ID, dto.UpdateActivityRequest{Concluida: &concluida})
	require.NoError(t, err)

	pendentes, err = uc.ListPendingActivities(crmTestUser)
	require.NoError(t, err)
	assert.Empty(t, pendentes)
}
