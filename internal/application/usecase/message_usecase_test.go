package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/usecase"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
)

const msgTestUser = "00000000-0000-0000-0000-000000000003"

func buildMessageUC() (*usecase.MessageUseCase, *fakeMessageRepo, *fakeCompanyRepo, *fakePhoneRepo) {
	messageRepo := newFakeMessageRepo()
	companyRepo := newFakeCompanyRepo()
	phoneRepo := newFakePhoneRepo()
	uc := usecase.NewMessageUseCase(messageRepo, companyRepo, phoneRepo)
	return uc, messageRepo, companyRepo, phoneRepo
}

func seedMessageScenario(companyRepo *fakeCompanyRepo, phoneRepo *fakePhoneRepo) (*entity.Company, *entity.Phone) {
	c := &entity.Company{
		ID:        uuid.New().String(),
		UserID:    msgTestUser,
		Nome:      "Padaria Estrela",
		CNPJ:      "11222333000181",
		Cidade:    "São Paulo",
		UF:        "SP",
		CreatedAt: time.Now(),
	}
	_ = companyRepo.Create(c)
	p := &entity.Phone{
		ID:        uuid.New().String(),
		CompanyID: c.ID,
		Numero:    "(11) 99999-0000",
		Tipo:      entity.PhoneTipoCelular,
		WhatsApp:  true,
	}
	_ = phoneRepo.Create(p)
	return c, p
}

func TestRender_SubstituiPlaceholders(t *testing.T) {
	uc, _, companyRepo, phoneRepo := buildMessageUC()
	c, _ := seedMessageScenario(companyRepo, phoneRepo)

	tpl, err := uc.CreateTemplate(msgTestUser, dto.CreateTemplateRequest{
		Nome:  "Prospecção",
		Canal: entity.CanalWhatsApp,
		Corpo: "Olá {{nome}}! Vi que vocês ficam em {{cidade}}/{{uf}}. Site: {{website}}",
	})
	require.NoError(t, err)

	out, err := uc.Render(msgTestUser, dto.RenderRequest{TemplateID: tpl.ID, CompanyID: c.ID})
	require.NoError(t, err)

	// Placeholder sem dado (website) vira string vazia, não fica no texto.
	assert.Equal(t, "Olá Padaria Estrela! Vi que vocês ficam em São Paulo/SP. Site: ", out.Corpo)
}

func TestSend_RegistraHistoricoEDevolveLinkWhatsApp(t *testing.T) {
	uc, messageRepo, companyRepo, phoneRepo := buildMessageUC()
	c, p := seedMessageScenario(companyRepo, phoneRepo)

	tpl, err := uc.CreateTemplate(msgTestUser, dto.CreateTemplateRequest{
		Nome:  "Prospecção",
		Canal: entity.CanalWhatsApp,
		Corpo: "Olá {{nome}}!",
	})
	require.NoError(t, err)

	resp, err := uc.Send(msgTestUser, dto.SendMessageRequest{
		TemplateID: tpl.ID,
		CompanyID:  c.ID,
		PhoneID:    p.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MensagemEnviada, resp.Status)
	// Número vira só dígitos com DDI 55 e o texto renderizado vai escapado.
	assert.Equal(t, "https://wa.me/5511999990000?text=Ol%C3%A1+Padaria+Estrela%21", resp.Link)

	require.Len(t, messageRepo.history, 1)
	assert.Equal(t, "Olá Padaria Estrela!", messageRepo.history[0].Corpo)
	assert.Equal(t, entity.CanalWhatsApp, messageRepo.history[0].Canal)
}

func TestSend_TelefoneDeOutraEmpresa(t *testing.T) {
	uc, _, companyRepo, phoneRepo := buildMessageUC()
	c, _ := seedMessageScenario(companyRepo, phoneRepo)

	outra := &entity.Company{ID: uuid.New().String(), UserID: msgTestUser, Nome: "Outra"}
	_ = companyRepo.Create(outra)
	alheio := &entity.Phone{ID: uuid.New().String(), CompanyID: outra.ID, Numero: "1133334444"}
	_ = phoneRepo.Create(alheio)

	tpl, err := uc.CreateTemplate(msgTestUser, dto.CreateTemplateRequest{
		Nome:  "Prospecção",
		Canal: entity.CanalWhatsApp,
		Corpo: "Olá",
	})
	require.NoError(t, err)

	_, err = uc.Send(msgTestUser, dto.SendMessageRequest{
		TemplateID: tpl.ID,
		CompanyID:  c.ID,
		PhoneID:    alheio.ID,
	})
	assert.Error(t, err, "telefone que não pertence à empresa não pode receber envio")
}

func TestHistory_FiltraPorEmpresa(t *testing.T) {
	uc, _, companyRepo, phoneRepo := buildMessageUC()
	c, p := seedMessageScenario(companyRepo, phoneRepo)

	tpl, err := uc.CreateTemplate(msgTestUser, dto.CreateTemplateRequest{
		Nome:  "Prospecção",
		Canal: entity.CanalSMS,
		Corpo: "Olá {{nome}}",
	})
	require.NoError(t, err)

	_, err = uc.Send(msgTestUser, dto.SendMessageRequest{TemplateID: tpl.ID, CompanyID: c.ID, PhoneID: p.ID})
	require.NoError(t, err)

	porEmpresa, err := uc.History(msgTestUser, c.ID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, porEmpresa, 1)

	outraEmpresa, err := uc.History(msgTestUser, uuid.New().String(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, outraEmpresa)
}
