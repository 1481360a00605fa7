package usecase

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/domain"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

// MessageUseCase templates de mensagem, renderização e log de envio.
type MessageUseCase struct {
	messageRepo repository.MessageRepository
	companyRepo repository.CompanyRepository
	phoneRepo   repository.PhoneRepository
}

// NewMessageUseCase constrói o caso de uso com os ports de persistência.
func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	companyRepo repository.CompanyRepository,
	phoneRepo repository.PhoneRepository,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		companyRepo: companyRepo,
		phoneRepo:   phoneRepo,
	}
}

// ── Templates ─────────────────────────────────────────────────────────────────

// CreateTemplate cria um template de mensagem do usuário.
func (uc *MessageUseCase) CreateTemplate(userID string, in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	now := time.Now()
	t := &entity.MessageTemplate{
		ID:        uuid.New().String(),
		UserID:    userID,
		Nome:      in.Nome,
		Canal:     in.Canal,
		Corpo:     in.Corpo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.messageRepo.CreateTemplate(t); err != nil {
		return nil, err
	}
	return toTemplateResponse(t), nil
}

// ListTemplates lista os templates do usuário.
func (uc *MessageUseCase) ListTemplates(userID string) ([]dto.TemplateResponse, error) {
	list, err := uc.messageRepo.ListTemplates(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TemplateResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTemplateResponse(t))
	}
	return out, nil
}

// UpdateTemplate edita um template.
func (uc *MessageUseCase) UpdateTemplate(userID, id string, in dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	t, err := uc.messageRepo.GetTemplate(userID, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != "" {
		t.Nome = in.Nome
	}
	if in.Canal != "" {
		t.Canal = in.Canal
	}
	if in.Corpo != "" {
		t.Corpo = in.Corpo
	}
	t.UpdatedAt = time.Now()
	if err := uc.messageRepo.UpdateTemplate(t); err != nil {
		return nil, err
	}
	return toTemplateResponse(t), nil
}

// DeleteTemplate exclui um template.
func (uc *MessageUseCase) DeleteTemplate(userID, id string) error {
	return uc.messageRepo.DeleteTemplate(userID, id)
}

// ── Render e envio ────────────────────────────────────────────────────────────

// Render substitui os placeholders do template pelos dados da empresa.
func (uc *MessageUseCase) Render(userID string, in dto.RenderRequest) (*dto.RenderResponse, error) {
	t, err := uc.messageRepo.GetTemplate(userID, in.TemplateID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.RenderResponse{Corpo: renderTemplate(t.Corpo, company)}, nil
}

// Send renderiza o template para a empresa e registra o envio no log.
// Para o canal whatsapp devolve também o deep link wa.me com o texto.
func (uc *MessageUseCase) Send(userID string, in dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	t, err := uc.messageRepo.GetTemplate(userID, in.TemplateID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(userID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	phone, err := uc.phoneRepo.GetByID(in.PhoneID)
	if err != nil {
		return nil, err
	}
	if phone == nil || phone.CompanyID != company.ID {
		return nil, domain.ErrNotFound
	}

	corpo := renderTemplate(t.Corpo, company)
	h := &entity.MessageHistory{
		ID:        uuid.New().String(),
		UserID:    userID,
		CompanyID: company.ID,
		PhoneID:   phone.ID,
		Canal:     t.Canal,
		Corpo:     corpo,
		Status:    entity.MensagemEnviada,
		EnviadoEm: time.Now(),
	}
	if err := uc.messageRepo.AddHistory(h); err != nil {
		return nil, err
	}

	resp := &dto.SendMessageResponse{HistoryID: h.ID, Status: h.Status}
	if t.Canal == entity.CanalWhatsApp {
		resp.Link = waLink(phone.Numero, corpo)
	}
	return resp, nil
}

// History lista o log de envio, opcionalmente filtrado por empresa.
func (uc *MessageUseCase) History(userID, companyID string, page dto.PageRequest) ([]dto.HistoryResponse, error) {
	page.DefaultPage()
	list, err := uc.messageRepo.ListHistory(userID, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryResponse, 0, len(list))
	for _, h := range list {
		out = append(out, dto.HistoryResponse{
			ID:        h.ID,
			CompanyID: h.CompanyID,
			PhoneID:   h.PhoneID,
			Canal:     h.Canal,
			Corpo:     h.Corpo,
			Status:    h.Status,
			EnviadoEm: h.EnviadoEm,
		})
	}
	return out, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// renderTemplate substitui os placeholders {{campo}} pelos dados da empresa.
// Placeholder sem dado correspondente vira string vazia.
func renderTemplate(corpo string, c *entity.Company) string {
	valores := map[string]string{
		"nome":           c.Nome,
		"cnpj":           c.CNPJ,
		"cidade":         c.Cidade,
		"uf":             c.UF,
		"endereco":       c.Endereco,
		"cnae_descricao": c.CNAEDescricao,
		"website":        deref(c.Website),
		"email":          deref(c.Email),
	}
	out := corpo
	for campo, valor := range valores {
		out = strings.ReplaceAll(out, "{{"+campo+"}}", valor)
	}
	return out
}

// waLink monta o deep link wa.me: somente dígitos no número, DDI 55 se faltar.
func waLink(numero, texto string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, numero)
	if !strings.HasPrefix(digits, "55") {
		digits = "55" + digits
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(texto)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toTemplateResponse(t *entity.MessageTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		ID:    t.ID,
		Nome:  t.Nome,
		Canal: t.Canal,
		Corpo: t.Corpo,
	}
}
