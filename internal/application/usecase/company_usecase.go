package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acheileads/achei-leads-api/internal/application/batch"
	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/domain"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
	"github.com/acheileads/achei-leads-api/pkg/cnpj"
)

// ImportTxRunner contrato de transação da importação: consumo de 1 crédito +
// insert de empresa e telefones, tudo ou nada. Implementado pela infraestrutura.
type ImportTxRunner interface {
	RunImport(ctx context.Context, fn func(
		creditRepo repository.CreditRepository,
		companyRepo repository.CompanyRepository,
		phoneRepo repository.PhoneRepository,
	) error) error
}

// CompanyUseCase casos de uso de empresas: importação, CRUD e telefones.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
	phoneRepo   repository.PhoneRepository
	creditRepo  repository.CreditRepository
	txRunner    ImportTxRunner
}

// NewCompanyUseCase constrói o caso de uso com os ports de persistência.
func NewCompanyUseCase(
	companyRepo repository.CompanyRepository,
	phoneRepo repository.PhoneRepository,
	creditRepo repository.CreditRepository,
	txRunner ImportTxRunner,
) *CompanyUseCase {
	return &CompanyUseCase{
		companyRepo: companyRepo,
		phoneRepo:   phoneRepo,
		creditRepo:  creditRepo,
		txRunner:    txRunner,
	}
}

// Import importa um lote de resultados de busca, em sequência. Cada item
// consome 1 crédito dentro da mesma transação do insert: saldo lido com lock,
// nunca fica negativo; item sem saldo falha com "saldo insuficiente" e o lote
// continua, acumulando o relatório.
func (uc *CompanyUseCase) Import(ctx context.Context, userID string, in dto.ImportRequest) (*dto.BatchReport, error) {
	report := batch.Run(in.Empresas,
		func(e dto.CompanyResult) string { return e.CNPJ },
		func(e dto.CompanyResult) error {
			return uc.importOne(ctx, userID, e)
		})
	return batchToDTO(report), nil
}

func (uc *CompanyUseCase) importOne(ctx context.Context, userID string, e dto.CompanyResult) error {
	if e.Nome == "" {
		return domain.ErrInvalidInput
	}
	cnpjDigits := cnpj.Normalize(e.CNPJ)
	if cnpjDigits != "" {
		exists, err := uc.companyRepo.ExistsByCNPJ(userID, cnpjDigits)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicate
		}
	}

	now := time.Now()
	company := &entity.Company{
		ID:            uuid.New().String(),
		UserID:        userID,
		Nome:          e.Nome,
		CNPJ:          cnpjDigits,
		CNAE:          e.CNAE,
		CNAEDescricao: e.CNAEDescricao,
		Cidade:        e.Cidade,
		UF:            e.UF,
		Endereco:      e.Endereco,
		CEP:           e.CEP,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if e.Website != "" {
		company.Website = &e.Website
	}
	if e.Email != "" {
		company.Email = &e.Email
	}

	return uc.txRunner.RunImport(ctx, func(
		creditRepo repository.CreditRepository,
		companyRepo repository.CompanyRepository,
		phoneRepo repository.PhoneRepository,
	) error {
		saldo, err := creditRepo.GetBalanceForUpdate(userID)
		if err != nil {
			return err
		}
		if saldo < 1 {
			return domain.ErrInsufficientCredits
		}
		if err := creditRepo.AdjustBalance(userID, -1); err != nil {
			return err
		}
		if err := creditRepo.AddTransaction(&entity.CreditTransaction{
			ID:         uuid.New().String(),
			UserID:     userID,
			Tipo:       entity.CreditTipoConsumo,
			Quantidade: -1,
			Descricao:  fmt.Sprintf("Importação de empresa: %s", company.Nome),
			Referencia: company.ID,
			CreatedAt:  now,
		}); err != nil {
			return err
		}
		if err := companyRepo.Create(company); err != nil {
			return err
		}
		for _, t := range e.Telefones {
			phone := &entity.Phone{
				ID:              uuid.New().String(),
				CompanyID:       company.ID,
				Numero:          t.Numero,
				Tipo:            tipoOuPadrao(t.Tipo),
				StatusValidacao: entity.PhoneStatusPendente,
				WhatsApp:        t.WhatsApp,
				CreatedAt:       now,
			}
			if err := phoneRepo.Create(phone); err != nil {
				return err
			}
		}
		return nil
	})
}

// List lista as empresas do usuário com filtros e paginação.
func (uc *CompanyUseCase) List(userID string, in dto.ListCompaniesRequest) ([]dto.CompanyResponse, *dto.PageResponse, error) {
	in.DefaultPage()

	f := repository.CompanyFilter{
		Cidade: in.Cidade,
		UF:     in.UF,
		Busca:  in.Busca,
		Limit:  in.Limit,
		Offset: in.Offset,
	}
	switch in.StageID {
	case "":
	case "null":
		f.StageUnassigned = true
	default:
		stageID := in.StageID
		f.StageID = &stageID
	}
	switch in.Enriquecida {
	case "true":
		v := true
		f.Enriquecida = &v
	case "false":
		v := false
		f.Enriquecida = &v
	}

	companies, total, err := uc.companyRepo.List(userID, f)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]string, 0, len(companies))
	for _, c := range companies {
		ids = append(ids, c.ID)
	}
	phonesByCompany, err := uc.phoneRepo.ListByCompanies(ids)
	if err != nil {
		return nil, nil, err
	}

	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, *toCompanyResponse(c, phonesByCompany[c.ID]))
	}
	page := &dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total}
	return out, page, nil
}

// GetByID devolve uma empresa do usuário com os telefones.
func (uc *CompanyUseCase) GetByID(userID, id string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	phones, err := uc.phoneRepo.ListByCompany(company.ID)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company, phones), nil
}

// Update edita campos da empresa (CRM incluído). Campos nil não são alterados.
func (uc *CompanyUseCase) Update(userID, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if in.Nome != nil && *in.Nome != "" {
		company.Nome = *in.Nome
	}
	if in.Cidade != nil {
		company.Cidade = *in.Cidade
	}
	if in.UF != nil {
		company.UF = *in.UF
	}
	if in.Endereco != nil {
		company.Endereco = *in.Endereco
	}
	if in.Website != nil {
		company.Website = in.Website
	}
	if in.Email != nil {
		company.Email = in.Email
	}
	if in.ValorNegocio != nil {
		company.ValorNegocio = in.ValorNegocio
	}
	if in.PrevisaoFechamento != nil {
		company.PrevisaoFechamento = in.PrevisaoFechamento
	}
	company.UpdatedAt = time.Now()

	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	phones, err := uc.phoneRepo.ListByCompany(company.ID)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company, phones), nil
}

// Delete exclui a empresa e os telefones em cascata.
func (uc *CompanyUseCase) Delete(userID, id string) error {
	company, err := uc.companyRepo.GetByID(userID, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if err := uc.phoneRepo.DeleteByCompany(id); err != nil {
		return err
	}
	return uc.companyRepo.Delete(userID, id)
}

// BulkDelete exclui em lote, continuando após falhas individuais.
func (uc *CompanyUseCase) BulkDelete(userID string, in dto.BulkDeleteRequest) *dto.BatchReport {
	report := batch.Run(in.IDs,
		func(id string) string { return id },
		func(id string) error { return uc.Delete(userID, id) })
	return batchToDTO(report)
}

// AddPhone adiciona um telefone a uma empresa do usuário.
func (uc *CompanyUseCase) AddPhone(userID, companyID string, in dto.CreatePhoneRequest) (*dto.PhoneResponse, error) {
	company, err := uc.companyRepo.GetByID(userID, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	phone := &entity.Phone{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Numero:          in.Numero,
		Tipo:            tipoOuPadrao(in.Tipo),
		StatusValidacao: entity.PhoneStatusPendente,
		WhatsApp:        in.WhatsApp,
		CreatedAt:       time.Now(),
	}
	if err := uc.phoneRepo.Create(phone); err != nil {
		return nil, err
	}
	return toPhoneResponse(phone), nil
}

// UpdatePhone edita o status de validação/whatsapp de um telefone do usuário.
func (uc *CompanyUseCase) UpdatePhone(userID, phoneID string, in dto.UpdatePhoneRequest) (*dto.PhoneResponse, error) {
	phone, err := uc.ownedPhone(userID, phoneID)
	if err != nil {
		return nil, err
	}
	if in.StatusValidacao != "" {
		phone.StatusValidacao = in.StatusValidacao
	}
	if in.WhatsApp != nil {
		phone.WhatsApp = *in.WhatsApp
	}
	if err := uc.phoneRepo.Update(phone); err != nil {
		return nil, err
	}
	return toPhoneResponse(phone), nil
}

// DeletePhone exclui um telefone de uma empresa do usuário.
func (uc *CompanyUseCase) DeletePhone(userID, phoneID string) error {
	if _, err := uc.ownedPhone(userID, phoneID); err != nil {
		return err
	}
	return uc.phoneRepo.Delete(phoneID)
}

// ownedPhone carrega o telefone e confere que a empresa pertence ao usuário.
func (uc *CompanyUseCase) ownedPhone(userID, phoneID string) (*entity.Phone, error) {
	phone, err := uc.phoneRepo.GetByID(phoneID)
	if err != nil {
		return nil, err
	}
	if phone == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(userID, phone.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return phone, nil
}

func tipoOuPadrao(tipo string) string {
	if tipo == "" {
		return entity.PhoneTipoFixo
	}
	return tipo
}

func toPhoneResponse(p *entity.Phone) *dto.PhoneResponse {
	return &dto.PhoneResponse{
		ID:              p.ID,
		CompanyID:       p.CompanyID,
		Numero:          p.Numero,
		Tipo:            p.Tipo,
		StatusValidacao: p.StatusValidacao,
		WhatsApp:        p.WhatsApp,
	}
}

func toCompanyResponse(c *entity.Company, phones []*entity.Phone) *dto.CompanyResponse {
	resp := &dto.CompanyResponse{
		ID:            c.ID,
		Nome:          c.Nome,
		CNPJ:          c.CNPJ,
		CNAE:          c.CNAE,
		CNAEDescricao: c.CNAEDescricao,
		Cidade:        c.Cidade,
		UF:            c.UF,
		Endereco:      c.Endereco,
		CEP:           c.CEP,
		Website:       c.Website,
		Email:         c.Email,
		Instagram:     c.Instagram,
		Facebook:      c.Facebook,
		LinkedIn:      c.LinkedIn,
		ResumoIA:      c.ResumoIA,

		EnriquecidaEm:      c.EnriquecidaEm,
		CRMStageID:         c.CRMStageID,
		ValorNegocio:       c.ValorNegocio,
		PrevisaoFechamento: c.PrevisaoFechamento,

		Telefones: make([]dto.PhoneResponse, 0, len(phones)),
		CreatedAt: c.CreatedAt,
	}
	for _, p := range phones {
		resp.Telefones = append(resp.Telefones, *toPhoneResponse(p))
	}
	return resp
}

func batchToDTO(r batch.Report) *dto.BatchReport {
	out := &dto.BatchReport{
		Total:    r.Total,
		Sucessos: r.Sucessos,
		Falhas:   r.Falhas,
		Itens:    make([]dto.BatchItemResult, 0, len(r.Itens)),
	}
	for _, i := range r.Itens {
		out.Itens = append(out.Itens, dto.BatchItemResult{
			ID:      i.ID,
			Sucesso: i.Sucesso,
			Erro:    i.Erro,
		})
	}
	return out
}
