package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PhoneResult telefone dentro de um resultado de busca ou importação.
type PhoneResult struct {
	Numero   string `json:"numero"`
	Tipo     string `json:"tipo,omitempty"` // celular, fixo
	WhatsApp bool   `json:"whatsapp,omitempty"`
}

// CompanyResult é o formato comum de resultado de busca de empresa,
// devolvido por todos os provedores depois da normalização.
type CompanyResult struct {
	Nome          string        `json:"nome"`
	CNPJ          string        `json:"cnpj,omitempty"`
	CNAE          string        `json:"cnae,omitempty"`
	CNAEDescricao string        `json:"cnae_descricao,omitempty"`
	Cidade        string        `json:"cidade,omitempty"`
	UF            string        `json:"uf,omitempty"`
	Endereco      string        `json:"endereco,omitempty"`
	CEP           string        `json:"cep,omitempty"`
	Telefones     []PhoneResult `json:"telefones,omitempty"`
	Website       string        `json:"website,omitempty"`
	Email         string        `json:"email,omitempty"`
}

// ImportRequest lote de resultados de busca a importar (1 crédito por empresa).
type ImportRequest struct {
	Empresas []CompanyResult `json:"empresas" validate:"required,min=1"`
}

// PhoneResponse saída de um telefone persistido.
type PhoneResponse struct {
	ID              string `json:"id"`
	CompanyID       string `json:"company_id"`
	Numero          string `json:"numero"`
	Tipo            string `json:"tipo"`
	StatusValidacao string `json:"status_validacao"`
	WhatsApp        bool   `json:"whatsapp"`
}

// CompanyResponse saída de uma empresa com telefones aninhados.
type CompanyResponse struct {
	ID            string  `json:"id"`
	Nome          string  `json:"nome"`
	CNPJ          string  `json:"cnpj,omitempty"`
	CNAE          string  `json:"cnae,omitempty"`
	CNAEDescricao string  `json:"cnae_descricao,omitempty"`
	Cidade        string  `json:"cidade,omitempty"`
	UF            string  `json:"uf,omitempty"`
	Endereco      string  `json:"endereco,omitempty"`
	CEP           string  `json:"cep,omitempty"`
	Website       *string `json:"website,omitempty"`
	Email         *string `json:"email,omitempty"`
	Instagram     *string `json:"instagram,omitempty"`
	Facebook      *string `json:"facebook,omitempty"`
	LinkedIn      *string `json:"linkedin,omitempty"`
	ResumoIA      *string `json:"resumo_ia,omitempty"`

	EnriquecidaEm      *time.Time       `json:"enriquecida_em,omitempty"`
	CRMStageID         *string          `json:"crm_stage_id,omitempty"`
	ValorNegocio       *decimal.Decimal `json:"valor_negocio,omitempty"`
	PrevisaoFechamento *time.Time       `json:"previsao_fechamento,omitempty"`

	Telefones []PhoneResponse `json:"telefones"`
	CreatedAt time.Time       `json:"created_at"`
}

// ListCompaniesRequest filtros da listagem de empresas.
type ListCompaniesRequest struct {
	PageRequest
	StageID     string `query:"stage_id"`     // "" ignora; "null" filtra sem etapa
	Cidade      string `query:"cidade"`
	UF          string `query:"uf"`
	Enriquecida string `query:"enriquecida"` // "", "true", "false"
	Busca       string `query:"busca"`
}

// UpdateCompanyRequest edição de campos da empresa (CRM incluído).
type UpdateCompanyRequest struct {
	Nome               *string          `json:"nome"`
	Cidade             *string          `json:"cidade"`
	UF                 *string          `json:"uf"`
	Endereco           *string          `json:"endereco"`
	Website            *string          `json:"website"`
	Email              *string          `json:"email"`
	ValorNegocio       *decimal.Decimal `json:"valor_negocio"`
	PrevisaoFechamento *time.Time       `json:"previsao_fechamento"`
}

// CreatePhoneRequest novo telefone para uma empresa.
type CreatePhoneRequest struct {
	Numero   string `json:"numero" validate:"required"`
	Tipo     string `json:"tipo" validate:"omitempty,oneof=celular fixo"`
	WhatsApp bool   `json:"whatsapp"`
}

// UpdatePhoneRequest edição de telefone (status de validação).
type UpdatePhoneRequest struct {
	StatusValidacao string `json:"status_validacao" validate:"omitempty,oneof=pendente valido invalido incerto"`
	WhatsApp        *bool  `json:"whatsapp"`
}

// BulkDeleteRequest ids a excluir em lote.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}
