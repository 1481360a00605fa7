package dto

import "time"

// CreateTemplateRequest novo template de mensagem.
type CreateTemplateRequest struct {
	Nome  string `json:"nome" validate:"required,max=100"`
	Canal string `json:"canal" validate:"required,oneof=whatsapp sms email"`
	Corpo string `json:"corpo" validate:"required"`
}

// UpdateTemplateRequest edição de template.
type UpdateTemplateRequest struct {
	Nome  string `json:"nome" validate:"omitempty,max=100"`
	Canal string `json:"canal" validate:"omitempty,oneof=whatsapp sms email"`
	Corpo string `json:"corpo"`
}

// TemplateResponse saída de um template.
type TemplateResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Canal string `json:"canal"`
	Corpo string `json:"corpo"`
}

// RenderRequest renderiza um template contra uma empresa.
type RenderRequest struct {
	TemplateID string `json:"template_id" validate:"required,uuid"`
	CompanyID  string `json:"company_id" validate:"required,uuid"`
}

// RenderResponse corpo renderizado com placeholders substituídos.
type RenderResponse struct {
	Corpo string `json:"corpo"`
}

// SendMessageRequest registra um envio para um telefone da empresa.
type SendMessageRequest struct {
	TemplateID string `json:"template_id" validate:"required,uuid"`
	CompanyID  string `json:"company_id" validate:"required,uuid"`
	PhoneID    string `json:"phone_id" validate:"required,uuid"`
}

// SendMessageResponse resultado do registro de envio.
// Link é o deep link wa.me quando o canal é whatsapp.
type SendMessageResponse struct {
	HistoryID string `json:"history_id"`
	Status    string `json:"status"`
	Link      string `json:"link,omitempty"`
}

// HistoryResponse linha do log de envio.
type HistoryResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	PhoneID   string    `json:"phone_id"`
	Canal     string    `json:"canal"`
	Corpo     string    `json:"corpo"`
	Status    string    `json:"status"`
	EnviadoEm time.Time `json:"enviado_em"`
}
