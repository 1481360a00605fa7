package entity

import "time"

// Canais de mensagem.
const (
	CanalWhatsApp = "whatsapp"
	CanalSMS      = "sms"
	CanalEmail    = "email"
)

// Status de envio.
const (
	MensagemEnviada = "enviado"
	MensagemFalha   = "falha"
)

// MessageTemplate é um modelo de mensagem reutilizável com placeholders
// no formato {{nome}}, {{cidade}}, {{cnae_descricao}} etc.
type MessageTemplate struct {
	ID        string
	UserID    string
	Nome      string
	Canal     string // whatsapp, sms, email
	Corpo     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MessageHistory é o log de envio: uma linha por telefone/canal/status.
type MessageHistory struct {
	ID        string
	UserID    string
	CompanyID string
	PhoneID   string
	Canal     string
	Corpo     string // mensagem já renderizada
	Status    string // enviado, falha
	EnviadoEm time.Time
}
