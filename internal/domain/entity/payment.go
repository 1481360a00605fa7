package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de um pagamento PIX.
const (
	PixStatusPendente  = "pendente"
	PixStatusPago      = "pago"
	PixStatusExpirado  = "expirado"
	PixStatusCancelado = "cancelado"
)

// PixPayment representa uma cobrança PIX criada no provedor de pagamentos.
// Creditado impede crédito duplo quando o status "pago" é observado mais de uma vez.
type PixPayment struct {
	ID           string
	UserID       string
	PackageID    string
	ProviderID   string // id da cobrança no provedor
	BRCode       string // PIX copia-e-cola
	QRCodeBase64 string
	Valor        decimal.Decimal
	Creditos     int
	Status       string // pendente, pago, expirado, cancelado
	Creditado    bool
	ExpiraEm     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Expirado indica se a cobrança já passou do prazo de pagamento.
func (p *PixPayment) Expirado(now time.Time) bool {
	return now.After(p.ExpiraEm)
}
