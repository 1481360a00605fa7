package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PixCharge é a cobrança criada no provedor de pagamentos.
type PixCharge struct {
	ProviderID   string
	BRCode       string // copia-e-cola
	QRCodeBase64 string
	Valor        decimal.Decimal
	ExpiraEm     time.Time
}

// Status normalizado da cobrança no provedor.
const (
	ChargePending = "pendente"
	ChargePaid    = "pago"
	ChargeExpired = "expirado"
)

// PaymentProvider define a porta de saída para o provedor PIX (AbacatePay ou compatível).
type PaymentProvider interface {
	CreateCharge(ctx context.Context, valor decimal.Decimal, descricao, referencia string) (*PixCharge, error)
	// GetChargeStatus devolve um dos status normalizados acima.
	GetChargeStatus(ctx context.Context, providerID string) (string, error)
}
