package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceResponse saldo corrente de créditos.
type BalanceResponse struct {
	Saldo int `json:"saldo"`
}

// TransactionResponse lançamento do extrato.
type TransactionResponse struct {
	ID         string    `json:"id"`
	Tipo       string    `json:"tipo"`
	Quantidade int       `json:"quantidade"`
	Descricao  string    `json:"descricao"`
	Referencia string    `json:"referencia,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PackageResponse pacote de créditos à venda.
type PackageResponse struct {
	ID       string          `json:"id"`
	Nome     string          `json:"nome"`
	Creditos int             `json:"creditos"`
	Preco    decimal.Decimal `json:"preco"`
}

// CreatePixRequest corpo de POST /api/payments/pix.
type CreatePixRequest struct {
	PackageID string `json:"package_id" validate:"required,uuid"`
}

// PixPaymentResponse cobrança PIX criada ou consultada.
type PixPaymentResponse struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	BRCode       string          `json:"brcode,omitempty"`
	QRCodeBase64 string          `json:"qrcode_base64,omitempty"`
	Valor        decimal.Decimal `json:"valor"`
	Creditos     int             `json:"creditos"`
	ExpiraEm     time.Time       `json:"expira_em"`
}
