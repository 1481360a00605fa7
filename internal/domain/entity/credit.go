package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transação do extrato de créditos.
const (
	CreditTipoCompra  = "compra"
	CreditTipoConsumo = "consumo"
	CreditTipoBonus   = "bonus"
	CreditTipoEstorno = "estorno"
)

// CreditTransaction é um lançamento imutável do extrato de créditos.
// Quantidade é positiva para compra/bonus/estorno e negativa para consumo.
type CreditTransaction struct {
	ID         string
	UserID     string
	Tipo       string // compra, consumo, bonus, estorno
	Quantidade int
	Descricao  string
	Referencia string // id de empresa, pagamento etc. que originou o lançamento
	CreatedAt  time.Time
}

// UserCredits mantém o saldo corrente do usuário. Invariante: Saldo >= 0,
// garantido pela transação de consumo, nunca pelo cliente.
type UserCredits struct {
	UserID    string
	Saldo     int
	UpdatedAt time.Time
}

// CreditPackage é um pacote de créditos à venda (pago via PIX).
type CreditPackage struct {
	ID        string
	Nome      string
	Creditos  int
	Preco     decimal.Decimal // BRL
	Ativo     bool
	CreatedAt time.Time
}
