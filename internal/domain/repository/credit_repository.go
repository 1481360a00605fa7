package repository

import "github.com/acheileads/achei-leads-api/internal/domain/entity"

// CreditRepository define a porta de persistência do extrato e do saldo de créditos.
// Saldo e lançamento andam sempre juntos: o use case compõe GetBalanceForUpdate +
// AddTransaction + AdjustBalance dentro de uma transação via TxRunner.
type CreditRepository interface {
	// GetBalance devolve o saldo corrente (0 se o usuário ainda não tem linha).
	GetBalance(userID string) (int, error)
	// GetBalanceForUpdate lê o saldo com lock de linha (SELECT ... FOR UPDATE).
	// Só faz sentido dentro de uma transação.
	GetBalanceForUpdate(userID string) (int, error)
	// AdjustBalance soma delta ao saldo (cria a linha se não existir).
	AdjustBalance(userID string, delta int) error
	AddTransaction(tx *entity.CreditTransaction) error
	ListTransactions(userID string, limit, offset int) ([]*entity.CreditTransaction, error)
}

// CreditPackageRepository define a porta de leitura dos pacotes de créditos à venda.
type CreditPackageRepository interface {
	ListActive() ([]*entity.CreditPackage, error)
	GetByID(id string) (*entity.CreditPackage, error)
	// Upsert insere ou atualiza pelo nome (usado pelo seeder).
	Upsert(pkg *entity.CreditPackage) error
}
