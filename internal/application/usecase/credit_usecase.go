package usecase

import (
	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

// CreditUseCase consultas de saldo, extrato e pacotes de créditos.
// Toda mutação de saldo acontece nos fluxos de importação, enriquecimento e
// pagamento; aqui é só leitura.
type CreditUseCase struct {
	creditRepo  repository.CreditRepository
	packageRepo repository.CreditPackageRepository
}

// NewCreditUseCase constrói o caso de uso com os ports de persistência.
func NewCreditUseCase(creditRepo repository.CreditRepository, packageRepo repository.CreditPackageRepository) *CreditUseCase {
	return &CreditUseCase{creditRepo: creditRepo, packageRepo: packageRepo}
}

// Balance devolve o saldo corrente do usuário.
func (uc *CreditUseCase) Balance(userID string) (*dto.BalanceResponse, error) {
	saldo, err := uc.creditRepo.GetBalance(userID)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{Saldo: saldo}, nil
}

// Transactions lista o extrato do usuário, mais recentes primeiro.
func (uc *CreditUseCase) Transactions(userID string, page dto.PageRequest) ([]dto.TransactionResponse, *dto.PageResponse, error) {
	page.DefaultPage()
	list, err := uc.creditRepo.ListTransactions(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.TransactionResponse{
			ID:         t.ID,
			Tipo:       t.Tipo,
			Quantidade: t.Quantidade,
			Descricao:  t.Descricao,
			Referencia: t.Referencia,
			CreatedAt:  t.CreatedAt,
		})
	}
	return out, &dto.PageResponse{Limit: page.Limit, Offset: page.Offset}, nil
}

// Packages lista os pacotes de créditos ativos.
func (uc *CreditUseCase) Packages() ([]dto.PackageResponse, error) {
	list, err := uc.packageRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PackageResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPackageResponse(p))
	}
	return out, nil
}

func toPackageResponse(p *entity.CreditPackage) dto.PackageResponse {
	return dto.PackageResponse{
		ID:       p.ID,
		Nome:     p.Nome,
		Creditos: p.Creditos,
		Preco:    p.Preco,
	}
}
