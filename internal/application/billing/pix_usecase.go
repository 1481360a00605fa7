// Package billing implementa a compra de créditos via PIX: criação da
// cobrança no provedor, confirmação idempotente e o watcher de status.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/ports"
	"github.com/acheileads/achei-leads-api/internal/domain"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

// PaymentTxRunner contrato de transação da confirmação: marcar pago + lançar
// compra + somar saldo, tudo ou nada. Implementado pela infraestrutura.
type PaymentTxRunner interface {
	RunPayment(ctx context.Context, fn func(
		creditRepo repository.CreditRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// PixUseCase criação e confirmação de cobranças PIX.
type PixUseCase struct {
	paymentRepo repository.PaymentRepository
	packageRepo repository.CreditPackageRepository
	provider    ports.PaymentProvider
	txRunner    PaymentTxRunner
}

// NewPixUseCase constrói o caso de uso com as portas de saída.
func NewPixUseCase(
	paymentRepo repository.PaymentRepository,
	packageRepo repository.CreditPackageRepository,
	provider ports.PaymentProvider,
	txRunner PaymentTxRunner,
) *PixUseCase {
	return &PixUseCase{
		paymentRepo: paymentRepo,
		packageRepo: packageRepo,
		provider:    provider,
		txRunner:    txRunner,
	}
}

// CreateCharge cria a cobrança no provedor e persiste a intenção de pagamento
// com status pendente e validade de 1 hora.
func (uc *PixUseCase) CreateCharge(ctx context.Context, userID string, in dto.CreatePixRequest) (*dto.PixPaymentResponse, error) {
	pkg, err := uc.packageRepo.GetByID(in.PackageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil || !pkg.Ativo {
		return nil, domain.ErrNotFound
	}

	paymentID := uuid.New().String()
	descricao := fmt.Sprintf("Achei Leads - %s (%d créditos)", pkg.Nome, pkg.Creditos)
	charge, err := uc.provider.CreateCharge(ctx, pkg.Preco, descricao, paymentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payment := &entity.PixPayment{
		ID:           paymentID,
		UserID:       userID,
		PackageID:    pkg.ID,
		ProviderID:   charge.ProviderID,
		BRCode:       charge.BRCode,
		QRCodeBase64: charge.QRCodeBase64,
		Valor:        pkg.Preco,
		Creditos:     pkg.Creditos,
		Status:       entity.PixStatusPendente,
		ExpiraEm:     charge.ExpiraEm,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.paymentRepo.Create(payment); err != nil {
		return nil, err
	}
	return toPixResponse(payment), nil
}

// CheckStatus consulta o provedor e, se a cobrança foi paga e ainda não
// creditada, credita os créditos em uma transação. A flag creditado torna a
// operação idempotente: observar "pago" mais de uma vez nunca credita duas vezes.
func (uc *PixUseCase) CheckStatus(ctx context.Context, userID, paymentID string) (*dto.PixPaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(userID, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}

	// Estados terminais não voltam ao provedor.
	if payment.Status == entity.PixStatusPago || payment.Status == entity.PixStatusCancelado {
		return toPixResponse(payment), nil
	}

	if payment.Expirado(time.Now()) {
		if payment.Status != entity.PixStatusExpirado {
			payment.Status = entity.PixStatusExpirado
			payment.UpdatedAt = time.Now()
			if err := uc.paymentRepo.Update(payment); err != nil {
				return nil, err
			}
		}
		return toPixResponse(payment), domain.ErrPaymentExpired
	}

	status, err := uc.provider.GetChargeStatus(ctx, payment.ProviderID)
	if err != nil {
		return nil, err
	}

	switch status {
	case ports.ChargePaid:
		if err := uc.confirm(ctx, payment); err != nil {
			return nil, err
		}
	case ports.ChargeExpired:
		payment.Status = entity.PixStatusExpirado
		payment.UpdatedAt = time.Now()
		if err := uc.paymentRepo.Update(payment); err != nil {
			return nil, err
		}
	}
	return toPixResponse(payment), nil
}

// confirm marca a cobrança como paga e credita o pacote, tudo na mesma
// transação. A releitura dentro da transação fecha a janela entre duas
// confirmações concorrentes.
func (uc *PixUseCase) confirm(ctx context.Context, payment *entity.PixPayment) error {
	err := uc.txRunner.RunPayment(ctx, func(
		creditRepo repository.CreditRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		current, err := paymentRepo.GetByID(payment.UserID, payment.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if current.Creditado {
			// Já creditado por outra confirmação; nada a fazer.
			*payment = *current
			return nil
		}

		current.Status = entity.PixStatusPago
		current.Creditado = true
		current.UpdatedAt = time.Now()
		if err := paymentRepo.Update(current); err != nil {
			return err
		}
		if err := creditRepo.AdjustBalance(current.UserID, current.Creditos); err != nil {
			return err
		}
		if err := creditRepo.AddTransaction(&entity.CreditTransaction{
			ID:         uuid.New().String(),
			UserID:     current.UserID,
			Tipo:       entity.CreditTipoCompra,
			Quantidade: current.Creditos,
			Descricao:  fmt.Sprintf("Compra de %d créditos via PIX", current.Creditos),
			Referencia: current.ID,
			CreatedAt:  time.Now(),
		}); err != nil {
			return err
		}
		*payment = *current
		return nil
	})
	return err
}

// GetPayment devolve uma cobrança do usuário.
func (uc *PixUseCase) GetPayment(userID, paymentID string) (*dto.PixPaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(userID, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	return toPixResponse(payment), nil
}

func toPixResponse(p *entity.PixPayment) *dto.PixPaymentResponse {
	return &dto.PixPaymentResponse{
		ID:           p.ID,
		Status:       p.Status,
		BRCode:       p.BRCode,
		QRCodeBase64: p.QRCodeBase64,
		Valor:        p.Valor,
		Creditos:     p.Creditos,
		ExpiraEm:     p.ExpiraEm,
	}
}
