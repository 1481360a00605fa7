package billing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/acheileads/achei-leads-api/internal/domain"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

// Intervalo de consulta de status de uma cobrança pendente.
const watchInterval = 3 * time.Second

// Watcher acompanha cobranças PIX pendentes no servidor: uma goroutine por
// cobrança, consultando o status a cada 3 segundos até confirmação, expiração
// (limite de 1 hora da própria cobrança) ou Stop.
type Watcher struct {
	uc          *PixUseCase
	paymentRepo repository.PaymentRepository
	logger      zerolog.Logger

	mu     sync.Mutex
	active map[string]chan struct{} // payment id → canal de parada
	wg     sync.WaitGroup
}

// NewWatcher constrói o watcher.
func NewWatcher(uc *PixUseCase, paymentRepo repository.PaymentRepository, logger zerolog.Logger) *Watcher {
	return &Watcher{
		uc:          uc,
		paymentRepo: paymentRepo,
		logger:      logger,
		active:      make(map[string]chan struct{}),
	}
}

// Start começa a acompanhar uma cobrança. Chamada repetida para a mesma
// cobrança é ignorada.
func (w *Watcher) Start(userID, paymentID string, expiraEm time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.active[paymentID]; ok {
		return
	}
	stop := make(chan struct{})
	w.active[paymentID] = stop

	w.wg.Add(1)
	go w.watch(userID, paymentID, expiraEm, stop)
}

// Stop interrompe o acompanhamento de uma cobrança (fechamento do dialog).
func (w *Watcher) Stop(paymentID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if stop, ok := w.active[paymentID]; ok {
		close(stop)
		delete(w.active, paymentID)
	}
}

// IsActive indica se a cobrança está sendo acompanhada.
func (w *Watcher) IsActive(paymentID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.active[paymentID]
	return ok
}

// StopAll interrompe todos os acompanhamentos e espera as goroutines (shutdown).
func (w *Watcher) StopAll() {
	w.mu.Lock()
	for id, stop := range w.active {
		close(stop)
		delete(w.active, id)
	}
	w.mu.Unlock()
	w.wg.Wait()
}

// ResumePending retoma no boot o acompanhamento das cobranças pendentes não
// expiradas (o processo pode ter reiniciado com watchers no ar).
func (w *Watcher) ResumePending() error {
	pending, err := w.paymentRepo.ListPending()
	if err != nil {
		return err
	}
	for _, p := range pending {
		w.Start(p.UserID, p.ID, p.ExpiraEm)
	}
	if len(pending) > 0 {
		w.logger.Info().Int("cobrancas", len(pending)).Msg("watchers de PIX retomados")
	}
	return nil
}

// watch é o loop de uma cobrança: tick de 3s limitado pela expiração.
func (w *Watcher) watch(userID, paymentID string, expiraEm time.Time, stop <-chan struct{}) {
	defer w.wg.Done()
	defer w.remove(paymentID)

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	expiry := time.NewTimer(time.Until(expiraEm))
	defer expiry.Stop()

	for {
		select {
		case <-stop:
			return
		case <-expiry.C:
			w.markExpired(userID, paymentID)
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), watchInterval)
			resp, err := w.uc.CheckStatus(ctx, userID, paymentID)
			cancel()
			if err != nil {
				if errors.Is(err, domain.ErrPaymentExpired) {
					return
				}
				w.logger.Warn().Err(err).Str("payment_id", paymentID).Msg("consulta de status PIX falhou")
				continue
			}
			if resp.Status != entity.PixStatusPendente {
				return
			}
		}
	}
}

// markExpired marca a cobrança como expirada ao atingir o limite de 1 hora.
func (w *Watcher) markExpired(userID, paymentID string) {
	payment, err := w.paymentRepo.GetByID(userID, paymentID)
	if err != nil || payment == nil {
		return
	}
	if payment.Status != entity.PixStatusPendente {
		return
	}
	payment.Status = entity.PixStatusExpirado
	payment.UpdatedAt = time.Now()
	if err := w.paymentRepo.Update(payment); err != nil {
		w.logger.Warn().Err(err).Str("payment_id", paymentID).Msg("marcar cobrança expirada falhou")
	}
}

func (w *Watcher) remove(paymentID string) {
	w.mu.Lock()
	delete(w.active, paymentID)
	w.mu.Unlock()
}
