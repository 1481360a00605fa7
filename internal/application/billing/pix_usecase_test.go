package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acheileads/achei-leads-api/internal/application/billing"
	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/ports"
	"github.com/acheileads/achei-leads-api/internal/domain"
	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

const pixTestUser = "00000000-0000-0000-0000-000000000006"

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakePaymentRepo struct {
	payments map[string]*entity.PixPayment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*entity.PixPayment)}
}

func (r *fakePaymentRepo) Create(p *entity.PixPayment) error {
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(userID, id string) (*entity.PixPayment, error) {
	p, ok := r.payments[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) Update(p *entity.PixPayment) error {
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) ListPending() ([]*entity.PixPayment, error) {
	var list []*entity.PixPayment
	now := time.Now()
	for _, p := range r.payments {
		if p.Status == entity.PixStatusPendente && p.ExpiraEm.After(now) {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

type fakePackageRepo struct {
	pkg *entity.CreditPackage
}

func (r *fakePackageRepo) ListActive() ([]*entity.CreditPackage, error) {
	return []*entity.CreditPackage{r.pkg}, nil
}

func (r *fakePackageRepo) GetByID(id string) (*entity.CreditPackage, error) {
	if r.pkg != nil && r.pkg.ID == id {
		return r.pkg, nil
	}
	return nil, nil
}

func (r *fakePackageRepo) Upsert(*entity.CreditPackage) error { return nil }

type fakePixProvider struct {
	status      string
	statusCalls int
}

func (p *fakePixProvider) CreateCharge(_ context.Context, valor decimal.Decimal, _, referencia string) (*ports.PixCharge, error) {
	return &ports.PixCharge{
		ProviderID:   "prov-" + referencia,
		BRCode:       "00020126brcode",
		QRCodeBase64: "aGVsbG8=",
		Valor:        valor,
		ExpiraEm:     time.Now().Add(time.Hour),
	}, nil
}

func (p *fakePixProvider) GetChargeStatus(_ context.Context, _ string) (string, error) {
	p.statusCalls++
	return p.status, nil
}

type fakeCreditLedger struct {
	saldos map[string]int
	txs    []*entity.CreditTransaction
}

func (r *fakeCreditLedger) GetBalance(userID string) (int, error) { return r.saldos[userID], nil }
func (r *fakeCreditLedger) GetBalanceForUpdate(userID string) (int, error) {
	return r.saldos[userID], nil
}
func (r *fakeCreditLedger) AdjustBalance(userID string, delta int) error {
	r.saldos[userID] += delta
	return nil
}
func (r *fakeCreditLedger) AddTransaction(tx *entity.CreditTransaction) error {
	cp := *tx
	r.txs = append(r.txs, &cp)
	return nil
}
func (r *fakeCreditLedger) ListTransactions(string, int, int) ([]*entity.CreditTransaction, error) {
	return r.txs, nil
}

type fakePaymentTxRunner struct {
	creditRepo  *fakeCreditLedger
	paymentRepo *fakePaymentRepo
}

func (r *fakePaymentTxRunner) RunPayment(_ context.Context, fn func(
	creditRepo repository.CreditRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	return fn(r.creditRepo, r.paymentRepo)
}

// ── Cenário ───────────────────────────────────────────────────────────────────

func buildPixScenario() (*billing.PixUseCase, *fakePaymentRepo, *fakeCreditLedger, *fakePixProvider, *entity.CreditPackage) {
	pkg := &entity.CreditPackage{
		ID:       uuid.New().String(),
		Nome:     "Profissional",
		Creditos: 200,
		Preco:    decimal.RequireFromString("99.90"),
		Ativo:    true,
	}
	paymentRepo := newFakePaymentRepo()
	creditRepo := &fakeCreditLedger{saldos: make(map[string]int)}
	provider := &fakePixProvider{status: ports.ChargePending}
	runner := &fakePaymentTxRunner{creditRepo: creditRepo, paymentRepo: paymentRepo}
	uc := billing.NewPixUseCase(paymentRepo, &fakePackageRepo{pkg: pkg}, provider, runner)
	return uc, paymentRepo, creditRepo, provider, pkg
}

// ── Testes PixUseCase ─────────────────────────────────────────────────────────

func TestCreateCharge_PersistePendente(t *testing.T) {
	uc, paymentRepo, _, _, pkg := buildPixScenario()

	resp, err := uc.CreateCharge(context.Background(), pixTestUser, dto.CreatePixRequest{PackageID: pkg.ID})
	require.NoError(t, err)

	assert.Equal(t, entity.PixStatusPendente, resp.Status)
	assert.NotEmpty(t, resp.BRCode)
	assert.Equal(t, 200, resp.Creditos)
	assert.True(t, resp.Valor.Equal(pkg.Preco))

	stored := paymentRepo.payments[resp.ID]
	require.NotNil(t, stored)
	assert.False(t, stored.Creditado)
}

func TestCreateCharge_PacoteInexistente(t *testing.T) {
	uc, _, _, _, _ := buildPixScenario()

	_, err := uc.CreateCharge(context.Background(), pixTestUser, dto.CreatePixRequest{PackageID: uuid.New().String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckStatus_PagoCreditaUmaVez(t *testing.T) {
	uc, _, creditRepo, provider, pkg := buildPixScenario()

	created, err := uc.CreateCharge(context.Background(), pixTestUser, dto.CreatePixRequest{PackageID: pkg.ID})
	require.NoError(t, err)

	provider.status = ports.ChargePaid
	resp, err := uc.CheckStatus(context.Background(), pixTestUser, created.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.PixStatusPago, resp.Status)
	assert.Equal(t, 200, creditRepo.saldos[pixTestUser])
	require.Len(t, creditRepo.txs, 1)
	assert.Equal(t, entity.CreditTipoCompra, creditRepo.txs[0].Tipo)

	// Segunda consulta de um pagamento já pago: estado terminal, sem nova
	// chamada ao provedor e sem crédito duplo.
	calls := provider.statusCalls
	resp, err = uc.CheckStatus(context.Background(), pixTestUser, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PixStatusPago, resp.Status)
	assert.Equal(t, calls, provider.statusCalls)
	assert.Equal(t, 200, creditRepo.saldos[pixTestUser], "creditar de novo seria crédito duplo")
}

func TestCheckStatus_ExpiradaLocalmente(t *testing.T) {
	uc, paymentRepo, _, provider, pkg := buildPixScenario()

	created, err := uc.CreateCharge(context.Background(), pixTestUser, dto.CreatePixRequest{PackageID: pkg.ID})
	require.NoError(t, err)

	// Força a expiração local: o provedor nem é consultado.
	stored := paymentRepo.payments[created.ID]
	stored.ExpiraEm = time.Now().Add(-time.Minute)

	resp, err := uc.CheckStatus(context.Background(), pixTestUser, created.ID)
	require.ErrorIs(t, err, domain.ErrPaymentExpired)
	assert.Equal(t, entity.PixStatusExpirado, resp.Status)
	assert.Equal(t, 0, provider.statusCalls)
}

// ── Testes Watcher ────────────────────────────────────────────────────────────

func buildWatcher() (*billing.Watcher, *fakePaymentRepo, *billing.PixUseCase, *entity.CreditPackage) {
	uc, paymentRepo, _, _, pkg := buildPixScenario()
	w := billing.NewWatcher(uc, paymentRepo, zerolog.Nop())
	return w, paymentRepo, uc, pkg
}

func TestWatcher_StartStopIsActive(t *testing.T) {
	w, _, _, _ := buildWatcher()
	expira := time.Now().Add(time.Hour)

	w.Start(pixTestUser, "pay-1", expira)
	assert.True(t, w.IsActive("pay-1"))

	// Start repetido para a mesma cobrança é ignorado.
	w.Start(pixTestUser, "pay-1", expira)

	w.Stop("pay-1")
	// O loop remove a si mesmo após o sinal de parada.
	assert.Eventually(t, func() bool { return !w.IsActive("pay-1") },
		time.Second, 10*time.Millisecond)
}

func TestWatcher_StopAllEncerraTudo(t *testing.T) {
	w, _, _, _ := buildWatcher()
	expira := time.Now().Add(time.Hour)

	w.Start(pixTestUser, "pay-1", expira)
	w.Start(pixTestUser, "pay-2", expira)

	w.StopAll()

	assert.False(t, w.IsActive("pay-1"))
	assert.False(t, w.IsActive("pay-2"))
}

func TestWatcher_ResumePendingRetomaCobrancas(t *testing.T) {
	w, paymentRepo, uc, pkg := buildWatcher()

	created, err := uc.CreateCharge(context.Background(), pixTestUser, dto.CreatePixRequest{PackageID: pkg.ID})
	require.NoError(t, err)

	// Uma cobrança já expirada não deve ser retomada.
	expirada := &entity.PixPayment{
		ID:       "pay-velha",
		UserID:   pixTestUser,
		Status:   entity.PixStatusPendente,
		ExpiraEm: time.Now().Add(-time.Hour),
	}
	require.NoError(t, paymentRepo.Create(expirada))

	require.NoError(t, w.ResumePending())
	defer w.StopAll()

	assert.True(t, w.IsActive(created.ID))
	assert.False(t, w.IsActive("pay-velha"))
}
