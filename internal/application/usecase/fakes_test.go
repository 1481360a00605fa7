package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

// Fakes em memória dos ports de persistência. Cada fake implementa a
// interface completa; os testes usam só o que precisam.

// ── CompanyRepository ─────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(userID, id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) List(userID string, f repository.CompanyFilter) ([]*entity.Company, int, error) {
	var list []*entity.Company
	for _, c := range r.companies {
		if c.UserID != userID {
			continue
		}
		if len(f.IDs) > 0 && !contains(f.IDs, c.ID) {
			continue
		}
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nome < list[j].Nome })
	return list, len(list), nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) Delete(userID, id string) error {
	delete(r.companies, id)
	return nil
}

func (r *fakeCompanyRepo) ExistsByCNPJ(userID, cnpj string) (bool, error) {
	for _, c := range r.companies {
		if c.UserID == userID && cnpj != "" && c.CNPJ == cnpj {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCompanyRepo) SetStage(userID, companyID string, stageID *string) error {
	if c, ok := r.companies[companyID]; ok && c.UserID == userID {
		c.CRMStageID = stageID
	}
	return nil
}

func (r *fakeCompanyRepo) ReassignStageToNull(userID, stageID string) error {
	for _, c := range r.companies {
		if c.UserID == userID && c.CRMStageID != nil && *c.CRMStageID == stageID {
			c.CRMStageID = nil
		}
	}
	return nil
}

func (r *fakeCompanyRepo) StageAggregates(userID string) ([]repository.StageAggregate, error) {
	byStage := make(map[string]*repository.StageAggregate)
	var aggs []*repository.StageAggregate
	for _, c := range r.companies {
		if c.UserID != userID {
			continue
		}
		key := ""
		if c.CRMStageID != nil {
			key = *c.CRMStageID
		}
		agg, ok := byStage[key]
		if !ok {
			agg = &repository.StageAggregate{StageID: c.CRMStageID, ValorTotal: decimal.Zero}
			byStage[key] = agg
			aggs = append(aggs, agg)
		}
		agg.Count++
		if c.ValorNegocio != nil {
			agg.ValorTotal = agg.ValorTotal.Add(*c.ValorNegocio)
		}
	}
	out := make([]repository.StageAggregate, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, *a)
	}
	return out, nil
}

// ── PhoneRepository ───────────────────────────────────────────────────────────

type fakePhoneRepo struct {
	phones map[string]*entity.Phone
}

func newFakePhoneRepo() *fakePhoneRepo {
	return &fakePhoneRepo{phones: make(map[string]*entity.Phone)}
}

func (r *fakePhoneRepo) Create(p *entity.Phone) error {
	cp := *p
	r.phones[p.ID] = &cp
	return nil
}

func (r *fakePhoneRepo) GetByID(id string) (*entity.Phone, error) {
	p, ok := r.phones[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePhoneRepo) ListByCompany(companyID string) ([]*entity.Phone, error) {
	var list []*entity.Phone
	for _, p := range r.phones {
		if p.CompanyID == companyID {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Numero < list[j].Numero })
	return list, nil
}

func (r *fakePhoneRepo) ListByCompanies(companyIDs []string) (map[string][]*entity.Phone, error) {
	out := make(map[string][]*entity.Phone)
	for _, id := range companyIDs {
		phones, _ := r.ListByCompany(id)
		if len(phones) > 0 {
			out[id] = phones
		}
	}
	return out, nil
}

func (r *fakePhoneRepo) Update(p *entity.Phone) error {
	cp := *p
	r.phones[p.ID] = &cp
	return nil
}

func (r *fakePhoneRepo) Delete(id string) error {
	delete(r.phones, id)
	return nil
}

func (r *fakePhoneRepo) DeleteByCompany(companyID string) error {
	for id, p := range r.phones {
		if p.CompanyID == companyID {
			delete(r.phones, id)
		}
	}
	return nil
}

// ── CreditRepository ──────────────────────────────────────────────────────────

type fakeCreditRepo struct {
	saldos map[string]int
	txs    []*entity.CreditTransaction
}

func newFakeCreditRepo() *fakeCreditRepo {
	return &fakeCreditRepo{saldos: make(map[string]int)}
}

func (r *fakeCreditRepo) GetBalance(userID string) (int, error) {
	return r.saldos[userID], nil
}

func (r *fakeCreditRepo) GetBalanceForUpdate(userID string) (int, error) {
	return r.saldos[userID], nil
}

func (r *fakeCreditRepo) AdjustBalance(userID string, delta int) error {
	r.saldos[userID] += delta
	return nil
}

func (r *fakeCreditRepo) AddTransaction(tx *entity.CreditTransaction) error {
	cp := *tx
	r.txs = append(r.txs, &cp)
	return nil
}

func (r *fakeCreditRepo) ListTransactions(userID string, limit, offset int) ([]*entity.CreditTransaction, error) {
	var list []*entity.CreditTransaction
	for _, tx := range r.txs {
		if tx.UserID == userID {
			list = append(list, tx)
		}
	}
	return list, nil
}

// ── TxRunner de importação (sem transação real) ───────────────────────────────

type fakeImportTxRunner struct {
	creditRepo  *fakeCreditRepo
	companyRepo *fakeCompanyRepo
	phoneRepo   *fakePhoneRepo
}

func (r *fakeImportTxRunner) RunImport(_ context.Context, fn func(
	creditRepo repository.CreditRepository,
	companyRepo repository.CompanyRepository,
	phoneRepo repository.PhoneRepository,
) error) error {
	return fn(r.creditRepo, r.companyRepo, r.phoneRepo)
}

// ── StageRepository ───────────────────────────────────────────────────────────

type fakeStageRepo struct {
	stages map[string]*entity.PipelineStage
}

func newFakeStageRepo() *fakeStageRepo {
	return &fakeStageRepo{stages: make(map[string]*entity.PipelineStage)}
}

func (r *fakeStageRepo) Create(s *entity.PipelineStage) error {
	cp := *s
	r.stages[s.ID] = &cp
	return nil
}

func (r *fakeStageRepo) GetByID(userID, id string) (*entity.PipelineStage, error) {
	s, ok := r.stages[id]
	if !ok || s.UserID != userID {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStageRepo) ListByUser(userID string) ([]*entity.PipelineStage, error) {
	var list []*entity.PipelineStage
	for _, s := range r.stages {
		if s.UserID == userID {
			cp := *s
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Posicao < list[j].Posicao })
	return list, nil
}

func (r *fakeStageRepo) Update(s *entity.PipelineStage) error {
	cp := *s
	r.stages[s.ID] = &cp
	return nil
}

func (r *fakeStageRepo) UpdatePositions(userID string, orderedIDs []string) error {
	for i, id := range orderedIDs {
		if s, ok := r.stages[id]; ok && s.UserID == userID {
			s.Posicao = i
		}
	}
	return nil
}

func (r *fakeStageRepo) Delete(userID, id string) error {
	delete(r.stages, id)
	return nil
}

// ── ActivityRepository ────────────────────────────────────────────────────────

type fakeActivityRepo struct {
	activities map[string]*entity.CrmActivity
	history    []*entity.StageHistory
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: make(map[string]*entity.CrmActivity)}
}

func (r *fakeActivityRepo) Create(a *entity.CrmActivity) error {
	cp := *a
	r.activities[a.ID] = &cp
	return nil
}

func (r *fakeActivityRepo) GetByID(userID, id string) (*entity.CrmActivity, error) {
	a, ok := r.activities[id]
	if !ok || a.UserID != userID {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeActivityRepo) ListByCompany(userID, companyID string) ([]*entity.CrmActivity, error) {
	var list []*entity.CrmActivity
	for _, a := range r.activities {
		if a.UserID == userID && a.CompanyID == companyID {
			cp := *a
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeActivityRepo) ListPending(userID string) ([]*entity.CrmActivity, error) {
	var list []*entity.CrmActivity
	for _, a := range r.activities {
		if a.UserID == userID && !a.Concluida {
			cp := *a
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeActivityRepo) Update(a *entity.CrmActivity) error {
	cp := *a
	r.activities[a.ID] = &cp
	return nil
}

func (r *fakeActivityRepo) Delete(userID, id string) error {
	delete(r.activities, id)
	return nil
}

func (r *fakeActivityRepo) AddStageHistory(h *entity.StageHistory) error {
	cp := *h
	r.history = append(r.history, &cp)
	return nil
}

func (r *fakeActivityRepo) ListStageHistory(userID, companyID string) ([]*entity.StageHistory, error) {
	var list []*entity.StageHistory
	for _, h := range r.history {
		if h.UserID == userID && h.CompanyID == companyID {
			list = append(list, h)
		}
	}
	return list, nil
}

// ── MessageRepository ─────────────────────────────────────────────────────────

type fakeMessageRepo struct {
	templates map[string]*entity.MessageTemplate
	history   []*entity.MessageHistory
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{templates: make(map[string]*entity.MessageTemplate)}
}

func (r *fakeMessageRepo) CreateTemplate(t *entity.MessageTemplate) error {
	cp := *t
	r.templates[t.ID] = &cp
	return nil
}

func (r *fakeMessageRepo) GetTemplate(userID, id string) (*entity.MessageTemplate, error) {
	t, ok := r.templates[id]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeMessageRepo) ListTemplates(userID string) ([]*entity.MessageTemplate, error) {
	var list []*entity.MessageTemplate
	for _, t := range r.templates {
		if t.UserID == userID {
			cp := *t
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeMessageRepo) UpdateTemplate(t *entity.MessageTemplate) error {
	cp := *t
	r.templates[t.ID] = &cp
	return nil
}

func (r *fakeMessageRepo) DeleteTemplate(userID, id string) error {
	delete(r.templates, id)
	return nil
}

func (r *fakeMessageRepo) AddHistory(h *entity.MessageHistory) error {
	cp := *h
	r.history = append(r.history, &cp)
	return nil
}

func (r *fakeMessageRepo) ListHistory(userID, companyID string, limit, offset int) ([]*entity.MessageHistory, error) {
	var list []*entity.MessageHistory
	for _, h := range r.history {
		if h.UserID != userID {
			continue
		}
		if companyID != "" && h.CompanyID != companyID {
			continue
		}
		list = append(list, h)
	}
	return list, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func contains(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
