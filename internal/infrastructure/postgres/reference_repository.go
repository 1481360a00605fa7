package postgres

import (
	"context"
	"fmt"

	"github.com/acheileads/achei-leads-api/internal/domain/entity"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// ReferenceRepo implementação de ReferenceRepository (tabelas cnaes e municipios).
type ReferenceRepo struct {
	q Querier
}

// NewReferenceRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewReferenceRepository(q Querier) *ReferenceRepo {
	return &ReferenceRepo{q: q}
}

// ListCNAEs lista a tabela de CNAEs por código.
func (r *ReferenceRepo) ListCNAEs() ([]*entity.CNAE, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT codigo, descricao FROM cnaes ORDER BY codigo`)
	if err != nil {
		return nil, fmt.Errorf("list cnaes: %w", err)
	}
	defer rows.Close()

	var list []*entity.CNAE
	for rows.Next() {
		var c entity.CNAE
		if err := rows.Scan(&c.Codigo, &c.Descricao); err != nil {
			return nil, fmt.Errorf("scan cnae: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListMunicipios lista os municípios, opcionalmente filtrados por UF.
func (r *ReferenceRepo) ListMunicipios(uf string) ([]*entity.Municipio, error) {
	query := `SELECT codigo_ibge, nome, uf FROM municipios`
	args := []any{}
	if uf != "" {
		query += ` WHERE uf = $1`
		args = append(args, uf)
	}
	query += ` ORDER BY nome`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list municipios: %w", err)
	}
	defer rows.Close()

	var list []*entity.Municipio
	for rows.Next() {
		var m entity.Municipio
		if err := rows.Scan(&m.CodigoIBGE, &m.Nome, &m.UF); err != nil {
			return nil, fmt.Errorf("scan municipio: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// UpsertCNAE insere ou atualiza um CNAE pelo código (seeder).
func (r *ReferenceRepo) UpsertCNAE(c *entity.CNAE) error {
	query := `
		INSERT INTO cnaes (codigo, descricao) VALUES ($1, $2)
		ON CONFLICT (codigo) DO UPDATE SET descricao = $2`
	if _, err := r.q.Exec(context.Background(), query, c.Codigo, c.Descricao); err != nil {
		return fmt.Errorf("upsert cnae: %w", err)
	}
	return nil
}

// UpsertMunicipio insere ou atualiza um município pelo código IBGE (seeder).
func (r *ReferenceRepo) UpsertMunicipio(m *entity.Municipio) error {
	query := `
		INSERT INTO municipios (codigo_ibge, nome, uf) VALUES ($1, $2, $3)
		ON CONFLICT (codigo_ibge) DO UPDATE SET nome = $2, uf = $3`
	if _, err := r.q.Exec(context.Background(), query, m.CodigoIBGE, m.Nome, m.UF); err != nil {
		return fmt.Errorf("upsert municipio: %w", err)
	}
	return nil
}
