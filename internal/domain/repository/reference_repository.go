package repository

import "github.com/acheileads/achei-leads-api/internal/domain/entity"

// ReferenceRepository define a porta de leitura/carga das tabelas de referência
// (CNAEs e municípios do IBGE), populadas pelo cmd/seed.
type ReferenceRepository interface {
	ListCNAEs() ([]*entity.CNAE, error)
	ListMunicipios(uf string) ([]*entity.Municipio, error)
	UpsertCNAE(c *entity.CNAE) error
	UpsertMunicipio(m *entity.Municipio) error
}
