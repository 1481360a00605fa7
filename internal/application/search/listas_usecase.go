package search

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
	"github.com/acheileads/achei-leads-api/internal/application/ports"
	"github.com/acheileads/achei-leads-api/internal/domain/repository"
)

// TTL das listas de referência no Redis.
const listasTTL = 24 * time.Hour

// Chaves de cache das listas.
const (
	cacheKeyCNAEs      = "cnaes"
	cacheKeyMunicipios = "municipios:" // + UF
)

// ListasUseCase serve as listas de referência (CNAEs e municípios) com cache
// Redis de 24h e filtro insensível a acentos.
type ListasUseCase struct {
	refRepo repository.ReferenceRepository
	cache   ports.ReferenceCache
}

// NewListasUseCase constrói o caso de uso com o repo e o cache.
func NewListasUseCase(refRepo repository.ReferenceRepository, cache ports.ReferenceCache) *ListasUseCase {
	return &ListasUseCase{refRepo: refRepo, cache: cache}
}

// CNAEs devolve a lista de CNAEs, filtrada por código ou descrição.
func (uc *ListasUseCase) CNAEs(ctx context.Context, filtro string) ([]dto.CNAEItem, error) {
	var list []dto.CNAEItem
	if err := uc.cached(ctx, cacheKeyCNAEs, &list, func() (any, error) {
		cnaes, err := uc.refRepo.ListCNAEs()
		if err != nil {
			return nil, err
		}
		out := make([]dto.CNAEItem, 0, len(cnaes))
		for _, c := range cnaes {
			out = append(out, dto.CNAEItem{Codigo: c.Codigo, Descricao: c.Descricao})
		}
		return out, nil
	}); err != nil {
		return nil, err
	}

	if filtro == "" {
		return list, nil
	}
	alvo := Fold(filtro)
	filtered := make([]dto.CNAEItem, 0, len(list))
	for _, c := range list {
		if strings.Contains(Fold(c.Codigo), alvo) || strings.Contains(Fold(c.Descricao), alvo) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Municipios devolve os municípios de uma UF, filtrados por nome.
func (uc *ListasUseCase) Municipios(ctx context.Context, uf, filtro string) ([]dto.MunicipioItem, error) {
	var list []dto.MunicipioItem
	key := cacheKeyMunicipios + strings.ToUpper(uf)
	if err := uc.cached(ctx, key, &list, func() (any, error) {
		municipios, err := uc.refRepo.ListMunicipios(strings.ToUpper(uf))
		if err != nil {
			return nil, err
		}
		out := make([]dto.MunicipioItem, 0, len(municipios))
		for _, m := range municipios {
			out = append(out, dto.MunicipioItem{CodigoIBGE: m.CodigoIBGE, Nome: m.Nome, UF: m.UF})
		}
		return out, nil
	}); err != nil {
		return nil, err
	}

	if filtro == "" {
		return list, nil
	}
	alvo := Fold(filtro)
	filtered := make([]dto.MunicipioItem, 0, len(list))
	for _, m := range list {
		if strings.Contains(Fold(m.Nome), alvo) {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// cached tenta o Redis; em miss carrega via load e grava com TTL.
// Falha de cache degrada para a carga direta, nunca derruba a listagem.
func (uc *ListasUseCase) cached(ctx context.Context, key string, out any, load func() (any, error)) error {
	if raw, err := uc.cache.Get(ctx, key); err == nil && raw != nil {
		if err := json.Unmarshal(raw, out); err == nil {
			return nil
		}
	}

	loaded, err := load()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(loaded)
	if err != nil {
		return err
	}
	_ = uc.cache.Set(ctx, key, raw, listasTTL)
	return json.Unmarshal(raw, out)
}

// foldTransformer remove marcas diacríticas: NFD decompõe, Mn é descartado.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza para comparação insensível a caixa e acentos
// ("São Paulo" → "sao paulo").
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
