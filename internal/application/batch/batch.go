// Package batch implementa o executor de operações em lote: lista de itens
// entra, tally de sucessos/falhas e resultado por item saem. As operações
// rodam em sequência, na ordem de entrada, e o lote continua após falhas
// individuais (sem rollback parcial).
package batch

// ItemResult resultado de um item do lote.
type ItemResult struct {
	ID      string
	Sucesso bool
	Erro    string
}

// Report tally final do lote.
type Report struct {
	Total    int
	Sucessos int
	Falhas   int
	Itens    []ItemResult
}

// Run executa fn para cada item, em ordem, acumulando o relatório.
// id extrai o identificador do item para o resultado; pode devolver "".
func Run[T any](items []T, id func(T) string, fn func(T) error) Report {
	r := Report{
		Total: len(items),
		Itens: make([]ItemResult, 0, len(items)),
	}
	for _, item := range items {
		res := ItemResult{ID: id(item)}
		if err := fn(item); err != nil {
			res.Erro = err.Error()
			r.Falhas++
		} else {
			res.Sucesso = true
			r.Sucessos++
		}
		r.Itens = append(r.Itens, res)
	}
	return r
}
