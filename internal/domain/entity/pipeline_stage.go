package entity

import "time"

// PipelineStage representa uma etapa do funil de vendas (coluna do kanban).
// Pertence a um usuário; empresas referenciam no máximo uma etapa (nullable).
type PipelineStage struct {
	ID        string
	UserID    string
	Nome      string
	Cor       string // hex, ex.: "#22c55e"
	Posicao   int    // ordem da coluna no kanban, a partir de 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
