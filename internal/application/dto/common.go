package dto

// PageRequest paginação para listagens.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores padrão se Limit/Offset forem zero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadados de página nas respostas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BatchItemResult resultado de um item em operação em lote.
type BatchItemResult struct {
	ID      string `json:"id,omitempty"`
	Sucesso bool   `json:"sucesso"`
	Erro    string `json:"erro,omitempty"`
}

// BatchReport tally de sucesso/falha de uma operação em lote.
type BatchReport struct {
	Total    int               `json:"total"`
	Sucessos int               `json:"sucessos"`
	Falhas   int               `json:"falhas"`
	Itens    []BatchItemResult `json:"itens"`
}
