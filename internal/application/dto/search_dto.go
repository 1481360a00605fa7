package dto

// SearchByCNAERequest corpo de POST /api/search/cnae.
type SearchByCNAERequest struct {
	CNAE      string `json:"cnae" validate:"required"`
	UF        string `json:"uf" validate:"required,len=2"`
	Municipio string `json:"municipio"`
	Limite    int    `json:"limite" validate:"omitempty,min=1,max=100"`
}

// SearchByCNPJRequest corpo de POST /api/search/cnpj.
type SearchByCNPJRequest struct {
	CNPJ string `json:"cnpj" validate:"required"`
}

// SearchByCEPRequest corpo de POST /api/search/cep.
type SearchByCEPRequest struct {
	CEP    string `json:"cep" validate:"required"`
	CNAE   string `json:"cnae"`
	Limite int    `json:"limite" validate:"omitempty,min=1,max=100"`
}

// SearchMapsRequest corpo de POST /api/search/maps.
type SearchMapsRequest struct {
	Consulta string `json:"consulta" validate:"required"`
	Cidade   string `json:"cidade" validate:"required"`
}

// SearchResponse resultado comum de todas as buscas.
type SearchResponse struct {
	Resultados []CompanyResult `json:"resultados"`
	Total      int             `json:"total"`
}

// CNAEItem item da lista de referência de CNAEs.
type CNAEItem struct {
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`
}

// MunicipioItem item da lista de referência de municípios.
type MunicipioItem struct {
	CodigoIBGE string `json:"codigo_ibge"`
	Nome       string `json:"nome"`
	UF         string `json:"uf"`
}
