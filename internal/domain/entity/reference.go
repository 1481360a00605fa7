package entity

// CNAE é um item da tabela de referência de atividades econômicas (IBGE).
type CNAE struct {
	Codigo    string // ex.: "5611-2/01"
	Descricao string
}

// Municipio é um item da tabela de referência de municípios (IBGE).
type Municipio struct {
	CodigoIBGE string
	Nome       string
	UF         string
}
