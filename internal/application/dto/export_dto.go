package dto

// Categorias de campos do export.
const (
	CategoriaEmpresa  = "empresa"  // nome, cnpj, cnae, cidade, uf, endereco, cep
	CategoriaContato  = "contato"  // website, email
	CategoriaRedes    = "redes"    // instagram, facebook, linkedin
	CategoriaIA       = "ia"       // resumo_ia, enriquecida_em
	CategoriaTelefone = "telefone" // numeros, tipo, whatsapp
)

// Modos de linha do export.
const (
	ModoPorEmpresa  = "por_empresa"  // uma linha por empresa, telefones unidos com "; "
	ModoPorTelefone = "por_telefone" // uma linha por telefone, demais campos repetidos
)

// ExportRequest corpo de POST /api/export/csv e /api/export/pdf.
type ExportRequest struct {
	Categorias []string `json:"categorias" validate:"required,min=1"`
	Modo       string   `json:"modo" validate:"omitempty,oneof=por_empresa por_telefone"`
	IDs        []string `json:"ids"` // vazio = todas as empresas do usuário
}
