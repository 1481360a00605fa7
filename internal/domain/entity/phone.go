package entity

import "time"

// Tipos válidos para Phone.
const (
	PhoneTipoCelular = "celular"
	PhoneTipoFixo    = "fixo"
)

// Status de validação de telefone.
const (
	PhoneStatusPendente = "pendente"
	PhoneStatusValido   = "valido"
	PhoneStatusInvalido = "invalido"
	PhoneStatusIncerto  = "incerto"
)

// Phone representa um telefone de uma empresa. Excluído em cascata com a empresa.
type Phone struct {
	ID              string
	CompanyID       string
	Numero          string
	Tipo            string // celular, fixo
	StatusValidacao string // pendente, valido, invalido, incerto
	WhatsApp        bool
	CreatedAt       time.Time
}
