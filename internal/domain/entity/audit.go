package entity

import "time"

// APIAuditLog registra cada chamada de busca a provedor externo, antes do
// encaminhamento. Parametros guarda o corpo da consulta serializado em JSON.
type APIAuditLog struct {
	ID         string
	UserID     string
	Endpoint   string // search-by-cnae, search-cnpja, search-by-cep, search-google-maps, enrich-company
	Parametros string
	Status     int // HTTP status devolvido ao cliente
	CreatedAt  time.Time
}
