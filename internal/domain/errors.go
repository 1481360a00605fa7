package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")

	// Créditos e pagamentos
	ErrInsufficientCredits = errors.New("saldo de créditos insuficiente")
	ErrPaymentExpired      = errors.New("pagamento PIX expirado")

	// Provedores externos (buscas e enriquecimento)
	ErrRateLimited         = errors.New("limite de requisições atingido, aguarde")
	ErrProviderCredits     = errors.New("créditos do provedor esgotados")
	ErrProviderRateLimited = errors.New("limite de requisições do provedor atingido")
	ErrProviderUnavailable = errors.New("provedor de dados indisponível")
	ErrProviderParse       = errors.New("resposta do provedor não pôde ser interpretada")
)
