package enrich

import (
	"strings"

	"github.com/acheileads/achei-leads-api/internal/application/dto"
)

// ValidateExtraction aplica as heurísticas anti-alucinação sobre a saída bruta
// do modelo e devolve só os campos que passam. Regras:
//   - qualquer valor contendo "*" é descartado (placeholder de censura/chute);
//   - URLs (website e redes) precisam começar com "http";
//   - e-mail precisa conter "@";
//   - cada URL de rede social precisa conter o domínio da plataforma.
func ValidateExtraction(in *dto.AIExtractionDTO) *dto.AIExtractionDTO {
	if in == nil {
		return &dto.AIExtractionDTO{}
	}
	out := &dto.AIExtractionDTO{}
	out.RazaoSocial = cleanText(in.RazaoSocial)
	out.NomeFantasia = cleanText(in.NomeFantasia)
	out.Website = cleanURL(in.Website, "")
	out.Email = cleanEmail(in.Email)
	out.Instagram = cleanURL(in.Instagram, "instagram.com")
	out.Facebook = cleanURL(in.Facebook, "facebook.com")
	out.LinkedIn = cleanURL(in.LinkedIn, "linkedin.com")
	return out
}

func cleanText(v *string) *string {
	s, ok := base(v)
	if !ok {
		return nil
	}
	return &s
}

func cleanURL(v *string, dominio string) *string {
	s, ok := base(v)
	if !ok {
		return nil
	}
	if !strings.HasPrefix(s, "http") {
		return nil
	}
	if dominio != "" && !strings.Contains(strings.ToLower(s), dominio) {
		return nil
	}
	return &s
}

func cleanEmail(v *string) *string {
	s, ok := base(v)
	if !ok {
		return nil
	}
	if !strings.Contains(s, "@") {
		return nil
	}
	return &s
}

// base aplica as regras comuns: trim, vazio e "*" descartados.
func base(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	s := strings.TrimSpace(*v)
	if s == "" || strings.Contains(s, "*") {
		return "", false
	}
	return s, true
}
