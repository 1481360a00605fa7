package cnpj

import (
	"fmt"
	"unicode"
)

// Pesos dos dígitos verificadores do CNPJ (módulo 11, Receita Federal).
// O primeiro DV usa os 12 primeiros dígitos; o segundo usa os 12 + o primeiro DV.
var (
	firstDVWeights  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondDVWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Normalize remove pontuação e devolve apenas os dígitos do CNPJ.
// "12.345.678/0001-95" -> "12345678000195".
func Normalize(s string) string {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// Validate verifica que o CNPJ (com ou sem pontuação) tenha 14 dígitos e
// dígitos verificadores corretos segundo o algoritmo módulo 11.
func Validate(s string) error {
	digits := Normalize(s)
	if len(digits) != 14 {
		return fmt.Errorf("cnpj: deve ter 14 dígitos, foram encontrados %d", len(digits))
	}
	if allSame(digits) {
		return fmt.Errorf("cnpj: sequência de dígitos repetidos é inválida")
	}
	dv1 := computeDV(digits[:12], firstDVWeights[:])
	if digits[12] != dv1 {
		return fmt.Errorf("cnpj: primeiro dígito verificador inválido: esperado %c, recebido %c", dv1, digits[12])
	}
	dv2 := computeDV(digits[:13], secondDVWeights[:])
	if digits[13] != dv2 {
		return fmt.Errorf("cnpj: segundo dígito verificador inválido: esperado %c, recebido %c", dv2, digits[13])
	}
	return nil
}

// Format devolve o CNPJ no formato "12.345.678/0001-95".
// Se a entrada não tiver 14 dígitos, devolve a entrada sem alteração.
func Format(s string) string {
	d := Normalize(s)
	if len(d) != 14 {
		return s
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", d[0:2], d[2:5], d[5:8], d[8:12], d[12:14])
}

func computeDV(base string, weights []int) byte {
	var sum int
	for i := 0; i < len(base); i++ {
		sum += int(base[i]-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
