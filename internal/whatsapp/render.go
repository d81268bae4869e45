package whatsapp

import (
	"regexp"
	"strings"
)

var variavelRegex = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Render substitui cada marcador {nome} conhecido pelo valor mapeado.
// Marcadores sem valor ficam no texto como estão, para que dado faltante
// apareça em vez de sumir em silêncio. É busca-e-troca literal: sem
// escape, sem aninhamento, sem condicionais.
func Render(mensagem string, valores map[string]string) string {
	resultado := mensagem
	for nome, valor := range valores {
		resultado = strings.ReplaceAll(resultado, "{"+nome+"}", valor)
	}
	return resultado
}

// ExtrairVariaveis devolve os marcadores {x} da mensagem, sem repetição,
// na ordem em que aparecem.
func ExtrairVariaveis(mensagem string) []string {
	matches := variavelRegex.FindAllStringSubmatch(mensagem, -1)
	vistos := make(map[string]bool, len(matches))
	var variaveis []string
	for _, m := range matches {
		if !vistos[m[1]] {
			vistos[m[1]] = true
			variaveis = append(variaveis, m[1])
		}
	}
	return variaveis
}
