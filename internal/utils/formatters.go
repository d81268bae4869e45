package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// SomenteDigitos remove tudo que não for dígito.
func SomenteDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizarTelefone devolve o telefone apenas com dígitos, com DDI 55
// garantido para números nacionais completos (DDD + número).
func NormalizarTelefone(telefone string) string {
	digitos := SomenteDigitos(telefone)
	if len(digitos) == 10 || len(digitos) == 11 {
		return "55" + digitos
	}
	return digitos
}

// TelefoneValido indica se o telefone normaliza para pelo menos 10 dígitos
// (DDD + número). Números menores não são endereçáveis pelo WhatsApp.
func TelefoneValido(telefone string) bool {
	return len(NormalizarTelefone(telefone)) >= 10
}

// FormatarTelefone aplica a máscara (XX) XXXXX-XXXX ou (XX) XXXX-XXXX.
func FormatarTelefone(telefone string) string {
	d := SomenteDigitos(telefone)
	switch len(d) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", d[0:2], d[2:7], d[7:])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", d[0:2], d[2:6], d[6:])
	default:
		return telefone
	}
}

// FormatarCPF aplica a máscara XXX.XXX.XXX-XX.
func FormatarCPF(cpf string) string {
	d := SomenteDigitos(cpf)
	if len(d) != 11 {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", d[0:3], d[3:6], d[6:9], d[9:])
}

// FormatarCEP aplica a máscara XXXXX-XXX.
func FormatarCEP(cep string) string {
	d := SomenteDigitos(cep)
	if len(d) != 8 {
		return cep
	}
	return fmt.Sprintf("%s-%s", d[0:5], d[5:])
}

// FormatarData converte para o formato brasileiro dd/mm/aaaa.
func FormatarData(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatarDataHora converte para dd/mm/aaaa às hh:mm.
func FormatarDataHora(t time.Time) string {
	return t.Format("02/01/2006 às 15:04")
}

// FormatarMoeda formata centavos como R$ X.XXX,XX.
func FormatarMoeda(centavos int64) string {
	negativo := centavos < 0
	if negativo {
		centavos = -centavos
	}
	reais := centavos / 100
	resto := centavos % 100

	inteiro := fmt.Sprintf("%d", reais)
	var partes []string
	for len(inteiro) > 3 {
		partes = append([]string{inteiro[len(inteiro)-3:]}, partes...)
		inteiro = inteiro[:len(inteiro)-3]
	}
	partes = append([]string{inteiro}, partes...)

	valor := fmt.Sprintf("R$ %s,%02d", strings.Join(partes, "."), resto)
	if negativo {
		return "-" + valor
	}
	return valor
}
