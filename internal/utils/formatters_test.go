package utils

import (
	"testing"
	"time"
)

func TestNormalizarTelefone(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"(21) 99876-5432", "5521998765432"},
		{"21 3232-1010", "552132321010"},
		{"5521998765432", "5521998765432"},
		{"99876", "99876"},
	}
	for _, c := range casos {
		if got := NormalizarTelefone(c.entrada); got != c.esperado {
			t.Errorf("NormalizarTelefone(%q) = %q, esperava %q", c.entrada, got, c.esperado)
		}
	}
}

func TestTelefoneValido(t *testing.T) {
	if !TelefoneValido("(21) 99876-5432") {
		t.Error("telefone com DDD e nove dígitos deveria ser válido")
	}
	if TelefoneValido("98765-432") {
		t.Error("telefone sem DDD não deveria ser válido")
	}
	if TelefoneValido("") {
		t.Error("telefone vazio não deveria ser válido")
	}
}

func TestFormatarCEP(t *testing.T) {
	if got := FormatarCEP("01310930"); got != "01310-930" {
		t.Errorf("FormatarCEP(01310930) = %q", got)
	}
	// entrada fora do padrão volta como veio
	if got := FormatarCEP("1234"); got != "1234" {
		t.Errorf("FormatarCEP(1234) = %q", got)
	}
}

func TestFormatarCPF(t *testing.T) {
	if got := FormatarCPF("12345678901"); got != "123.456.789-01" {
		t.Errorf("FormatarCPF = %q", got)
	}
}

func TestFormatarTelefone(t *testing.T) {
	if got := FormatarTelefone("21998765432"); got != "(21) 99876-5432" {
		t.Errorf("celular formatado errado: %q", got)
	}
	if got := FormatarTelefone("2132321010"); got != "(21) 3232-1010" {
		t.Errorf("fixo formatado errado: %q", got)
	}
}

func TestFormatarMoeda(t *testing.T) {
	casos := []struct {
		centavos int64
		esperado string
	}{
		{0, "R$ 0,00"},
		{9990, "R$ 99,90"},
		{150000, "R$ 1.500,00"},
		{123456789, "R$ 1.234.567,89"},
		{-9990, "-R$ 99,90"},
	}
	for _, c := range casos {
		if got := FormatarMoeda(c.centavos); got != c.esperado {
			t.Errorf("FormatarMoeda(%d) = %q, esperava %q", c.centavos, got, c.esperado)
		}
	}
}

func TestFormatarData(t *testing.T) {
	d := time.Date(2026, 10, 12, 18, 30, 0, 0, time.UTC)
	if got := FormatarData(d); got != "12/10/2026" {
		t.Errorf("FormatarData = %q", got)
	}
	if got := FormatarDataHora(d); got != "12/10/2026 às 18:30" {
		t.Errorf("FormatarDataHora = %q", got)
	}
}
