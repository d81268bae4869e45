package whatsapp

import (
	"testing"
)

func TestRenderSubstituiVariaveis(t *testing.T) {
	mensagem := "Olá {nome}, a caravana contra o {adversario} sai dia {data_saida}!"
	valores := map[string]string{
		"nome":       "Maria",
		"adversario": "Palmeiras",
		"data_saida": "12/10/2026",
	}

	renderizado := Render(mensagem, valores)

	esperado := "Olá Maria, a caravana contra o Palmeiras sai dia 12/10/2026!"
	if renderizado != esperado {
		t.Fatalf("mensagem renderizada errada: %q", renderizado)
	}
}

func TestRenderMantemVariavelDesconhecida(t *testing.T) {
	mensagem := "Olá {nome}, pagamento: {valor}"
	renderizado := Render(mensagem, map[string]string{"nome": "João"})

	if renderizado != "Olá João, pagamento: {valor}" {
		t.Fatalf("marcador sem valor deveria ficar no texto, veio %q", renderizado)
	}
}

func TestRenderIdempotente(t *testing.T) {
	mensagem := "Olá {nome}, setor {setor}"
	valores := map[string]string{"nome": "Ana", "setor": "Sul"}

	uma := Render(mensagem, valores)
	duas := Render(uma, valores)

	if uma != duas {
		t.Fatalf("renderizar duas vezes mudou o texto: %q != %q", uma, duas)
	}
}

func TestExtrairVariaveis(t *testing.T) {
	mensagem := "Olá {nome}! Jogo contra {adversario}, link: {link}. Até mais, {nome}."

	variaveis := ExtrairVariaveis(mensagem)

	esperado := []string{"nome", "adversario", "link"}
	if len(variaveis) != len(esperado) {
		t.Fatalf("esperava %d variáveis, veio %d: %v", len(esperado), len(variaveis), variaveis)
	}
	for i, v := range esperado {
		if variaveis[i] != v {
			t.Fatalf("posição %d: esperava %q, veio %q", i, v, variaveis[i])
		}
	}
}

func TestExtrairVariaveisSemMarcadores(t *testing.T) {
	if variaveis := ExtrairVariaveis("mensagem sem marcador nenhum"); len(variaveis) != 0 {
		t.Fatalf("esperava lista vazia, veio %v", variaveis)
	}
}
