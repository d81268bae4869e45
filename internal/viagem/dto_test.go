package viagem

import "testing"

func TestCalcularPercentualOcupacao(t *testing.T) {
	casos := []struct {
		confirmados int
		capacidade  int
		esperado    int
	}{
		{37, 50, 74},
		{0, 50, 0},
		{50, 50, 100},
		{1, 3, 33},
		{2, 3, 67},
		{10, 0, 0},
	}
	for _, c := range casos {
		if got := CalcularPercentualOcupacao(c.confirmados, c.capacidade); got != c.esperado {
			t.Errorf("ocupação de %d/%d = %d, esperava %d", c.confirmados, c.capacidade, got, c.esperado)
		}
	}
}
