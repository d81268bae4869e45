package viagem

import "math"

// OcupacaoDTO resume a lotação de uma viagem.
type OcupacaoDTO struct {
	ViagemID    uint   `json:"viagemId"`
	Adversario  string `json:"adversario"`
	Confirmados int    `json:"confirmados"`
	Capacidade  int    `json:"capacidade"`
	Percentual  int    `json:"percentual"`
}

// CalcularPercentualOcupacao devolve a ocupação arredondada em pontos
// percentuais. Capacidade zero conta como lotação zero.
func CalcularPercentualOcupacao(confirmados, capacidade int) int {
	if capacidade <= 0 {
		return 0
	}
	return int(math.Round(float64(confirmados) / float64(capacidade) * 100))
}
