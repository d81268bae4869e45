package passageiro

import "sort"

// GrupoEmbarqueDTO agrupa os passageiros de uma cidade de embarque.
type GrupoEmbarqueDTO struct {
	Cidade      string             `json:"cidade"`
	Total       int                `json:"total"`
	Passageiros []ViagemPassageiro `json:"passageiros"`
}

// AgruparPorCidade monta a lista de embarque agrupada por cidade, em ordem
// alfabética. Passageiros sem cidade caem no grupo "Sem cidade informada".
func AgruparPorCidade(passageiros []ViagemPassageiro) []GrupoEmbarqueDTO {
	grupos := make(map[string][]ViagemPassageiro)
	for _, p := range passageiros {
		cidade := p.CidadeEmbarque
		if cidade == "" {
			cidade = "Sem cidade informada"
		}
		grupos[cidade] = append(grupos[cidade], p)
	}

	cidades := make([]string, 0, len(grupos))
	for cidade := range grupos {
		cidades = append(cidades, cidade)
	}
	sort.Strings(cidades)

	resultado := make([]GrupoEmbarqueDTO, 0, len(cidades))
	for _, cidade := range cidades {
		resultado = append(resultado, GrupoEmbarqueDTO{
			Cidade:      cidade,
			Total:       len(grupos[cidade]),
			Passageiros: grupos[cidade],
		})
	}
	return resultado
}
