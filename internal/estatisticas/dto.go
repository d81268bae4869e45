package estatisticas

import (
	"github.com/RotaDoTorcedor/api-caravanas/internal/cliente"
	"github.com/RotaDoTorcedor/api-caravanas/internal/viagem"
)

// ResumoDTO alimenta os cards do dashboard.
type ResumoDTO struct {
	TotalClientes     int64                   `json:"totalClientes"`
	ViagensAbertas    int64                   `json:"viagensAbertas"`
	ReceitaConfirmada float64                 `json:"receitaConfirmada"`
	PassageirosPagos  int64                   `json:"passageirosPagos"`
	Ocupacoes         []viagem.OcupacaoDTO    `json:"ocupacoes"`
	TopClientes       []cliente.TopClienteDTO `json:"topClientes"`
}
