package passageiro

import (
	"github.com/RotaDoTorcedor/api-caravanas/internal/cliente"
	"github.com/RotaDoTorcedor/api-caravanas/internal/onibus"
	"gorm.io/gorm"
)

// Status de pagamento de um passageiro
const (
	PagamentoPendente  = "pendente"
	PagamentoPago      = "pago"
	PagamentoCancelado = "cancelado"
)

// ViagemPassageiro liga um cliente a uma viagem. Cada linha referencia
// exatamente uma viagem e um cliente.
type ViagemPassageiro struct {
	gorm.Model
	ViagemID  uint  `json:"viagemId" gorm:"not null;index"`
	ClienteID uint  `json:"clienteId" gorm:"not null;index"`
	OnibusID  *uint `json:"onibusId" gorm:"index"`

	Cliente cliente.Cliente `json:"cliente" gorm:"foreignKey:ClienteID"`
	Onibus  *onibus.Onibus  `json:"onibus,omitempty" gorm:"foreignKey:OnibusID"`

	Valor           float64 `json:"valor"`
	Desconto        float64 `json:"desconto"`
	StatusPagamento string  `json:"statusPagamento" gorm:"size:20;default:pendente"`
	FormaPagamento  string  `json:"formaPagamento"`
	Setor           string  `json:"setor"` // setor do Maracanã
	CidadeEmbarque  string  `json:"cidadeEmbarque"`
	Passeios        string  `json:"passeios"` // nomes separados por vírgula
	Observacoes     string  `json:"observacoes"`
}
