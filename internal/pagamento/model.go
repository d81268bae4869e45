package pagamento

import "gorm.io/gorm"

// Status de um pagamento. A transição pendente -> pago só é observada
// quando a verificação é chamada; não há webhook.
const (
	StatusPendente = "pendente"
	StatusPago     = "pago"
	StatusExpirado = "expirado"
)

type Pagamento struct {
	gorm.Model
	ViagemID   uint    `json:"viagemId" gorm:"not null;index"`
	ClienteID  *uint   `json:"clienteId" gorm:"index"`
	Valor      float64 `json:"valor"`
	Moeda      string  `json:"moeda" gorm:"size:3;default:brl"`
	Status     string  `json:"status" gorm:"size:20;default:pendente"`
	SessionID  string  `json:"sessionId" gorm:"index"`
	Referencia string  `json:"referencia" gorm:"size:36"`
	Descricao  string  `json:"descricao"`
}

func (Pagamento) TableName() string {
	return "payments"
}
