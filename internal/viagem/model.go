package viagem

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de uma viagem
const (
	StatusAberta    = "aberta"
	StatusFechada   = "fechada"
	StatusConcluida = "concluida"
	StatusCancelada = "cancelada"
)

type Viagem struct {
	gorm.Model
	Adversario          string    `json:"adversario"`
	Campeonato          string    `json:"campeonato"`
	DataJogo            time.Time `json:"dataJogo"`
	DataSaida           time.Time `json:"dataSaida"`
	Rota                string    `json:"rota"`
	Destino             string    `json:"destino"`
	SetorPadrao         string    `json:"setorPadrao"` // setor do Maracanã sugerido
	ValorPadrao         float64   `json:"valorPadrao"`
	ValorPrimeiraViagem float64   `json:"valorPrimeiraViagem"`
	CapacidadeOnibus    int       `json:"capacidadeOnibus"`
	Status              string    `json:"status" gorm:"size:20;default:aberta"`
	ImagemURL           string    `json:"imagemUrl"`
	Observacoes         string    `json:"observacoes"`

	Passeios []Passeio `json:"passeios" gorm:"foreignKey:ViagemID"`
}

// Passeio é um opcional vendido junto com a viagem (city tour, museu etc.)
type Passeio struct {
	gorm.Model
	ViagemID uint    `json:"viagemId" gorm:"not null;index"`
	Nome     string  `json:"nome"`
	Valor    float64 `json:"valor"`
}
