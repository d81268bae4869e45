package whatsapp

import "gorm.io/gorm"

// Template é uma mensagem com marcadores {variavel} substituídos no envio.
type Template struct {
	gorm.Model
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"` // cobrança, aviso, marketing...
	Mensagem  string `json:"mensagem"`
	Variaveis string `json:"variaveis"` // extraídas da mensagem, separadas por vírgula
	UsoTotal  int    `json:"usoTotal"`
}

// DisparoLog resume um lote de envio para os passageiros de uma viagem.
type DisparoLog struct {
	gorm.Model
	LoteID      string `json:"loteId" gorm:"size:36;index"`
	ViagemID    uint   `json:"viagemId" gorm:"not null;index"`
	OnibusID    *uint  `json:"onibusId"`
	TemplateIDs string `json:"templateIds"` // ids separados por vírgula
	Filtro      string `json:"filtro"`
	Tentados    int    `json:"tentados"`
	Enviados    int    `json:"enviados"`
	Falhados    int    `json:"falhados"`

	Itens []DisparoItem `json:"itens,omitempty" gorm:"foreignKey:DisparoLogID"`
}

// DisparoItem registra o resultado de uma tentativa de envio.
type DisparoItem struct {
	gorm.Model
	DisparoLogID uint   `json:"disparoLogId" gorm:"not null;index"`
	PassageiroID uint   `json:"passageiroId"`
	TemplateID   uint   `json:"templateId"`
	Telefone     string `json:"telefone"`
	Sucesso      bool   `json:"sucesso"`
	Resposta     string `json:"resposta"` // resposta crua do provedor
}
