package whatsapp

// ResumoDisparoDTO é o resultado de um lote de envio. Sempre vale
// Tentados == Enviados + Falhados.
type ResumoDisparoDTO struct {
	LoteID    string `json:"loteId"`
	ViagemID  uint   `json:"viagemId"`
	Filtro    string `json:"filtro"`
	Tentados  int    `json:"tentados"`
	Enviados  int    `json:"enviados"`
	Falhados  int    `json:"falhados"`
	Ignorados int    `json:"ignorados"` // passageiros sem telefone válido
}
