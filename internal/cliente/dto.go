package cliente

// TopClienteDTO é uma linha do ranking de clientes que mais viajaram.
type TopClienteDTO struct {
	ClienteID uint   `json:"clienteId"`
	Nome      string `json:"nome"`
	Telefone  string `json:"telefone"`
	Viagens   int    `json:"viagens"`
}
