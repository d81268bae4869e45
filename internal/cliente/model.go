package cliente

import "gorm.io/gorm"

type Cliente struct {
	gorm.Model
	Nome           string `json:"nome"`
	CPF            string `json:"cpf" gorm:"index"`
	Telefone       string `json:"telefone"`
	Email          string `json:"email"`
	DataNascimento string `json:"dataNascimento"`
	CEP            string `json:"cep"`
	Endereco       string `json:"endereco"`
	Numero         string `json:"numero"`
	Complemento    string `json:"complemento"`
	Bairro         string `json:"bairro"`
	Cidade         string `json:"cidade"`
	Estado         string `json:"estado"`
	ComoConheceu   string `json:"comoConheceu"`
	IndicacaoNome  string `json:"indicacaoNome"`
	Observacoes    string `json:"observacoes"`
	Foto           string `json:"foto"`
}
