package cliente

import (
	"github.com/RotaDoTorcedor/api-caravanas/internal/utils"
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, c *Cliente) error
	Salvar(db *gorm.DB, c *Cliente) error
	BuscarPorID(db *gorm.DB, id uint) (*Cliente, error)
	BuscarPorCPF(db *gorm.DB, cpf string) (*Cliente, error)
	ListarTodos(db *gorm.DB) ([]Cliente, error)
	Buscar(db *gorm.DB, termo string) ([]Cliente, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Cliente) error
	Deletar(db *gorm.DB, id uint) error
	TopClientes(db *gorm.DB, limite int) ([]TopClienteDTO, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Cliente) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Cliente) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cliente, error) {
	var c Cliente
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) BuscarPorCPF(db *gorm.DB, cpf string) (*Cliente, error) {
	var c Cliente
	err := db.Where("cpf = ?", utils.SomenteDigitos(cpf)).First(&c).Error
	return &c, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cliente, error) {
	var clientes []Cliente
	err := db.Order("nome").Find(&clientes).Error
	return clientes, err
}

// Busca por nome, CPF ou telefone em uma única consulta
func (r *repositoryImpl) Buscar(db *gorm.DB, termo string) ([]Cliente, error) {
	var clientes []Cliente
	like := "%" + termo + "%"
	digitos := "%" + utils.SomenteDigitos(termo) + "%"
	q := db.Where("nome ILIKE ?", like)
	if digitos != "%%" {
		q = q.Or("cpf LIKE ?", digitos).Or("telefone LIKE ?", digitos)
	}
	err := q.Order("nome").Find(&clientes).Error
	return clientes, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Cliente) error {
	var existente Cliente
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.CPF = novosDados.CPF
	existente.Telefone = novosDados.Telefone
	existente.Email = novosDados.Email
	existente.DataNascimento = novosDados.DataNascimento
	existente.CEP = novosDados.CEP
	existente.Endereco = novosDados.Endereco
	existente.Numero = novosDados.Numero
	existente.Complemento = novosDados.Complemento
	existente.Bairro = novosDados.Bairro
	existente.Cidade = novosDados.Cidade
	existente.Estado = novosDados.Estado
	existente.ComoConheceu = novosDados.ComoConheceu
	existente.IndicacaoNome = novosDados.IndicacaoNome
	existente.Observacoes = novosDados.Observacoes
	existente.Foto = novosDados.Foto

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Cliente{}, id).Error
}

// TopClientes retorna o ranking de clientes por número de viagens não canceladas.
func (r *repositoryImpl) TopClientes(db *gorm.DB, limite int) ([]TopClienteDTO, error) {
	if limite <= 0 {
		limite = 10
	}
	var ranking []TopClienteDTO
	err := db.Table("viagem_passageiros").
		Select("clientes.id AS cliente_id, clientes.nome, clientes.telefone, COUNT(viagem_passageiros.id) AS viagens").
		Joins("JOIN clientes ON clientes.id = viagem_passageiros.cliente_id").
		Where("viagem_passageiros.deleted_at IS NULL AND viagem_passageiros.status_pagamento <> ?", "cancelado").
		Group("clientes.id, clientes.nome, clientes.telefone").
		Order("viagens DESC").
		Limit(limite).
		Scan(&ranking).Error
	return ranking, err
}
