package passageiro

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, p *ViagemPassageiro) error
	BuscarPorID(db *gorm.DB, id uint) (*ViagemPassageiro, error)
	ListarPorViagem(db *gorm.DB, viagemID uint) ([]ViagemPassageiro, error)
	ListarPorViagemEOnibus(db *gorm.DB, viagemID, onibusID uint) ([]ViagemPassageiro, error)
	ListarPorCliente(db *gorm.DB, clienteID uint) ([]ViagemPassageiro, error)
	Atualizar(db *gorm.DB, id uint, novosDados *ViagemPassageiro) error
	AtualizarPagamento(db *gorm.DB, id uint, status, forma string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, p *ViagemPassageiro) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*ViagemPassageiro, error) {
	var p ViagemPassageiro
	err := db.Preload("Cliente").Preload("Onibus").First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) ListarPorViagem(db *gorm.DB, viagemID uint) ([]ViagemPassageiro, error) {
	var passageiros []ViagemPassageiro
	err := db.Preload("Cliente").Preload("Onibus").
		Where("viagem_id = ?", viagemID).
		Find(&passageiros).Error
	return passageiros, err
}

func (r *repositoryImpl) ListarPorViagemEOnibus(db *gorm.DB, viagemID, onibusID uint) ([]ViagemPassageiro, error) {
	var passageiros []ViagemPassageiro
	err := db.Preload("Cliente").Preload("Onibus").
		Where("viagem_id = ? AND onibus_id = ?", viagemID, onibusID).
		Find(&passageiros).Error
	return passageiros, err
}

func (r *repositoryImpl) ListarPorCliente(db *gorm.DB, clienteID uint) ([]ViagemPassageiro, error) {
	var passageiros []ViagemPassageiro
	err := db.Preload("Onibus").
		Where("cliente_id = ?", clienteID).
		Order("created_at DESC").
		Find(&passageiros).Error
	return passageiros, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *ViagemPassageiro) error {
	var existente ViagemPassageiro
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.OnibusID = novosDados.OnibusID
	existente.Valor = novosDados.Valor
	existente.Desconto = novosDados.Desconto
	existente.StatusPagamento = novosDados.StatusPagamento
	existente.FormaPagamento = novosDados.FormaPagamento
	existente.Setor = novosDados.Setor
	existente.CidadeEmbarque = novosDados.CidadeEmbarque
	existente.Passeios = novosDados.Passeios
	existente.Observacoes = novosDados.Observacoes

	return db.Save(&existente).Error
}

func (r *repositoryImpl) AtualizarPagamento(db *gorm.DB, id uint, status, forma string) error {
	updates := map[string]interface{}{"status_pagamento": status}
	if forma != "" {
		updates["forma_pagamento"] = forma
	}
	return db.Model(&ViagemPassageiro{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&ViagemPassageiro{}, id).Error
}
