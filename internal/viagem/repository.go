package viagem

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, v *Viagem) error
	BuscarPorID(db *gorm.DB, id uint) (*Viagem, error)
	ListarTodas(db *gorm.DB) ([]Viagem, error)
	ListarPorStatus(db *gorm.DB, status string) ([]Viagem, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Viagem) error
	Deletar(db *gorm.DB, id uint) error
	ContagemConfirmados(db *gorm.DB) (map[uint]int, error)
	ContarConfirmados(db *gorm.DB, viagemID uint) (int, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, v *Viagem) error {
	return db.Create(v).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Viagem, error) {
	var v Viagem
	err := db.Preload("Passeios").First(&v, id).Error
	return &v, err
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Viagem, error) {
	var viagens []Viagem
	err := db.Preload("Passeios").Order("data_jogo DESC").Find(&viagens).Error
	return viagens, err
}

func (r *repositoryImpl) ListarPorStatus(db *gorm.DB, status string) ([]Viagem, error) {
	var viagens []Viagem
	err := db.Preload("Passeios").Where("status = ?", status).Order("data_jogo").Find(&viagens).Error
	return viagens, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Viagem) error {
	var existente Viagem
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Adversario = novosDados.Adversario
	existente.Campeonato = novosDados.Campeonato
	existente.DataJogo = novosDados.DataJogo
	existente.DataSaida = novosDados.DataSaida
	existente.Rota = novosDados.Rota
	existente.Destino = novosDados.Destino
	existente.SetorPadrao = novosDados.SetorPadrao
	existente.ValorPadrao = novosDados.ValorPadrao
	existente.ValorPrimeiraViagem = novosDados.ValorPrimeiraViagem
	existente.CapacidadeOnibus = novosDados.CapacidadeOnibus
	existente.Status = novosDados.Status
	existente.ImagemURL = novosDados.ImagemURL
	existente.Observacoes = novosDados.Observacoes

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Viagem{}, id).Error
}

// ContagemConfirmados conta passageiros não cancelados de todas as viagens
// em uma única consulta agregada.
func (r *repositoryImpl) ContagemConfirmados(db *gorm.DB) (map[uint]int, error) {
	type linha struct {
		ViagemID uint
		Total    int
	}
	var linhas []linha
	err := db.Table("viagem_passageiros").
		Select("viagem_id, COUNT(id) AS total").
		Where("deleted_at IS NULL AND status_pagamento <> ?", "cancelado").
		Group("viagem_id").
		Scan(&linhas).Error
	if err != nil {
		return nil, err
	}

	contagem := make(map[uint]int, len(linhas))
	for _, l := range linhas {
		contagem[l.ViagemID] = l.Total
	}
	return contagem, nil
}

func (r *repositoryImpl) ContarConfirmados(db *gorm.DB, viagemID uint) (int, error) {
	var total int64
	err := db.Table("viagem_passageiros").
		Where("viagem_id = ? AND deleted_at IS NULL AND status_pagamento <> ?", viagemID, "cancelado").
		Count(&total).Error
	return int(total), err
}
