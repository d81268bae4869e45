package estatisticas

import "gorm.io/gorm"

type Repository interface {
	ContarClientes(db *gorm.DB) (int64, error)
	ContarViagensPorStatus(db *gorm.DB, status string) (int64, error)
	ReceitaConfirmada(db *gorm.DB) (float64, int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ContarClientes(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Table("clientes").Where("deleted_at IS NULL").Count(&total).Error
	return total, err
}

func (r *repositoryImpl) ContarViagensPorStatus(db *gorm.DB, status string) (int64, error) {
	var total int64
	err := db.Table("viagens").Where("deleted_at IS NULL AND status = ?", status).Count(&total).Error
	return total, err
}

// ReceitaConfirmada soma o valor líquido dos passageiros pagos e devolve
// também a quantidade de pagantes.
func (r *repositoryImpl) ReceitaConfirmada(db *gorm.DB) (float64, int64, error) {
	type linha struct {
		Receita float64
		Total   int64
	}
	var l linha
	err := db.Table("viagem_passageiros").
		Select("COALESCE(SUM(valor - desconto), 0) AS receita, COUNT(id) AS total").
		Where("deleted_at IS NULL AND status_pagamento = ?", "pago").
		Scan(&l).Error
	return l.Receita, l.Total, err
}
