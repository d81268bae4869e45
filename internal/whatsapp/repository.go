package whatsapp

import (
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, t *Template) error
	BuscarPorID(db *gorm.DB, id uint) (*Template, error)
	BuscarVarios(db *gorm.DB, ids []uint) ([]Template, error)
	ListarTodos(db *gorm.DB) ([]Template, error)
	ListarPorCategoria(db *gorm.DB, categoria string) ([]Template, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Template) error
	Deletar(db *gorm.DB, id uint) error
	IncrementarUso(db *gorm.DB, id uint, quantidade int) error

	SalvarLog(db *gorm.DB, l *DisparoLog) error
	ListarLogs(db *gorm.DB) ([]DisparoLog, error)
	ListarLogsPorViagem(db *gorm.DB, viagemID uint) ([]DisparoLog, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, t *Template) error {
	t.Variaveis = strings.Join(ExtrairVariaveis(t.Mensagem), ",")
	return db.Create(t).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Template, error) {
	var t Template
	err := db.First(&t, id).Error
	return &t, err
}

func (r *repositoryImpl) BuscarVarios(db *gorm.DB, ids []uint) ([]Template, error) {
	var templates []Template
	err := db.Where("id IN ?", ids).Find(&templates).Error
	return templates, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Template, error) {
	var templates []Template
	err := db.Order("nome").Find(&templates).Error
	return templates, err
}

func (r *repositoryImpl) ListarPorCategoria(db *gorm.DB, categoria string) ([]Template, error) {
	var templates []Template
	err := db.Where("categoria = ?", categoria).Order("nome").Find(&templates).Error
	return templates, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Template) error {
	var existente Template
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Categoria = novosDados.Categoria
	existente.Mensagem = novosDados.Mensagem
	existente.Variaveis = strings.Join(ExtrairVariaveis(novosDados.Mensagem), ",")

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Template{}, id).Error
}

func (r *repositoryImpl) IncrementarUso(db *gorm.DB, id uint, quantidade int) error {
	return db.Model(&Template{}).Where("id = ?", id).
		Update("uso_total", gorm.Expr("uso_total + ?", quantidade)).Error
}

func (r *repositoryImpl) SalvarLog(db *gorm.DB, l *DisparoLog) error {
	return db.Create(l).Error
}

func (r *repositoryImpl) ListarLogs(db *gorm.DB) ([]DisparoLog, error) {
	var logs []DisparoLog
	err := db.Order("created_at DESC").Limit(50).Find(&logs).Error
	return logs, err
}

func (r *repositoryImpl) ListarLogsPorViagem(db *gorm.DB, viagemID uint) ([]DisparoLog, error) {
	var logs []DisparoLog
	err := db.Preload("Itens").Where("viagem_id = ?", viagemID).Order("created_at DESC").Find(&logs).Error
	return logs, err
}
