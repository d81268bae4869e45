package onibus

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, o *Onibus) error
	BuscarPorID(db *gorm.DB, id uint) (*Onibus, error)
	ListarTodos(db *gorm.DB) ([]Onibus, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Onibus) error
	Deletar(db *gorm.DB, id uint) error
	AdicionarImagem(db *gorm.DB, img *OnibusImage) error
	RemoverImagem(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, o *Onibus) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Onibus, error) {
	var o Onibus
	err := db.Preload("Imagens").First(&o, id).Error
	return &o, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Onibus, error) {
	var lista []Onibus
	err := db.Preload("Imagens").Order("empresa, tipo").Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Onibus) error {
	var existente Onibus
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Empresa = novosDados.Empresa
	existente.Tipo = novosDados.Tipo
	existente.Capacidade = novosDados.Capacidade

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Onibus{}, id).Error
}

func (r *repositoryImpl) AdicionarImagem(db *gorm.DB, img *OnibusImage) error {
	return db.Create(img).Error
}

func (r *repositoryImpl) RemoverImagem(db *gorm.DB, id uint) error {
	return db.Delete(&OnibusImage{}, id).Error
}
