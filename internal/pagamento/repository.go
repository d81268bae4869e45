package pagamento

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, p *Pagamento) error
	BuscarPorSessionID(db *gorm.DB, sessionID string) (*Pagamento, error)
	ListarPorViagem(db *gorm.DB, viagemID uint) ([]Pagamento, error)
	ListarTodos(db *gorm.DB) ([]Pagamento, error)
	AtualizarStatus(db *gorm.DB, sessionID, status string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, p *Pagamento) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) BuscarPorSessionID(db *gorm.DB, sessionID string) (*Pagamento, error) {
	var p Pagamento
	err := db.Where("session_id = ?", sessionID).First(&p).Error
	return &p, err
}

func (r *repositoryImpl) ListarPorViagem(db *gorm.DB, viagemID uint) ([]Pagamento, error) {
	var pagamentos []Pagamento
	err := db.Where("viagem_id = ?", viagemID).Order("created_at DESC").Find(&pagamentos).Error
	return pagamentos, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Pagamento, error) {
	var pagamentos []Pagamento
	err := db.Order("created_at DESC").Limit(100).Find(&pagamentos).Error
	return pagamentos, err
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, sessionID, status string) error {
	return db.Model(&Pagamento{}).Where("session_id = ?", sessionID).
		Update("status", status).Error
}
