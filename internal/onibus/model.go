package onibus

import "gorm.io/gorm"

type Onibus struct {
	gorm.Model
	Empresa    string        `json:"empresa"`
	Tipo       string        `json:"tipo"` // convencional, executivo, leito...
	Capacidade int           `json:"capacidade"`
	Imagens    []OnibusImage `json:"imagens" gorm:"foreignKey:OnibusID"`
}

type OnibusImage struct {
	gorm.Model
	OnibusID uint   `json:"onibusId" gorm:"not null;index"`
	URL      string `json:"url"`
}

func (Onibus) TableName() string {
	return "onibus"
}
