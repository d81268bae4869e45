package usuario

import "gorm.io/gorm"

type Usuario struct {
	gorm.Model
	Nome                  string `json:"nome"`
	Email                 string `json:"email" gorm:"unique"`
	Telefone              string `json:"telefone"`
	Senha                 string `json:"-"`
	PrecisaRedefinirSenha bool   `json:"-"`
	IsAdmin               bool   `json:"isAdmin"`
}
