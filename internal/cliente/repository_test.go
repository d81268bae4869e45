package cliente

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func novoBancoMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestBuscarPorCPFNormalizaDigitos(t *testing.T) {
	db, mock := novoBancoMock(t)
	repo := NewRepository()

	linhas := sqlmock.NewRows([]string{"id", "nome", "cpf"}).
		AddRow(1, "Maria da Silva", "12345678901")
	// o CPF mascarado vira só dígitos antes de ir pra consulta
	mock.ExpectQuery(`SELECT (.+) FROM "clientes" WHERE cpf = (.+)`).
		WithArgs("12345678901", 1).
		WillReturnRows(linhas)

	c, err := repo.BuscarPorCPF(db, "123.456.789-01")

	require.NoError(t, err)
	assert.Equal(t, "Maria da Silva", c.Nome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuscarPorIDInexistente(t *testing.T) {
	db, mock := novoBancoMock(t)
	repo := NewRepository()

	mock.ExpectQuery(`SELECT (.+) FROM "clientes"`).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.BuscarPorID(db, 99)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopClientesExcluiCancelados(t *testing.T) {
	db, mock := novoBancoMock(t)
	repo := NewRepository()

	linhas := sqlmock.NewRows([]string{"cliente_id", "nome", "telefone", "viagens"}).
		AddRow(3, "João Souza", "21998765432", 5).
		AddRow(8, "Ana Lima", "21987654321", 4)
	mock.ExpectQuery(`SELECT (.+) FROM "viagem_passageiros" JOIN clientes (.+) status_pagamento <> (.+)`).
		WithArgs("cancelado").
		WillReturnRows(linhas)

	ranking, err := repo.TopClientes(db, 5)

	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, "João Souza", ranking[0].Nome)
	assert.Equal(t, 5, ranking[0].Viagens)
	assert.NoError(t, mock.ExpectationsWereMet())
}
