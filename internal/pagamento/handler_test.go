package pagamento

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
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

func corpoErro(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var corpo map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&corpo))
	return corpo["error"]
}

func TestCriarCheckoutPayloadInvalido(t *testing.T) {
	db, _ := novoBancoMock(t)
	h := NewHandler(db, nil)

	req := httptest.NewRequest("POST", "/create-checkout", strings.NewReader("{{{"))
	rec := httptest.NewRecorder()
	h.CriarCheckout(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "payload inválido", corpoErro(t, rec))
}

func TestCriarCheckoutCamposObrigatorios(t *testing.T) {
	db, _ := novoBancoMock(t)
	h := NewHandler(db, nil)

	req := httptest.NewRequest("POST", "/create-checkout", strings.NewReader(`{"price":0}`))
	rec := httptest.NewRecorder()
	h.CriarCheckout(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "tripId e price são obrigatórios", corpoErro(t, rec))
}

func TestCriarCheckoutSemStripeConfigurado(t *testing.T) {
	db, _ := novoBancoMock(t)
	h := NewHandler(db, nil)

	req := httptest.NewRequest("POST", "/create-checkout", strings.NewReader(`{"tripId":7,"price":380}`))
	rec := httptest.NewRecorder()
	h.CriarCheckout(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "STRIPE_SECRET_KEY não configurada", corpoErro(t, rec))
}

func TestCriarCheckoutViagemInexistente(t *testing.T) {
	db, mock := novoBancoMock(t)
	h := NewHandler(db, stripe.NewClient("sk_test_xxx"))

	mock.ExpectQuery(`SELECT (.+) FROM "viagens"`).
		WillReturnError(gorm.ErrRecordNotFound)

	req := httptest.NewRequest("POST", "/create-checkout", strings.NewReader(`{"tripId":7,"price":380}`))
	rec := httptest.NewRecorder()
	h.CriarCheckout(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "viagem 7 não encontrada", corpoErro(t, rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerificarPagamentoSemSessionID(t *testing.T) {
	db, _ := novoBancoMock(t)
	h := NewHandler(db, nil)

	req := httptest.NewRequest("POST", "/verify-payment", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.VerificarPagamento(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "sessionId é obrigatório", corpoErro(t, rec))
}

func TestListarPagamentosViagemIDInvalido(t *testing.T) {
	db, _ := novoBancoMock(t)
	h := NewHandler(db, nil)

	req := httptest.NewRequest("GET", "/pagamentos?viagemId=abc", nil)
	rec := httptest.NewRecorder()
	h.ListarPagamentos(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListarPagamentosPorViagem(t *testing.T) {
	db, mock := novoBancoMock(t)
	h := NewHandler(db, nil)

	linhas := sqlmock.NewRows([]string{"id", "viagem_id", "valor", "status", "session_id"}).
		AddRow(1, 7, 380.0, StatusPago, "cs_test_abc")
	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE viagem_id = (.+)`).
		WithArgs(7).
		WillReturnRows(linhas)

	req := httptest.NewRequest("GET", "/pagamentos?viagemId=7", nil)
	rec := httptest.NewRecorder()
	h.ListarPagamentos(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var pagamentos []Pagamento
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&pagamentos))
	require.Len(t, pagamentos, 1)
	assert.Equal(t, uint(7), pagamentos[0].ViagemID)
	assert.Equal(t, StatusPago, pagamentos[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
