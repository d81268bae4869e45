package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoClientDeTeste(server *httptest.Server) *Client {
	return &Client{
		BaseURL:    server.URL,
		PhoneID:    "123456",
		Token:      "token-de-teste",
		HTTPClient: server.Client(),
	}
}

func TestEnviarTexto(t *testing.T) {
	var recebido map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/123456/messages", r.URL.Path)
		assert.Equal(t, "Bearer token-de-teste", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recebido))

		json.NewEncoder(w).Encode(MetaResponse{
			MessagingProduct: "whatsapp",
			Messages:         []MetaMessage{{ID: "wamid.abc123"}},
		})
	}))
	defer server.Close()

	c := novoClientDeTeste(server)
	resposta, err := c.EnviarTexto(context.Background(), "5521998765432", "Olá Maria!")

	require.NoError(t, err)
	assert.Contains(t, resposta, "wamid.abc123")
	assert.Equal(t, "5521998765432", recebido["to"])
	assert.Equal(t, "whatsapp", recebido["messaging_product"])
}

func TestEnviarTextoErroDoProvedor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(MetaResponse{
			Error: &MetaErrorDetail{Message: "Invalid phone number", Code: 100},
		})
	}))
	defer server.Close()

	c := novoClientDeTeste(server)
	resposta, err := c.EnviarTexto(context.Background(), "123", "Olá!")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid phone number")
	assert.Contains(t, resposta, "Invalid phone number")
}

func TestNewClientFromEnvIncompleto(t *testing.T) {
	t.Setenv("META_ACCESS_TOKEN", "")
	t.Setenv("META_PHONE_ID", "")

	_, err := NewClientFromEnv()
	assert.Error(t, err)
}
