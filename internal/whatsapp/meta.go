package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Client envia mensagens de texto pela API Cloud do Meta.
type Client struct {
	BaseURL    string
	PhoneID    string
	Token      string
	HTTPClient *http.Client
}

// MetaResponse é o corpo devolvido pela API do Meta.
type MetaResponse struct {
	MessagingProduct string           `json:"messaging_product"`
	Messages         []MetaMessage    `json:"messages"`
	Error            *MetaErrorDetail `json:"error,omitempty"`
}

type MetaMessage struct {
	ID string `json:"id"`
}

type MetaErrorDetail struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	FbTraceID string `json:"fbtrace_id"`
}

// NewClientFromEnv monta o client a partir de META_ACCESS_TOKEN e
// META_PHONE_ID. A ausência de qualquer um é erro imediato, não modo
// degradado.
func NewClientFromEnv() (*Client, error) {
	token := os.Getenv("META_ACCESS_TOKEN")
	phoneID := os.Getenv("META_PHONE_ID")
	if token == "" || phoneID == "" {
		return nil, fmt.Errorf("META_ACCESS_TOKEN e META_PHONE_ID devem estar definidos")
	}
	return &Client{
		BaseURL:    "https://graph.facebook.com/v22.0",
		PhoneID:    phoneID,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// EnviarTexto envia uma mensagem de texto para o telefone informado e
// devolve a resposta crua do provedor junto com o resultado.
func (c *Client) EnviarTexto(ctx context.Context, telefone, mensagem string) (string, error) {
	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                telefone,
		"type":              "text",
		"text": map[string]string{
			"body": mensagem,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s/messages", c.BaseURL, c.PhoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var metaResp MetaResponse
		if json.Unmarshal(respBody, &metaResp) == nil && metaResp.Error != nil {
			return string(respBody), fmt.Errorf("erro %d do provedor: %s", resp.StatusCode, metaResp.Error.Message)
		}
		return string(respBody), fmt.Errorf("erro %d do provedor", resp.StatusCode)
	}
	return string(respBody), nil
}
