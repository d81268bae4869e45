package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var viaCEPBaseURL = "https://viacep.com.br/ws"

// Endereco é a resposta da consulta de CEP no ViaCEP.
type Endereco struct {
	CEP        string     `json:"cep"`
	Logradouro string     `json:"logradouro"`
	Bairro     string     `json:"bairro"`
	Localidade string     `json:"localidade"`
	UF         string     `json:"uf"`
	Erro       FlagViaCEP `json:"erro,omitempty"`
}

// FlagViaCEP aceita o campo "erro" do ViaCEP tanto como bool quanto como
// string ("true"), formato que a API passou a devolver.
type FlagViaCEP bool

func (f *FlagViaCEP) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	*f = s == "true" || s == "1"
	return nil
}

// BuscarCEP consulta o ViaCEP. O contexto permite abortar a busca quando o
// usuário continua digitando (debounce no frontend).
func BuscarCEP(ctx context.Context, cep string) (*Endereco, error) {
	digitos := SomenteDigitos(cep)
	if len(digitos) != 8 {
		return nil, fmt.Errorf("CEP inválido: %q", cep)
	}

	url := fmt.Sprintf("%s/%s/json/", viaCEPBaseURL, digitos)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ViaCEP retornou código %d", resp.StatusCode)
	}

	var endereco Endereco
	if err := json.NewDecoder(resp.Body).Decode(&endereco); err != nil {
		return nil, err
	}
	if endereco.Erro {
		return nil, fmt.Errorf("CEP %s não encontrado", FormatarCEP(digitos))
	}
	return &endereco, nil
}
