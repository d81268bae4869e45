package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBuscarCEP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/01310930/json/" {
			t.Errorf("caminho errado: %s", r.URL.Path)
		}
		w.Write([]byte(`{"cep":"01310-930","logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`))
	}))
	defer server.Close()

	antiga := viaCEPBaseURL
	viaCEPBaseURL = server.URL
	defer func() { viaCEPBaseURL = antiga }()

	endereco, err := BuscarCEP(context.Background(), "01310-930")
	if err != nil {
		t.Fatalf("busca não deveria falhar: %v", err)
	}
	if endereco.Logradouro != "Avenida Paulista" || endereco.UF != "SP" {
		t.Fatalf("endereço errado: %+v", endereco)
	}
}

func TestBuscarCEPInexistente(t *testing.T) {
	// o ViaCEP devolve "erro" como string em vez de bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"erro": "true"}`))
	}))
	defer server.Close()

	antiga := viaCEPBaseURL
	viaCEPBaseURL = server.URL
	defer func() { viaCEPBaseURL = antiga }()

	_, err := BuscarCEP(context.Background(), "99999999")
	if err == nil {
		t.Fatal("CEP inexistente deveria retornar erro")
	}
	if !strings.Contains(err.Error(), "não encontrado") {
		t.Fatalf("mensagem errada: %v", err)
	}
}

func TestBuscarCEPErroComoBool(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"erro": true}`))
	}))
	defer server.Close()

	antiga := viaCEPBaseURL
	viaCEPBaseURL = server.URL
	defer func() { viaCEPBaseURL = antiga }()

	_, err := BuscarCEP(context.Background(), "99999999")
	if err == nil || !strings.Contains(err.Error(), "não encontrado") {
		t.Fatalf("esperava 'não encontrado', veio %v", err)
	}
}

func TestBuscarCEPMalFormado(t *testing.T) {
	if _, err := BuscarCEP(context.Background(), "1234"); err == nil {
		t.Fatal("CEP com menos de 8 dígitos deveria falhar antes da consulta")
	}
}
