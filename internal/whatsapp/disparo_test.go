package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RotaDoTorcedor/api-caravanas/internal/cliente"
	"github.com/RotaDoTorcedor/api-caravanas/internal/passageiro"
	"github.com/RotaDoTorcedor/api-caravanas/internal/viagem"

	"gorm.io/gorm"
)

type viagensFake struct {
	v *viagem.Viagem
}

func (f *viagensFake) Criar(db *gorm.DB, v *viagem.Viagem) error { return nil }
func (f *viagensFake) BuscarPorID(db *gorm.DB, id uint) (*viagem.Viagem, error) {
	return f.v, nil
}
func (f *viagensFake) ListarTodas(db *gorm.DB) ([]viagem.Viagem, error) { return nil, nil }
func (f *viagensFake) ListarPorStatus(db *gorm.DB, status string) ([]viagem.Viagem, error) {
	return nil, nil
}
func (f *viagensFake) Atualizar(db *gorm.DB, id uint, novosDados *viagem.Viagem) error { return nil }
func (f *viagensFake) Deletar(db *gorm.DB, id uint) error                              { return nil }
func (f *viagensFake) ContagemConfirmados(db *gorm.DB) (map[uint]int, error)           { return nil, nil }
func (f *viagensFake) ContarConfirmados(db *gorm.DB, viagemID uint) (int, error)       { return 0, nil }

type passageirosFake struct {
	lista []passageiro.ViagemPassageiro
}

func (f *passageirosFake) Criar(db *gorm.DB, p *passageiro.ViagemPassageiro) error { return nil }
func (f *passageirosFake) BuscarPorID(db *gorm.DB, id uint) (*passageiro.ViagemPassageiro, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *passageirosFake) ListarPorViagem(db *gorm.DB, viagemID uint) ([]passageiro.ViagemPassageiro, error) {
	return f.lista, nil
}
func (f *passageirosFake) ListarPorViagemEOnibus(db *gorm.DB, viagemID, onibusID uint) ([]passageiro.ViagemPassageiro, error) {
	return f.lista, nil
}
func (f *passageirosFake) ListarPorCliente(db *gorm.DB, clienteID uint) ([]passageiro.ViagemPassageiro, error) {
	return nil, nil
}
func (f *passageirosFake) Atualizar(db *gorm.DB, id uint, novosDados *passageiro.ViagemPassageiro) error {
	return nil
}
func (f *passageirosFake) AtualizarPagamento(db *gorm.DB, id uint, status, forma string) error {
	return nil
}
func (f *passageirosFake) Deletar(db *gorm.DB, id uint) error { return nil }

type disparoRepoFake struct {
	templates       []Template
	logSalvo        *DisparoLog
	usoIncrementado int
}

func (f *disparoRepoFake) Criar(db *gorm.DB, t *Template) error { return nil }
func (f *disparoRepoFake) BuscarPorID(db *gorm.DB, id uint) (*Template, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *disparoRepoFake) BuscarVarios(db *gorm.DB, ids []uint) ([]Template, error) {
	return f.templates, nil
}
func (f *disparoRepoFake) ListarTodos(db *gorm.DB) ([]Template, error) { return nil, nil }
func (f *disparoRepoFake) ListarPorCategoria(db *gorm.DB, categoria string) ([]Template, error) {
	return nil, nil
}
func (f *disparoRepoFake) Atualizar(db *gorm.DB, id uint, novosDados *Template) error { return nil }
func (f *disparoRepoFake) Deletar(db *gorm.DB, id uint) error                         { return nil }
func (f *disparoRepoFake) IncrementarUso(db *gorm.DB, id uint, quantidade int) error {
	f.usoIncrementado += quantidade
	return nil
}
func (f *disparoRepoFake) SalvarLog(db *gorm.DB, l *DisparoLog) error {
	f.logSalvo = l
	return nil
}
func (f *disparoRepoFake) ListarLogs(db *gorm.DB) ([]DisparoLog, error) { return nil, nil }
func (f *disparoRepoFake) ListarLogsPorViagem(db *gorm.DB, viagemID uint) ([]DisparoLog, error) {
	return nil, nil
}

func TestExecutarContinuaAposFalhaEFiltraTelefones(t *testing.T) {
	var enviadosPara []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var corpo struct {
			To string `json:"to"`
		}
		json.NewDecoder(r.Body).Decode(&corpo)
		enviadosPara = append(enviadosPara, corpo.To)

		if corpo.To == "5521911112222" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MetaResponse{
				Error: &MetaErrorDetail{Message: "Invalid phone number", Code: 100},
			})
			return
		}
		json.NewEncoder(w).Encode(MetaResponse{
			MessagingProduct: "whatsapp",
			Messages:         []MetaMessage{{ID: "wamid.ok"}},
		})
	}))
	defer server.Close()

	v := &viagem.Viagem{
		Adversario: "Palmeiras",
		Campeonato: "Brasileirão",
		DataJogo:   time.Date(2026, 10, 12, 16, 0, 0, 0, time.UTC),
		DataSaida:  time.Date(2026, 10, 12, 6, 30, 0, 0, time.UTC),
	}
	v.ID = 9

	passageiros := []passageiro.ViagemPassageiro{
		{Cliente: cliente.Cliente{Nome: "Maria", Telefone: "21988887777"}, StatusPagamento: passageiro.PagamentoPago},
		{Cliente: cliente.Cliente{Nome: "João", Telefone: "21911112222"}, StatusPagamento: passageiro.PagamentoPendente},
		{Cliente: cliente.Cliente{Nome: "Ana", Telefone: "9999"}, StatusPagamento: passageiro.PagamentoPendente},
		{Cliente: cliente.Cliente{Nome: "Rui", Telefone: "21933334444"}, StatusPagamento: passageiro.PagamentoCancelado},
	}

	repo := &disparoRepoFake{
		templates: []Template{
			{Model: gorm.Model{ID: 3}, Nome: "aviso", Mensagem: "Olá {primeiro_nome}!"},
		},
	}
	d := &Disparador{
		Client:      novoClientDeTeste(server),
		Repository:  repo,
		Viagens:     &viagensFake{v: v},
		Passageiros: &passageirosFake{lista: passageiros},
	}

	resumo, err := d.Executar(context.Background(), 9, nil, []uint{3})
	if err != nil {
		t.Fatalf("lote não deveria falhar: %v", err)
	}

	// Maria e João contam como tentativas; Ana tem telefone curto demais e
	// Rui está cancelado
	if resumo.Tentados != 2 || resumo.Enviados != 1 || resumo.Falhados != 1 {
		t.Fatalf("resumo errado: tentados=%d enviados=%d falhados=%d",
			resumo.Tentados, resumo.Enviados, resumo.Falhados)
	}
	if resumo.Tentados != resumo.Enviados+resumo.Falhados {
		t.Fatalf("tentados (%d) deveria ser enviados (%d) + falhados (%d)",
			resumo.Tentados, resumo.Enviados, resumo.Falhados)
	}
	if resumo.Ignorados != 1 {
		t.Fatalf("esperava 1 ignorado por telefone inválido, veio %d", resumo.Ignorados)
	}
	if resumo.Filtro != "todos" {
		t.Fatalf("filtro deveria ser 'todos', veio %q", resumo.Filtro)
	}

	if len(enviadosPara) != 2 {
		t.Fatalf("provedor deveria receber 2 chamadas, recebeu %d: %v", len(enviadosPara), enviadosPara)
	}

	if repo.logSalvo == nil {
		t.Fatal("log do lote não foi gravado")
	}
	if len(repo.logSalvo.Itens) != 2 || repo.logSalvo.Enviados != 1 || repo.logSalvo.Falhados != 1 {
		t.Fatalf("log gravado errado: %d itens, enviados=%d falhados=%d",
			len(repo.logSalvo.Itens), repo.logSalvo.Enviados, repo.logSalvo.Falhados)
	}
	if repo.usoIncrementado != 2 {
		t.Fatalf("uso do template deveria subir 2, subiu %d", repo.usoIncrementado)
	}
}

func TestExecutarSemTemplates(t *testing.T) {
	d := &Disparador{
		Client:      &Client{},
		Repository:  &disparoRepoFake{},
		Viagens:     &viagensFake{v: &viagem.Viagem{}},
		Passageiros: &passageirosFake{},
	}

	if _, err := d.Executar(context.Background(), 1, nil, nil); err == nil {
		t.Fatal("lote sem templates deveria falhar")
	}
}

func TestVariaveisDoPassageiro(t *testing.T) {
	t.Setenv("SITE_URL", "https://caravanas.example.com")

	v := &viagem.Viagem{
		Adversario: "Palmeiras",
		Campeonato: "Brasileirão",
		DataJogo:   time.Date(2026, 10, 12, 16, 0, 0, 0, time.UTC),
		DataSaida:  time.Date(2026, 10, 12, 6, 30, 0, 0, time.UTC),
	}
	v.ID = 9

	p := passageiro.ViagemPassageiro{
		Cliente:        cliente.Cliente{Nome: "Maria da Silva", Telefone: "21998765432"},
		Valor:          380,
		Setor:          "Norte",
		CidadeEmbarque: "Niterói",
	}

	valores := variaveisDoPassageiro(v, p)

	esperados := map[string]string{
		"nome":            "Maria da Silva",
		"primeiro_nome":   "Maria",
		"adversario":      "Palmeiras",
		"campeonato":      "Brasileirão",
		"data_jogo":       "12/10/2026",
		"data_saida":      "12/10/2026 às 06:30",
		"valor":           "R$ 380,00",
		"setor":           "Norte",
		"cidade_embarque": "Niterói",
		"link":            "https://caravanas.example.com/cadastro-publico?viagem=9",
	}
	for chave, esperado := range esperados {
		if valores[chave] != esperado {
			t.Errorf("variável %q = %q, esperava %q", chave, valores[chave], esperado)
		}
	}
}

func TestJuntarIDs(t *testing.T) {
	if got := juntarIDs([]uint{3, 7, 11}); got != "3,7,11" {
		t.Fatalf("juntarIDs = %q", got)
	}
	if got := juntarIDs(nil); got != "" {
		t.Fatalf("juntarIDs(nil) = %q", got)
	}
}
