package passageiro

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RotaDoTorcedor/api-caravanas/internal/cliente"
	"github.com/RotaDoTorcedor/api-caravanas/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type inscreverRequest struct {
	ClienteID      uint    `json:"clienteId"`
	OnibusID       *uint   `json:"onibusId"`
	Valor          float64 `json:"valor"`
	Desconto       float64 `json:"desconto"`
	FormaPagamento string  `json:"formaPagamento"`
	Setor          string  `json:"setor"`
	CidadeEmbarque string  `json:"cidadeEmbarque"`
	Passeios       string  `json:"passeios"`
	Observacoes    string  `json:"observacoes"`
}

type atualizarPagamentoRequest struct {
	StatusPagamento string `json:"statusPagamento"`
	FormaPagamento  string `json:"formaPagamento"`
}

type cadastroPublicoRequest struct {
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	Telefone       string `json:"telefone"`
	Email          string `json:"email"`
	DataNascimento string `json:"dataNascimento"`
	CEP            string `json:"cep"`
	Endereco       string `json:"endereco"`
	Numero         string `json:"numero"`
	Bairro         string `json:"bairro"`
	Cidade         string `json:"cidade"`
	Estado         string `json:"estado"`
	ComoConheceu   string `json:"comoConheceu"`

	ViagemID       uint   `json:"viagemId"`
	CidadeEmbarque string `json:"cidadeEmbarque"`
	Setor          string `json:"setor"`
	Passeios       string `json:"passeios"`
}

// Handler encapsula DB e repositories
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Clientes   cliente.Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Clientes:   cliente.NewRepository(),
	}
}

// Inscrever adiciona um cliente como passageiro de uma viagem
func (h *Handler) Inscrever(w http.ResponseWriter, r *http.Request) {
	viagemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req inscreverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.ClienteID == 0 {
		http.Error(w, "clienteId é obrigatório", http.StatusBadRequest)
		return
	}
	if _, err := h.Clientes.BuscarPorID(h.DB, req.ClienteID); err != nil {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return
	}

	p := ViagemPassageiro{
		ViagemID:        uint(viagemID),
		ClienteID:       req.ClienteID,
		OnibusID:        req.OnibusID,
		Valor:           req.Valor,
		Desconto:        req.Desconto,
		StatusPagamento: PagamentoPendente,
		FormaPagamento:  req.FormaPagamento,
		Setor:           req.Setor,
		CidadeEmbarque:  req.CidadeEmbarque,
		Passeios:        req.Passeios,
		Observacoes:     req.Observacoes,
	}

	if err := h.Repository.Criar(h.DB, &p); err != nil {
		http.Error(w, "erro ao inscrever passageiro", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// ListarPorViagem retorna os passageiros de uma viagem, com filtro
// opcional ?onibusId=
func (h *Handler) ListarPorViagem(w http.ResponseWriter, r *http.Request) {
	viagemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var passageiros []ViagemPassageiro
	if onibusParam := r.URL.Query().Get("onibusId"); onibusParam != "" {
		onibusID, convErr := strconv.Atoi(onibusParam)
		if convErr != nil {
			http.Error(w, "onibusId inválido", http.StatusBadRequest)
			return
		}
		passageiros, err = h.Repository.ListarPorViagemEOnibus(h.DB, uint(viagemID), uint(onibusID))
	} else {
		passageiros, err = h.Repository.ListarPorViagem(h.DB, uint(viagemID))
	}
	if err != nil {
		http.Error(w, "erro ao listar passageiros", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(passageiros)
}

// ListaEmbarque retorna os passageiros agrupados por cidade de embarque
func (h *Handler) ListaEmbarque(w http.ResponseWriter, r *http.Request) {
	viagemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	passageiros, err := h.Repository.ListarPorViagem(h.DB, uint(viagemID))
	if err != nil {
		http.Error(w, "erro ao listar passageiros", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AgruparPorCidade(passageiros))
}

// ListarPorCliente retorna o histórico de viagens de um cliente
func (h *Handler) ListarPorCliente(w http.ResponseWriter, r *http.Request) {
	clienteID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	passageiros, err := h.Repository.ListarPorCliente(h.DB, uint(clienteID))
	if err != nil {
		http.Error(w, "erro ao listar viagens do cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(passageiros)
}

// AtualizarPassageiro altera os dados de inscrição de um passageiro
func (h *Handler) AtualizarPassageiro(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["passageiroId"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados ViagemPassageiro
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "passageiro não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar passageiro", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("passageiro atualizado com sucesso"))
}

// AtualizarPagamento muda o status de pagamento de um passageiro
func (h *Handler) AtualizarPagamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["passageiroId"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req atualizarPagamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	switch req.StatusPagamento {
	case PagamentoPendente, PagamentoPago, PagamentoCancelado:
	default:
		http.Error(w, "status de pagamento inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.AtualizarPagamento(h.DB, uint(id), req.StatusPagamento, req.FormaPagamento); err != nil {
		http.Error(w, "erro ao atualizar pagamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pagamento atualizado com sucesso"))
}

// DeletarPassageiro cancela a inscrição (soft delete)
func (h *Handler) DeletarPassageiro(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["passageiroId"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao remover passageiro", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("passageiro removido com sucesso"))
}

// CadastroPublico recebe o formulário aberto do site: cria o cliente e,
// quando informada uma viagem aberta, já o inscreve como passageiro.
// Rota sem autenticação.
func (h *Handler) CadastroPublico(w http.ResponseWriter, r *http.Request) {
	var req cadastroPublicoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" || req.Telefone == "" {
		http.Error(w, "nome e telefone são obrigatórios", http.StatusBadRequest)
		return
	}

	// Reaproveita o cadastro se o CPF já existir
	var c *cliente.Cliente
	if cpf := utils.SomenteDigitos(req.CPF); cpf != "" {
		if existente, err := h.Clientes.BuscarPorCPF(h.DB, cpf); err == nil {
			c = existente
		}
	}
	primeiraViagem := c == nil
	if c == nil {
		c = &cliente.Cliente{
			Nome:           req.Nome,
			CPF:            utils.SomenteDigitos(req.CPF),
			Telefone:       utils.SomenteDigitos(req.Telefone),
			Email:          req.Email,
			DataNascimento: req.DataNascimento,
			CEP:            utils.SomenteDigitos(req.CEP),
			Endereco:       req.Endereco,
			Numero:         req.Numero,
			Bairro:         req.Bairro,
			Cidade:         req.Cidade,
			Estado:         req.Estado,
			ComoConheceu:   req.ComoConheceu,
		}
		if err := h.Clientes.Criar(h.DB, c); err != nil {
			http.Error(w, "erro ao salvar cliente", http.StatusInternalServerError)
			return
		}
	}

	resposta := map[string]interface{}{"cliente": c}

	if req.ViagemID > 0 {
		var v struct {
			Status              string
			ValorPadrao         float64
			ValorPrimeiraViagem float64
		}
		err := h.DB.Table("viagens").
			Select("status, valor_padrao, valor_primeira_viagem").
			Where("id = ? AND deleted_at IS NULL", req.ViagemID).
			Take(&v).Error
		if err != nil {
			http.Error(w, "viagem não encontrada", http.StatusNotFound)
			return
		}
		if v.Status != "aberta" {
			http.Error(w, "viagem não está aberta para inscrições", http.StatusConflict)
			return
		}

		valor := v.ValorPadrao
		if primeiraViagem && v.ValorPrimeiraViagem > 0 {
			valor = v.ValorPrimeiraViagem
		}

		p := ViagemPassageiro{
			ViagemID:        req.ViagemID,
			ClienteID:       c.ID,
			Valor:           valor,
			StatusPagamento: PagamentoPendente,
			Setor:           req.Setor,
			CidadeEmbarque:  req.CidadeEmbarque,
			Passeios:        req.Passeios,
		}
		if err := h.Repository.Criar(h.DB, &p); err != nil {
			http.Error(w, "erro ao inscrever passageiro", http.StatusInternalServerError)
			return
		}
		resposta["passageiro"] = p
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resposta)
}
