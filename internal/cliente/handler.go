package cliente

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RotaDoTorcedor/api-caravanas/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// CriarCliente cadastra um novo cliente
func (h *Handler) CriarCliente(w http.ResponseWriter, r *http.Request) {
	var c Cliente
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if c.Nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}
	c.CPF = utils.SomenteDigitos(c.CPF)
	c.Telefone = utils.SomenteDigitos(c.Telefone)
	c.CEP = utils.SomenteDigitos(c.CEP)

	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarClientes retorna todos os clientes, com busca opcional via ?q=
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	termo := r.URL.Query().Get("q")

	var (
		clientes []Cliente
		err      error
	)
	if termo != "" {
		clientes, err = h.Repository.Buscar(h.DB, termo)
	} else {
		clientes, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clientes)
}

// BuscarPorID retorna um cliente pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// AtualizarCliente altera dados de um cliente existente
func (h *Handler) AtualizarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Cliente
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	dados.CPF = utils.SomenteDigitos(dados.CPF)
	dados.Telefone = utils.SomenteDigitos(dados.Telefone)
	dados.CEP = utils.SomenteDigitos(dados.CEP)

	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "cliente não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("cliente atualizado com sucesso"))
}

// DeletarCliente remove um cliente (soft delete)
func (h *Handler) DeletarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("cliente excluído com sucesso"))
}

// BuscarCEP consulta o endereço de um CEP no ViaCEP
func (h *Handler) BuscarCEP(w http.ResponseWriter, r *http.Request) {
	cep := mux.Vars(r)["cep"]
	endereco, err := utils.BuscarCEP(r.Context(), cep)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(endereco)
}

// TopClientes retorna o ranking dos clientes que mais viajaram
func (h *Handler) TopClientes(w http.ResponseWriter, r *http.Request) {
	limite, _ := strconv.Atoi(r.URL.Query().Get("limite"))
	ranking, err := h.Repository.TopClientes(h.DB, limite)
	if err != nil {
		http.Error(w, "erro ao montar ranking", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ranking)
}
