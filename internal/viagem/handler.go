package viagem

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

// CriarViagem cadastra uma nova viagem
func (h *Handler) CriarViagem(w http.ResponseWriter, r *http.Request) {
	var v Viagem
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if v.Adversario == "" {
		http.Error(w, "adversário é obrigatório", http.StatusBadRequest)
		return
	}
	if v.CapacidadeOnibus <= 0 {
		http.Error(w, "capacidade do ônibus deve ser maior que zero", http.StatusBadRequest)
		return
	}
	if v.Status == "" {
		v.Status = StatusAberta
	}

	if err := h.Repository.Criar(h.DB, &v); err != nil {
		http.Error(w, "erro ao salvar viagem", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// ListarViagens retorna todas as viagens, com filtro opcional ?status=
func (h *Handler) ListarViagens(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	var (
		viagens []Viagem
		err     error
	)
	if status != "" {
		viagens, err = h.Repository.ListarPorStatus(h.DB, status)
	} else {
		viagens, err = h.Repository.ListarTodas(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar viagens", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(viagens)
}

// BuscarPorID retorna uma viagem pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "viagem não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// AtualizarViagem altera dados de uma viagem existente
func (h *Handler) AtualizarViagem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Viagem
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "viagem não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar viagem", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("viagem atualizada com sucesso"))
}

// DeletarViagem remove uma viagem
func (h *Handler) DeletarViagem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir viagem", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("viagem excluída com sucesso"))
}

// Ocupacao retorna a lotação de uma viagem
func (h *Handler) Ocupacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "viagem não encontrada", http.StatusNotFound)
		return
	}

	confirmados, err := h.Repository.ContarConfirmados(h.DB, v.ID)
	if err != nil {
		http.Error(w, "erro ao contar passageiros", http.StatusInternalServerError)
		return
	}

	dto := OcupacaoDTO{
		ViagemID:    v.ID,
		Adversario:  v.Adversario,
		Confirmados: confirmados,
		Capacidade:  v.CapacidadeOnibus,
		Percentual:  CalcularPercentualOcupacao(confirmados, v.CapacidadeOnibus),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto)
}
