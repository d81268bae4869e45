package whatsapp

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type dispararRequest struct {
	TemplateIDs []uint `json:"templateIds"`
	OnibusID    *uint  `json:"onibusId"`
}

// Handler encapsula DB, repository e o disparador
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Disparador *Disparador
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, disparador *Disparador) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Disparador: disparador,
	}
}

// CriarTemplate cadastra um template de mensagem
func (h *Handler) CriarTemplate(w http.ResponseWriter, r *http.Request) {
	var t Template
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if t.Nome == "" || t.Mensagem == "" {
		http.Error(w, "nome e mensagem são obrigatórios", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Criar(h.DB, &t); err != nil {
		http.Error(w, "erro ao salvar template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}

// ListarTemplates retorna todos os templates, com filtro opcional ?categoria=
func (h *Handler) ListarTemplates(w http.ResponseWriter, r *http.Request) {
	categoria := r.URL.Query().Get("categoria")

	var (
		templates []Template
		err       error
	)
	if categoria != "" {
		templates, err = h.Repository.ListarPorCategoria(h.DB, categoria)
	} else {
		templates, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar templates", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(templates)
}

// BuscarTemplate retorna um template pelo ID
func (h *Handler) BuscarTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "template não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// AtualizarTemplate altera um template existente
func (h *Handler) AtualizarTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Template
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "template não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar template", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("template atualizado com sucesso"))
}

// DeletarTemplate remove um template
func (h *Handler) DeletarTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir template", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("template excluído com sucesso"))
}

// Disparar executa um lote de envio para os passageiros da viagem
func (h *Handler) Disparar(w http.ResponseWriter, r *http.Request) {
	viagemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req dispararRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	resumo, err := h.Disparador.Executar(r.Context(), uint(viagemID), req.OnibusID, req.TemplateIDs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumo)
}

// ListarDisparos retorna o histórico de lotes de uma viagem
func (h *Handler) ListarDisparos(w http.ResponseWriter, r *http.Request) {
	viagemID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	logs, err := h.Repository.ListarLogsPorViagem(h.DB, uint(viagemID))
	if err != nil {
		http.Error(w, "erro ao listar disparos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(logs)
}
