package onibus

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB, repository e storage de imagens
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Storage    *Storage
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, storage *Storage) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Storage:    storage,
	}
}

// CriarOnibus cadastra um novo ônibus
func (h *Handler) CriarOnibus(w http.ResponseWriter, r *http.Request) {
	var o Onibus
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if o.Empresa == "" || o.Tipo == "" {
		http.Error(w, "empresa e tipo são obrigatórios", http.StatusBadRequest)
		return
	}
	if o.Capacidade <= 0 {
		http.Error(w, "capacidade deve ser maior que zero", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Criar(h.DB, &o); err != nil {
		http.Error(w, "erro ao salvar ônibus", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

// ListarOnibus retorna todos os ônibus
func (h *Handler) ListarOnibus(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar ônibus", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// BuscarPorID retorna um ônibus pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "ônibus não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// AtualizarOnibus altera dados de um ônibus existente
func (h *Handler) AtualizarOnibus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Onibus
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "ônibus não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar ônibus", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ônibus atualizado com sucesso"))
}

// DeletarOnibus remove um ônibus
func (h *Handler) DeletarOnibus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir ônibus", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ônibus excluído com sucesso"))
}

// UploadImagem recebe um multipart e associa a URL gravada ao ônibus
func (h *Handler) UploadImagem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "ônibus não encontrado", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "arquivo inválido", http.StatusBadRequest)
		return
	}
	_, header, err := r.FormFile("imagem")
	if err != nil {
		http.Error(w, "campo 'imagem' ausente", http.StatusBadRequest)
		return
	}

	url, err := h.Storage.UploadImagem(header, "onibus")
	if err != nil {
		http.Error(w, "erro ao gravar imagem", http.StatusInternalServerError)
		return
	}

	img := OnibusImage{OnibusID: uint(id), URL: url}
	if err := h.Repository.AdicionarImagem(h.DB, &img); err != nil {
		http.Error(w, "erro ao registrar imagem", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(img)
}

// RemoverImagem exclui o registro da imagem
func (h *Handler) RemoverImagem(w http.ResponseWriter, r *http.Request) {
	imgID, err := strconv.Atoi(mux.Vars(r)["imagemId"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.RemoverImagem(h.DB, uint(imgID)); err != nil {
		http.Error(w, "erro ao remover imagem", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("imagem removida com sucesso"))
}
