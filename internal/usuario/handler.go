package usuario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RotaDoTorcedor/api-caravanas/internal/auth"
	"github.com/RotaDoTorcedor/api-caravanas/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createUsuarioRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Senha    string `json:"senha"`
	IsAdmin  bool   `json:"isAdmin"`
}

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

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(user.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID, user.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token":                 token,
		"precisaRedefinirSenha": user.PrecisaRedefinirSenha,
	})
}

// CriarUsuario cadastra um novo usuário do sistema (somente admin)
func (h *Handler) CriarUsuario(w http.ResponseWriter, r *http.Request) {
	var req createUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "email é obrigatório", http.StatusBadRequest)
		return
	}

	// Sem senha no payload, gera uma temporária que deve ser trocada no
	// primeiro acesso
	senha := req.Senha
	temporaria := ""
	if senha == "" {
		gerada, err := utils.GerarSenhaTemporaria()
		if err != nil {
			http.Error(w, "erro ao gerar senha", http.StatusInternalServerError)
			return
		}
		senha = gerada
		temporaria = gerada
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nome:                  req.Nome,
		Email:                 req.Email,
		Telefone:              req.Telefone,
		Senha:                 hash,
		PrecisaRedefinirSenha: temporaria != "",
		IsAdmin:               req.IsAdmin,
	}

	if err := h.Repository.Salvar(h.DB, &u); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	resposta := map[string]interface{}{"usuario": u}
	if temporaria != "" {
		resposta["senhaTemporaria"] = temporaria
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resposta)
}

// ListarUsuarios retorna todos os usuários (somente admin)
func (h *Handler) ListarUsuarios(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar usuários", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(usuarios)
}

// DeletarUsuario remove um usuário (somente admin)
func (h *Handler) DeletarUsuario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("usuário excluído com sucesso"))
}

type alterarSenhaRequest struct {
	SenhaAtual string `json:"senhaAtual"`
	SenhaNova  string `json:"senhaNova"`
}

// AlterarSenha troca a senha do usuário logado e limpa a flag de
// redefinição pendente
func (h *Handler) AlterarSenha(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUserID).(uint)

	var req alterarSenhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if len(req.SenhaNova) < 6 {
		http.Error(w, "a nova senha deve ter pelo menos 6 caracteres", http.StatusBadRequest)
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	if !utils.VerificarSenha(u.Senha, req.SenhaAtual) {
		http.Error(w, "senha atual incorreta", http.StatusUnauthorized)
		return
	}

	hash, err := utils.HashSenha(req.SenhaNova)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}
	u.Senha = hash
	u.PrecisaRedefinirSenha = false

	if err := h.Repository.Salvar(h.DB, u); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("senha alterada com sucesso"))
}

// Me retorna o usuário logado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.CtxUserID).(uint)

	u, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}
