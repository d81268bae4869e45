package pagamento

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"strconv"

	"github.com/RotaDoTorcedor/api-caravanas/internal/viagem"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"gorm.io/gorm"
)

type criarCheckoutRequest struct {
	ViagemID  uint    `json:"tripId"`
	ClienteID *uint   `json:"clientId"`
	Valor     float64 `json:"price"`
	Descricao string  `json:"description"`
}

type verificarRequest struct {
	SessionID string `json:"sessionId"`
}

// Handler encapsula DB, repository e o client do Stripe. O client é
// injetado na construção em vez de lido de um singleton global.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Stripe     *stripe.Client
	Viagens    viagem.Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, sc *stripe.Client) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Stripe:     sc,
		Viagens:    viagem.NewRepository(),
	}
}

// CriarCheckout cria uma sessão de pagamento hospedada e grava o
// pagamento como pendente. Devolve a URL de redirecionamento.
func (h *Handler) CriarCheckout(w http.ResponseWriter, r *http.Request) {
	var req criarCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		escreverErro(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if req.ViagemID == 0 || req.Valor <= 0 {
		escreverErro(w, http.StatusBadRequest, "tripId e price são obrigatórios")
		return
	}
	if h.Stripe == nil {
		escreverErro(w, http.StatusInternalServerError, "STRIPE_SECRET_KEY não configurada")
		return
	}

	v, err := h.Viagens.BuscarPorID(h.DB, req.ViagemID)
	if err != nil {
		escreverErro(w, http.StatusInternalServerError, fmt.Sprintf("viagem %d não encontrada", req.ViagemID))
		return
	}

	descricao := req.Descricao
	if descricao == "" {
		descricao = fmt.Sprintf("Caravana: Flamengo x %s", v.Adversario)
	}
	centavos := int64(math.Round(req.Valor * 100))

	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}

	clienteID := uint(0)
	if req.ClienteID != nil {
		clienteID = *req.ClienteID
	}

	params := &stripe.CheckoutSessionCreateParams{
		Mode:       stripe.String("payment"),
		SuccessURL: stripe.String(siteURL + "/pagamento/sucesso?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(siteURL + "/pagamento/cancelado"),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency:   stripe.String("brl"),
					UnitAmount: stripe.Int64(centavos),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(descricao),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"viagemId":  fmt.Sprint(req.ViagemID),
			"clienteId": fmt.Sprint(clienteID),
		},
	}
	// Chave de idempotência derivada de viagem+cliente+valor: repetição da
	// requisição reaproveita a sessão em vez de criar uma duplicada.
	params.Params = stripe.Params{
		IdempotencyKey: stripe.String(fmt.Sprintf("viagem:%d:cliente:%d:valor:%d", req.ViagemID, clienteID, centavos)),
	}

	session, err := h.Stripe.V1CheckoutSessions.Create(r.Context(), params)
	if err != nil {
		log.Printf("erro ao criar sessão de checkout: %v", err)
		escreverErro(w, http.StatusInternalServerError, "erro ao criar sessão de pagamento")
		return
	}

	p := Pagamento{
		ViagemID:   req.ViagemID,
		ClienteID:  req.ClienteID,
		Valor:      req.Valor,
		Moeda:      "brl",
		Status:     StatusPendente,
		SessionID:  session.ID,
		Referencia: uuid.NewString(),
		Descricao:  descricao,
	}
	if err := h.Repository.Criar(h.DB, &p); err != nil {
		log.Printf("erro ao gravar pagamento pendente: %v", err)
		escreverErro(w, http.StatusInternalServerError, "erro ao registrar pagamento")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": session.URL})
}

// VerificarPagamento consulta o status atual da sessão no provedor e
// atualiza a linha local quando pago. Não há laço de reconciliação.
func (h *Handler) VerificarPagamento(w http.ResponseWriter, r *http.Request) {
	var req verificarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		escreverErro(w, http.StatusBadRequest, "sessionId é obrigatório")
		return
	}
	if h.Stripe == nil {
		escreverErro(w, http.StatusInternalServerError, "STRIPE_SECRET_KEY não configurada")
		return
	}

	session, err := h.Stripe.V1CheckoutSessions.Retrieve(r.Context(), req.SessionID, nil)
	if err != nil {
		log.Printf("erro ao consultar sessão %s: %v", req.SessionID, err)
		escreverErro(w, http.StatusInternalServerError, "erro ao consultar pagamento")
		return
	}

	isPaid := session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid
	if isPaid {
		if err := h.Repository.AtualizarStatus(h.DB, req.SessionID, StatusPago); err != nil {
			log.Printf("erro ao atualizar pagamento %s: %v", req.SessionID, err)
		}
	} else if session.Status == stripe.CheckoutSessionStatusExpired {
		if err := h.Repository.AtualizarStatus(h.DB, req.SessionID, StatusExpirado); err != nil {
			log.Printf("erro ao atualizar pagamento %s: %v", req.SessionID, err)
		}
	}

	cliente := ""
	if session.CustomerDetails != nil {
		cliente = session.CustomerDetails.Name
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":   string(session.PaymentStatus),
		"customer": cliente,
		"amount":   session.AmountTotal,
		"isPaid":   isPaid,
	})
}

// ListarPagamentos retorna os pagamentos registrados, com filtro
// opcional ?viagemId=
func (h *Handler) ListarPagamentos(w http.ResponseWriter, r *http.Request) {
	var (
		pagamentos []Pagamento
		err        error
	)
	if viagemParam := r.URL.Query().Get("viagemId"); viagemParam != "" {
		viagemID, convErr := strconv.Atoi(viagemParam)
		if convErr != nil {
			escreverErro(w, http.StatusBadRequest, "viagemId inválido")
			return
		}
		pagamentos, err = h.Repository.ListarPorViagem(h.DB, uint(viagemID))
	} else {
		pagamentos, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		escreverErro(w, http.StatusInternalServerError, "erro ao listar pagamentos")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pagamentos)
}

func escreverErro(w http.ResponseWriter, status int, mensagem string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": mensagem})
}
