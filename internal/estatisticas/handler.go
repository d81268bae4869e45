package estatisticas

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/RotaDoTorcedor/api-caravanas/internal/cliente"
	"github.com/RotaDoTorcedor/api-caravanas/internal/viagem"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const chaveResumo = "dashboard:resumo"
const ttlResumo = 60 * time.Second

// Handler monta os números do dashboard. O client Redis pode ser nil;
// nesse caso toda requisição consulta o banco direto.
type Handler struct {
	DB         *gorm.DB
	Redis      *redis.Client
	Repository Repository
	Viagens    viagem.Repository
	Clientes   cliente.Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, rdb *redis.Client) *Handler {
	return &Handler{
		DB:         db,
		Redis:      rdb,
		Repository: NewRepository(),
		Viagens:    viagem.NewRepository(),
		Clientes:   cliente.NewRepository(),
	}
}

// Resumo devolve os cards do dashboard, com cache de 60s no Redis
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.Redis != nil {
		if cacheado, err := h.Redis.Get(ctx, chaveResumo).Result(); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cacheado))
			return
		}
	}

	resumo, err := h.montarResumo()
	if err != nil {
		http.Error(w, "erro ao montar resumo", http.StatusInternalServerError)
		return
	}

	corpo, err := json.Marshal(resumo)
	if err != nil {
		http.Error(w, "erro ao montar resumo", http.StatusInternalServerError)
		return
	}
	if h.Redis != nil {
		if err := h.Redis.Set(ctx, chaveResumo, corpo, ttlResumo).Err(); err != nil {
			log.Printf("erro ao gravar cache do resumo: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(corpo)
}

func (h *Handler) montarResumo() (*ResumoDTO, error) {
	totalClientes, err := h.Repository.ContarClientes(h.DB)
	if err != nil {
		return nil, err
	}
	viagensAbertas, err := h.Repository.ContarViagensPorStatus(h.DB, viagem.StatusAberta)
	if err != nil {
		return nil, err
	}
	receita, pagantes, err := h.Repository.ReceitaConfirmada(h.DB)
	if err != nil {
		return nil, err
	}

	// Uma única consulta agregada cobre a lotação de todas as viagens
	viagens, err := h.Viagens.ListarPorStatus(h.DB, viagem.StatusAberta)
	if err != nil {
		return nil, err
	}
	contagem, err := h.Viagens.ContagemConfirmados(h.DB)
	if err != nil {
		return nil, err
	}
	ocupacoes := make([]viagem.OcupacaoDTO, 0, len(viagens))
	for _, v := range viagens {
		confirmados := contagem[v.ID]
		ocupacoes = append(ocupacoes, viagem.OcupacaoDTO{
			ViagemID:    v.ID,
			Adversario:  v.Adversario,
			Confirmados: confirmados,
			Capacidade:  v.CapacidadeOnibus,
			Percentual:  viagem.CalcularPercentualOcupacao(confirmados, v.CapacidadeOnibus),
		})
	}

	topClientes, err := h.Clientes.TopClientes(h.DB, 5)
	if err != nil {
		return nil, err
	}

	return &ResumoDTO{
		TotalClientes:     totalClientes,
		ViagensAbertas:    viagensAbertas,
		ReceitaConfirmada: receita,
		PassageirosPagos:  pagantes,
		Ocupacoes:         ocupacoes,
		TopClientes:       topClientes,
	}, nil
}
