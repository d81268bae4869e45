package whatsapp

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/RotaDoTorcedor/api-caravanas/internal/passageiro"
	"github.com/RotaDoTorcedor/api-caravanas/internal/utils"
	"github.com/RotaDoTorcedor/api-caravanas/internal/viagem"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Disparador envia mensagens renderizadas para os passageiros de uma
// viagem, um por vez, e grava o resumo do lote.
type Disparador struct {
	DB          *gorm.DB
	Client      *Client
	Repository  Repository
	Viagens     viagem.Repository
	Passageiros passageiro.Repository
}

func NewDisparador(db *gorm.DB, client *Client) *Disparador {
	return &Disparador{
		DB:          db,
		Client:      client,
		Repository:  NewRepository(),
		Viagens:     viagem.NewRepository(),
		Passageiros: passageiro.NewRepository(),
	}
}

// Executar roda o lote: filtra passageiros com telefone válido, renderiza
// cada template por passageiro e envia sequencialmente. Falha de um envio
// não interrompe o lote; o resumo registra os totais parciais. Não há
// retentativa: envio falhado é terminal.
func (d *Disparador) Executar(ctx context.Context, viagemID uint, onibusID *uint, templateIDs []uint) (*ResumoDisparoDTO, error) {
	if d.Client == nil {
		return nil, fmt.Errorf("provedor de WhatsApp não configurado")
	}
	if len(templateIDs) == 0 {
		return nil, fmt.Errorf("nenhum template selecionado")
	}

	v, err := d.Viagens.BuscarPorID(d.DB, viagemID)
	if err != nil {
		return nil, fmt.Errorf("viagem não encontrada: %w", err)
	}

	templates, err := d.Repository.BuscarVarios(d.DB, templateIDs)
	if err != nil || len(templates) == 0 {
		return nil, fmt.Errorf("templates não encontrados")
	}

	var passageiros []passageiro.ViagemPassageiro
	filtro := "todos"
	if onibusID != nil {
		passageiros, err = d.Passageiros.ListarPorViagemEOnibus(d.DB, viagemID, *onibusID)
		filtro = fmt.Sprintf("onibus:%d", *onibusID)
	} else {
		passageiros, err = d.Passageiros.ListarPorViagem(d.DB, viagemID)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao listar passageiros: %w", err)
	}

	loteID := uuid.NewString()
	logRow := DisparoLog{
		LoteID:      loteID,
		ViagemID:    viagemID,
		OnibusID:    onibusID,
		TemplateIDs: juntarIDs(templateIDs),
		Filtro:      filtro,
	}

	ignorados := 0
	for _, p := range passageiros {
		if p.StatusPagamento == passageiro.PagamentoCancelado {
			continue
		}
		if !utils.TelefoneValido(p.Cliente.Telefone) {
			ignorados++
			continue
		}
		telefone := utils.NormalizarTelefone(p.Cliente.Telefone)
		valores := variaveisDoPassageiro(v, p)

		for _, t := range templates {
			mensagem := Render(t.Mensagem, valores)
			logRow.Tentados++

			resposta, sendErr := d.Client.EnviarTexto(ctx, telefone, mensagem)
			item := DisparoItem{
				PassageiroID: p.ID,
				TemplateID:   t.ID,
				Telefone:     telefone,
				Sucesso:      sendErr == nil,
				Resposta:     resposta,
			}
			if sendErr != nil {
				logRow.Falhados++
				log.Printf("erro ao enviar para %s: %v", telefone, sendErr)
			} else {
				logRow.Enviados++
			}
			logRow.Itens = append(logRow.Itens, item)
		}
	}

	if err := d.Repository.SalvarLog(d.DB, &logRow); err != nil {
		return nil, fmt.Errorf("erro ao gravar log do disparo: %w", err)
	}
	for _, t := range templates {
		if err := d.Repository.IncrementarUso(d.DB, t.ID, logRow.Tentados/len(templates)); err != nil {
			log.Printf("erro ao atualizar uso do template %d: %v", t.ID, err)
		}
	}

	return &ResumoDisparoDTO{
		LoteID:    loteID,
		ViagemID:  viagemID,
		Filtro:    filtro,
		Tentados:  logRow.Tentados,
		Enviados:  logRow.Enviados,
		Falhados:  logRow.Falhados,
		Ignorados: ignorados,
	}, nil
}

func variaveisDoPassageiro(v *viagem.Viagem, p passageiro.ViagemPassageiro) map[string]string {
	primeiroNome := p.Cliente.Nome
	if partes := strings.Fields(primeiroNome); len(partes) > 0 {
		primeiroNome = partes[0]
	}
	valores := map[string]string{
		"nome":            p.Cliente.Nome,
		"primeiro_nome":   primeiroNome,
		"adversario":      v.Adversario,
		"campeonato":      v.Campeonato,
		"data_jogo":       utils.FormatarData(v.DataJogo),
		"data_saida":      utils.FormatarDataHora(v.DataSaida),
		"valor":           utils.FormatarMoeda(int64(math.Round(p.Valor * 100))),
		"setor":           p.Setor,
		"cidade_embarque": p.CidadeEmbarque,
	}
	if site := os.Getenv("SITE_URL"); site != "" {
		valores["link"] = fmt.Sprintf("%s/cadastro-publico?viagem=%d", site, v.ID)
	}
	return valores
}

func juntarIDs(ids []uint) string {
	partes := make([]string, len(ids))
	for i, id := range ids {
		partes[i] = fmt.Sprint(id)
	}
	return strings.Join(partes, ",")
}
