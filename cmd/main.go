package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/RotaDoTorcedor/api-caravanas/internal/auth"
	"github.com/RotaDoTorcedor/api-caravanas/internal/cache"
	"github.com/RotaDoTorcedor/api-caravanas/internal/cliente"
	"github.com/RotaDoTorcedor/api-caravanas/internal/estatisticas"
	"github.com/RotaDoTorcedor/api-caravanas/internal/onibus"
	"github.com/RotaDoTorcedor/api-caravanas/internal/pagamento"
	"github.com/RotaDoTorcedor/api-caravanas/internal/passageiro"
	"github.com/RotaDoTorcedor/api-caravanas/internal/usuario"
	"github.com/RotaDoTorcedor/api-caravanas/internal/utils/db"
	"github.com/RotaDoTorcedor/api-caravanas/internal/viagem"
	"github.com/RotaDoTorcedor/api-caravanas/internal/whatsapp"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/stripe/stripe-go/v82"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&cliente.Cliente{},
		&viagem.Viagem{},
		&viagem.Passeio{},
		&onibus.Onibus{},
		&onibus.OnibusImage{},
		&passageiro.ViagemPassageiro{},
		&whatsapp.Template{},
		&whatsapp.DisparoLog{},
		&whatsapp.DisparoItem{},
		&pagamento.Pagamento{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Clients externos, injetados nos handlers
	var stripeClient *stripe.Client
	if key := os.Getenv("STRIPE_SECRET_KEY"); key != "" {
		stripeClient = stripe.NewClient(key)
	} else {
		log.Println("STRIPE_SECRET_KEY não definida; checkout indisponível")
	}

	metaClient, err := whatsapp.NewClientFromEnv()
	if err != nil {
		log.Println("WhatsApp não configurado:", err)
	}

	rdb := cache.NewRedisClient()
	if rdb == nil {
		log.Println("Redis indisponível; dashboard sem cache")
	}

	storage, err := onibus.NewStorage()
	if err != nil {
		log.Fatal("Erro ao preparar storage de imagens:", err)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	clienteHandler := cliente.NewHandler(database)
	viagemHandler := viagem.NewHandler(database)
	onibusHandler := onibus.NewHandler(database, storage)
	passageiroHandler := passageiro.NewHandler(database)
	whatsappHandler := whatsapp.NewHandler(database, whatsapp.NewDisparador(database, metaClient))
	pagamentoHandler := pagamento.NewHandler(database, stripeClient)
	estatisticasHandler := estatisticas.NewHandler(database, rdb)

	// Router
	r := mux.NewRouter()

	// Rotas públicas (site e checkout)
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/cadastro-publico", passageiroHandler.CadastroPublico).Methods("POST")
	r.HandleFunc("/cep/{cep}", clienteHandler.BuscarCEP).Methods("GET")
	r.HandleFunc("/site/viagens", viagemHandler.ListarViagens).Methods("GET")
	r.HandleFunc("/create-checkout", pagamentoHandler.CriarCheckout).Methods("POST")
	r.HandleFunc("/verify-payment", pagamentoHandler.VerificarPagamento).Methods("POST")

	// Rotas autenticadas do back-office
	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/me", usuarioHandler.Me).Methods("GET")
	api.HandleFunc("/me/senha", usuarioHandler.AlterarSenha).Methods("PUT")

	// Clientes
	api.HandleFunc("/clientes", clienteHandler.CriarCliente).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.ListarClientes).Methods("GET")
	api.HandleFunc("/clientes/top", clienteHandler.TopClientes).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.AtualizarCliente).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.DeletarCliente).Methods("DELETE")
	api.HandleFunc("/clientes/{id}/viagens", passageiroHandler.ListarPorCliente).Methods("GET")

	// Viagens
	api.HandleFunc("/viagens", viagemHandler.CriarViagem).Methods("POST")
	api.HandleFunc("/viagens", viagemHandler.ListarViagens).Methods("GET")
	api.HandleFunc("/viagens/{id}", viagemHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/viagens/{id}", viagemHandler.AtualizarViagem).Methods("PUT")
	api.HandleFunc("/viagens/{id}", viagemHandler.DeletarViagem).Methods("DELETE")
	api.HandleFunc("/viagens/{id}/ocupacao", viagemHandler.Ocupacao).Methods("GET")

	// Passageiros
	api.HandleFunc("/viagens/{id}/passageiros", passageiroHandler.Inscrever).Methods("POST")
	api.HandleFunc("/viagens/{id}/passageiros", passageiroHandler.ListarPorViagem).Methods("GET")
	api.HandleFunc("/viagens/{id}/lista-embarque", passageiroHandler.ListaEmbarque).Methods("GET")
	api.HandleFunc("/passageiros/{passageiroId}", passageiroHandler.AtualizarPassageiro).Methods("PUT")
	api.HandleFunc("/passageiros/{passageiroId}/pagamento", passageiroHandler.AtualizarPagamento).Methods("PATCH")
	api.HandleFunc("/passageiros/{passageiroId}", passageiroHandler.DeletarPassageiro).Methods("DELETE")

	// Ônibus
	api.HandleFunc("/onibus", onibusHandler.CriarOnibus).Methods("POST")
	api.HandleFunc("/onibus", onibusHandler.ListarOnibus).Methods("GET")
	api.HandleFunc("/onibus/{id}", onibusHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/onibus/{id}", onibusHandler.AtualizarOnibus).Methods("PUT")
	api.HandleFunc("/onibus/{id}", onibusHandler.DeletarOnibus).Methods("DELETE")
	api.HandleFunc("/onibus/{id}/imagens", onibusHandler.UploadImagem).Methods("POST")
	api.HandleFunc("/onibus/{id}/imagens/{imagemId}", onibusHandler.RemoverImagem).Methods("DELETE")

	// Templates e disparos de WhatsApp
	api.HandleFunc("/templates", whatsappHandler.CriarTemplate).Methods("POST")
	api.HandleFunc("/templates", whatsappHandler.ListarTemplates).Methods("GET")
	api.HandleFunc("/templates/{id}", whatsappHandler.BuscarTemplate).Methods("GET")
	api.HandleFunc("/templates/{id}", whatsappHandler.AtualizarTemplate).Methods("PUT")
	api.HandleFunc("/templates/{id}", whatsappHandler.DeletarTemplate).Methods("DELETE")
	api.HandleFunc("/viagens/{id}/disparos", whatsappHandler.Disparar).Methods("POST")
	api.HandleFunc("/viagens/{id}/disparos", whatsappHandler.ListarDisparos).Methods("GET")

	// Pagamentos e dashboard
	api.HandleFunc("/pagamentos", pagamentoHandler.ListarPagamentos).Methods("GET")
	api.HandleFunc("/dashboard/resumo", estatisticasHandler.Resumo).Methods("GET")

	// Rotas restritas a administradores
	admin := api.PathPrefix("/usuarios").Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("", usuarioHandler.CriarUsuario).Methods("POST")
	admin.HandleFunc("", usuarioHandler.ListarUsuarios).Methods("GET")
	admin.HandleFunc("/{id}", usuarioHandler.DeletarUsuario).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	fmt.Printf("Servidor rodando em http://localhost:%s\n", porta)
	log.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}
