package stub

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-client/internal/audit"
	"github.com/BruksfildServices01/agenda-client/internal/config"
	"github.com/BruksfildServices01/agenda-client/internal/middleware"
)

// Server é um espelho em memória da API de agendamento, com o mesmo formato
// de rotas, envelopes e erros que o app consome. Serve para rodar o cliente
// sem backend e para os testes de integração do módulo.
type Server struct {
	cfg   *config.Config
	store *store
	log   zerolog.Logger
	audit *audit.Dispatcher
}

func NewServer(cfg *config.Config, log zerolog.Logger) *Server {
	return &Server{
		cfg:   cfg,
		store: newStore(),
		log:   log,
		audit: audit.NewDispatcher(audit.New(log)),
	}
}

// Engine monta o roteador completo.
func (s *Server) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	{
		api.POST("/login", s.Login)
		api.POST("/register", s.Register)

		api.GET("/categorias-servico", s.ListCategories)
		api.POST("/categorias-servico/:id/estabelecimentos", s.ListEstablishments)
		api.POST("/estabelecimento/:id/servicos", s.GetEstablishment)
		api.POST("/estabelecimento/:id/horarios-disponiveis", s.AvailableSlots)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(s.cfg))
		{
			secured.POST("/estabelecimento/:id/lock-horario", s.LockSlot)

			secured.GET("/agendamentos", s.ListAppointments)
			secured.GET("/agendamentos/:id/confirmar", s.ConfirmAppointment)
			secured.GET("/agendamentos/:id/cancelar", s.CancelAppointment)

			secured.GET("/user", s.GetUser)
			secured.GET("/enderecos", s.ListAddresses)
			secured.POST("/enderecos", s.CreateAddress)
			secured.PUT("/enderecos/:id", s.UpdateAddress)
			secured.DELETE("/enderecos/:id", s.DeleteAddress)

			secured.POST("/perfil/raio_busca", s.UpdateSearchRadius)
			secured.POST("/perfil/aviso_24h", s.SetReminder24h)
			secured.POST("/perfil/aviso_2h", s.SetReminder2h)
			secured.POST("/perfil/edit_profile", s.EditProfile)
		}
	}

	return r
}

func (s *Server) userID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}
