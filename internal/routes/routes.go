package routes

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	"github.com/BruksfildServices01/barber-turnos/internal/auth"
	"github.com/BruksfildServices01/barber-turnos/internal/config"
	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/user"
	"github.com/BruksfildServices01/barber-turnos/internal/handlers"
	"github.com/BruksfildServices01/barber-turnos/internal/infra/mailer"
	"github.com/BruksfildServices01/barber-turnos/internal/infra/memory"
	"github.com/BruksfildServices01/barber-turnos/internal/infra/payment"
	infraRepo "github.com/BruksfildServices01/barber-turnos/internal/infra/repository"
	"github.com/BruksfildServices01/barber-turnos/internal/infra/storage"
	"github.com/BruksfildServices01/barber-turnos/internal/lock"
	"github.com/BruksfildServices01/barber-turnos/internal/middleware"
	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-turnos/internal/usecase/appointment"
	ucUser "github.com/BruksfildServices01/barber-turnos/internal/usecase/user"
	"github.com/BruksfildServices01/barber-turnos/internal/validators"
)

// Infra holds the optional backends opened by main. A nil DB selects the
// in-memory stores; a nil Redis selects the in-process barber lock.
type Infra struct {
	DB    *gorm.DB
	Redis *redis.Client
}

// ShopHours builds the business hours from the configuration.
func ShopHours(cfg *config.Config) domain.BusinessHours {
	hours := domain.DefaultBusinessHours(timezone.Location(cfg.ShopTimezone))
	hours.OpenHour = cfg.ShopOpenHour
	hours.CloseHour = cfg.ShopCloseHour
	return hours
}

// RegisterRoutes wires every component and mounts the API on r. The caller
// owns the returned dispatcher and must Close it on shutdown.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, infra Infra) (*audit.Dispatcher, error) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORSMiddleware(),
	)

	hours := ShopHours(cfg)
	loc := hours.Location

	// ======================================================
	// INFRA
	// ======================================================
	var (
		appointmentRepo domain.Repository
		userRepo        user.Repository
		auditLogger     *audit.Logger
		sinks           []audit.Sink
	)

	if infra.DB != nil {
		appointmentRepo = infraRepo.NewAppointmentGormRepository(infra.DB)
		userRepo = infraRepo.NewUserGormRepository(infra.DB)
		auditLogger = audit.New(infra.DB)
		sinks = append(sinks, auditLogger)
	} else {
		appointmentRepo = memory.NewAppointmentStore()
		userRepo = memory.NewUserStore()
		sinks = append(sinks, audit.LogSink{})
	}

	if cfg.SMTPEnabled() {
		sinks = append(sinks, audit.NewMailSink(mailer.New(cfg)))
	}
	auditDispatcher := audit.NewDispatcher(sinks...)

	var locker lock.Locker = lock.NewKeyedMutex()
	if infra.Redis != nil {
		locker = lock.NewRedisLocker(infra.Redis)
	}

	var objects storage.ObjectStore
	switch {
	case cfg.S3Enabled():
		objects = storage.NewS3Store(cfg)
	case infra.DB == nil:
		objects = storage.NewMemoryStore()
	}

	var gateway payment.Gateway
	if cfg.PaymentsEnabled() {
		mp, err := payment.NewMercadoPago(cfg.MPAccessToken, cfg.PublicBaseURL)
		if err != nil {
			return nil, fmt.Errorf("payments: %w", err)
		}
		gateway = mp
	}

	var checkDomain func(context.Context, string) bool
	if cfg.CheckEmailDomain {
		checkDomain = validators.NewEmailDomainChecker(nil, 3*time.Second).Valid
	}

	tokens := auth.NewTokens(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)

	log.Info().
		Bool("postgres", infra.DB != nil).
		Bool("redis_lock", infra.Redis != nil).
		Bool("smtp", cfg.SMTPEnabled()).
		Bool("avatars", objects != nil).
		Bool("payments", gateway != nil).
		Str("timezone", loc.String()).
		Msg("components wired")

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, userRepo, locker, hours, auditDispatcher)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, userRepo, hours)
	receiptUC := ucAppointment.NewRenderReceipt(appointmentRepo, loc)
	paymentUC := ucAppointment.NewStartPayment(appointmentRepo, gateway)

	registerUC := ucUser.NewRegisterUser(userRepo, auditDispatcher, checkDomain)
	loginUC := ucUser.NewLogin(userRepo, tokens)
	listUsersUC := ucUser.NewListUsers(userRepo)
	deleteUserUC := ucUser.NewDeleteUser(userRepo, auditDispatcher)
	avatarUC := ucUser.NewAvatar(userRepo, objects)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	userHandler := handlers.NewUserHandler(userRepo, listUsersUC, deleteUserUC, avatarUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		listUC,
		cancelUC,
		availabilityUC,
		receiptUC,
		paymentUC,
		loc,
	)

	requireAuth := middleware.AuthMiddleware(tokens)

	r.GET("/health", handlers.Health(infra.DB, infra.Redis))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")

	// ------------------------------
	// USUARIOS
	// ------------------------------
	usuarios := api.Group("/usuarios")
	{
		usuarios.POST("/auth/register", authHandler.Register)
		usuarios.POST("/auth/login", middleware.LoginRateLimiter(), authHandler.Login)

		usuarios.GET("/list-barberos", userHandler.ListBarbers)
		usuarios.GET("/list-clientes", userHandler.ListClients)
		usuarios.GET("/:id/avatar", userHandler.GetAvatar)

		usuarios.GET("/me", requireAuth, userHandler.Me)
		usuarios.PUT("/:id/avatar", requireAuth, userHandler.UploadAvatar)
		usuarios.DELETE("/:id", requireAuth, userHandler.DeleteByID)
		usuarios.DELETE("/email/:email", requireAuth, userHandler.DeleteByEmail)
	}

	// ------------------------------
	// TURNOS
	// ------------------------------
	turnos := api.Group("/turnos")
	{
		turnos.GET("", appointmentHandler.List)
		turnos.GET("/tipos", appointmentHandler.Types)
		turnos.GET("/disponibilidad", appointmentHandler.Availability)

		turnos.POST("", requireAuth, appointmentHandler.Create)
		turnos.POST("/mis-turnos", requireAuth, appointmentHandler.ListByClient)
		turnos.GET("/agenda", requireAuth, middleware.RequireRole(string(user.RoleBarber)), appointmentHandler.Agenda)
		turnos.GET("/:id/comprobante", requireAuth, appointmentHandler.Receipt)
		turnos.POST("/:id/pago", requireAuth, appointmentHandler.Pay)
		turnos.DELETE("/:id", requireAuth, appointmentHandler.Delete)
		turnos.DELETE("/cliente/:cliente", requireAuth, appointmentHandler.DeleteByClient)
	}

	// ------------------------------
	// AUDITORIA (postgres only)
	// ------------------------------
	if auditLogger != nil {
		auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, loc)
		api.GET("/auditoria", requireAuth, middleware.RequireRole(string(user.RoleBarber)), auditLogsHandler.List)
	}

	return auditDispatcher, nil
}
