package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	complaintdto "campusguard/internal/application/complaint/dto"
	complaintusecases "campusguard/internal/application/complaint/usecases"
	userusecases "campusguard/internal/application/user/usecases"
	"campusguard/internal/domain/complaint"
	"campusguard/internal/infrastructure/auth"
	"campusguard/internal/infrastructure/config"
	"campusguard/internal/infrastructure/ratelimit"
	"campusguard/internal/infrastructure/repository"
	authhandlers "campusguard/internal/interfaces/http/handlers/auth"
	complainthandlers "campusguard/internal/interfaces/http/handlers/complaint"
	userhandlers "campusguard/internal/interfaces/http/handlers/user"
	"campusguard/internal/interfaces/http/middleware"
	"campusguard/internal/interfaces/http/routes"
	"campusguard/internal/shared/db"
	"campusguard/internal/shared/logger"
	"campusguard/internal/shared/utils"
)

// Router wires repositories, use cases, handlers, and middleware into a
// gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full HTTP surface. The status lookup cache must be
// loaded before any request is served, so construction fails when the
// configured status and severity rows cannot be read.
func NewRouter(
	database *gorm.DB,
	redisClient *redis.Client,
	blobStore complaint.BlobStore,
	cfg *config.Config,
	log logger.Interface,
) (*Router, error) {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	lookup := repository.NewLookupCache(database)
	if err := lookup.Load(); err != nil {
		return nil, err
	}

	complaintRepo := repository.NewComplaintRepository(database, lookup)
	userRepo := repository.NewUserRepository(database)
	deptRepo := repository.NewDepartmentRepository(database)
	txManager := db.NewTransactionManager(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpHours)

	assembler := complaintdto.NewAssembler(lookup)

	createComplaintUC := complaintusecases.NewCreateComplaintUseCase(complaintRepo, lookup, txManager, log)
	attachEvidenceUC := complaintusecases.NewAttachEvidenceUseCase(complaintRepo, blobStore, txManager, cfg.Evidence.MaxFileBytes, log)
	assignFacultyUC := complaintusecases.NewAssignFacultyUseCase(complaintRepo, userRepo, lookup, txManager, log)
	listAssignedUC := complaintusecases.NewListAssignedUseCase(complaintRepo, userRepo, deptRepo, assembler, log)
	getComplaintUC := complaintusecases.NewGetComplaintUseCase(complaintRepo, userRepo, deptRepo, assembler, log)

	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	searchStudentsUC := userusecases.NewSearchStudentsUseCase(userRepo, log)

	complaintHandler := complainthandlers.NewComplaintHandler(
		createComplaintUC,
		attachEvidenceUC,
		assignFacultyUC,
		listAssignedUC,
		getComplaintUC,
		cfg.Evidence.MaxFileBytes,
	)
	authHandler := authhandlers.NewAuthHandler(registerUC, loginUC)
	userHandler := userhandlers.NewUserHandler(searchStudentsUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var loginLimiter, registerLimiter gin.HandlerFunc
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		loginLimiter = middleware.RateLimit(limiter, "login", ratelimit.Quota{
			ratelimit.PerMinute(cfg.RateLimit.LoginPerMinute),
			ratelimit.PerHour(cfg.RateLimit.LoginPerHour),
		}, log)
		registerLimiter = middleware.RateLimit(limiter, "register", ratelimit.Quota{
			ratelimit.PerMinute(cfg.RateLimit.RegisterPerMinute),
		}, log)
	}

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:         authHandler,
		LoginRateLimiter:    loginLimiter,
		RegisterRateLimiter: registerLimiter,
	})
	routes.SetupComplaintRoutes(engine, &routes.ComplaintRouteConfig{
		ComplaintHandler: complaintHandler,
		AuthMiddleware:   authMiddleware,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})

	engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "", gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	return &Router{engine: engine}, nil
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
