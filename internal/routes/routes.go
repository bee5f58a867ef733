package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	"github.com/BruksfildServices01/shift-scheduler/internal/auth"
	"github.com/BruksfildServices01/shift-scheduler/internal/config"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/handlers"
	"github.com/BruksfildServices01/shift-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/shift-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/shift-scheduler/internal/middleware"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	"github.com/BruksfildServices01/shift-scheduler/internal/timezone"
	ucShift "github.com/BruksfildServices01/shift-scheduler/internal/usecase/shift"
	ucUser "github.com/BruksfildServices01/shift-scheduler/internal/usecase/user"
)

type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger

	// Redis is optional; nil disables the user cache.
	Redis *redis.Client
}

// RegisterRoutes wires the API onto r. The returned function drains the
// audit queue and must be called on shutdown.
func RegisterRoutes(r *gin.Engine, d Deps) func() {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	shiftRepo := infraRepo.NewShiftGormRepository(d.DB)

	var users user.Store = infraRepo.NewUserGormRepository(d.DB)
	if d.Redis != nil {
		users = cache.NewUserDirectory(users, d.Redis, cfg.UserCacheTTL, d.Log)
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)

	auditDispatcher := audit.NewDispatcher(audit.New(d.DB, d.Log), d.Log)

	clock := timezone.Clock(cfg.Timezone)

	// ======================================================
	// USE CASES: SHIFTS
	// ======================================================
	shiftUC := handlers.ShiftUseCases{
		List:       ucShift.NewListShifts(shiftRepo),
		Get:        ucShift.NewGetShift(shiftRepo),
		ListByUser: ucShift.NewListShiftsByUser(shiftRepo),
		Create:     ucShift.NewCreateShift(shiftRepo, users, auditDispatcher),
		CheckIn:    ucShift.NewCheckIn(shiftRepo, auditDispatcher, clock),
		CheckOut:   ucShift.NewCheckOut(shiftRepo, auditDispatcher, clock),
		Complete:   ucShift.NewCompleteShift(shiftRepo, auditDispatcher),
		Delete:     ucShift.NewDeleteShift(shiftRepo, auditDispatcher),
	}

	// ======================================================
	// USE CASES: USERS
	// ======================================================
	userUC := handlers.UserUseCases{
		List:   ucUser.NewListUsers(users),
		Get:    ucUser.NewGetUser(users),
		Update: ucUser.NewUpdateUser(users, auditDispatcher),
		Delete: ucUser.NewDeleteUser(users, auditDispatcher),
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(users, tokens)
	meHandler := handlers.NewMeHandler(users)
	shiftHandler := handlers.NewShiftHandler(shiftUC)
	usersHandler := handlers.NewUsersHandler(userUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	managers := middleware.RequireRole(models.RoleManager, models.RoleAdmin)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens, users))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// SHIFTS
			// ------------------------------
			secured.GET("/shifts", shiftHandler.List)
			secured.POST("/shifts", shiftHandler.Create)
			secured.GET("/shifts/myShifts", shiftHandler.MyShifts)
			secured.GET("/shifts/user/:userId", shiftHandler.ListByUser)
			secured.GET("/shifts/:id", shiftHandler.Get)
			secured.POST("/shifts/:id/checkIn", shiftHandler.CheckIn)
			secured.POST("/shifts/:id/checkOut", shiftHandler.CheckOut)
			secured.POST("/shifts/:id/complete", managers, shiftHandler.Complete)
			secured.DELETE("/shifts/:id", managers, shiftHandler.Delete)

			// ------------------------------
			// USERS
			// ------------------------------
			secured.GET("/users", managers, usersHandler.List)
			secured.GET("/users/:id", managers, usersHandler.Get)
			secured.PUT("/users/:id", managers, usersHandler.Update)
			secured.DELETE("/users/:id", managers, usersHandler.Delete)

			secured.GET("/audit-logs", managers, auditLogsHandler.List)
		}
	}

	return auditDispatcher.Close
}
