package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/ellaquest/platform-api/docs"
	"github.com/ellaquest/platform-api/internal/api/handler"
	"github.com/ellaquest/platform-api/internal/api/middleware"
	"github.com/ellaquest/platform-api/internal/core/domain"
	"github.com/ellaquest/platform-api/internal/core/service"
	"github.com/ellaquest/platform-api/internal/core/token"
	mongodb "github.com/ellaquest/platform-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ellaquest/platform-api/internal/infrastructure/db/redis"
	"github.com/ellaquest/platform-api/internal/pkg/config"
)

const statsCacheTTL = 30 * time.Second

// NewRouter builds and returns the Echo instance with all routes
// registered. Dependencies are constructed once here and injected; no
// handler or service reads ambient global state.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ellaquest"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	materialRepo := mongodb.NewMaterialRepository(db)
	questRepo := mongodb.NewQuestRepository(db)

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	verifier := token.NewVerifier(cfg.JWTSecret)
	statsCache := redisdb.NewStatsCache(rdb, statsCacheTTL)

	authService := service.NewAuthService(userRepo, hasher, issuer)
	accountService := service.NewAccountService(userRepo, hasher, statsCache, log)
	materialService := service.NewMaterialService(materialRepo)
	questService := service.NewQuestService(questRepo, materialRepo)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(accountService)
	adminHandler := handler.NewAdminHandler(accountService)
	materialHandler := handler.NewMaterialHandler(materialService)
	questHandler := handler.NewQuestHandler(questService)

	authMW := middleware.Auth(verifier)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	// Admin/curriculum-manager provisioning is admin-gated unless the
	// bootstrap escape hatch is enabled (first-run setup with no admin
	// account yet).
	if cfg.AllowOpenAccountCreation {
		e.POST("/create-account", authHandler.CreateAccount)
	} else {
		e.POST("/create-account", authHandler.CreateAccount, authMW, middleware.RequireRoles(domain.RoleAdmin))
	}

	// --- Admin ---
	admin := e.Group("/admin", authMW, middleware.RequireRoles(domain.RoleAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/students", adminHandler.ListStudents)
	admin.GET("/instructors", adminHandler.ListInstructors)
	admin.GET("/curriculum-managers", adminHandler.ListCurriculumManagers)

	// --- Student ---
	student := e.Group("/student", authMW, middleware.RequireRoles(domain.RoleStudent))
	student.GET("/profile", profileHandler.Profile)
	student.PUT("/profile", profileHandler.UpdateProfile)
	student.PUT("/change-password", profileHandler.ChangePassword)
	student.GET("/courses", profileHandler.Courses)

	// --- Instructor ---
	instructor := e.Group("/instructor", authMW, middleware.RequireRoles(domain.RoleInstructor))
	instructor.GET("/profile", profileHandler.Profile)
	instructor.PUT("/profile", profileHandler.UpdateProfile)
	instructor.PUT("/change-password", profileHandler.ChangePassword)
	instructor.GET("/courses", profileHandler.Courses)
	instructor.GET("/courses/:course_id/students", profileHandler.CourseStudents)

	// --- Curriculum manager ---
	cm := e.Group("/curriculum-manager", authMW, middleware.RequireRoles(domain.RoleCurriculumManager))
	cm.GET("/profile", profileHandler.Profile)
	cm.PUT("/profile", profileHandler.UpdateProfile)
	cm.PUT("/change-password", profileHandler.ChangePassword)
	cm.POST("/materials", materialHandler.Create)
	cm.GET("/materials", materialHandler.List)
	cm.GET("/materials/:material_id", materialHandler.Get)
	cm.PUT("/materials/:material_id", materialHandler.Update)
	cm.DELETE("/materials/:material_id", materialHandler.Delete)
	cm.POST("/quests", questHandler.Create)
	cm.GET("/quests", questHandler.List)
	cm.GET("/quests/:quest_id", questHandler.Get)
	cm.PUT("/quests/:quest_id", questHandler.Update)
	cm.DELETE("/quests/:quest_id", questHandler.Delete)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
