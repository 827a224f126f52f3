package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/VicMent/kermisfuif-sponsor-api/docs"
	v1 "github.com/VicMent/kermisfuif-sponsor-api/internal/api/handler/v1"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/api/middleware"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/config"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/repository"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/repository/dao"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	sponsorHandler := s.initSponsorHandler(db)
	bundleHandler := s.initBundleHandler(db)
	assignmentHandler := s.initAssignmentHandler(db)
	statsHandler := s.initStatsHandler(db)
	s.MountHandlers(authHandler, userHandler, sponsorHandler, bundleHandler, assignmentHandler, statsHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(svc, s.Config.API.JWTSigningKey)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initSponsorHandler(db *gorm.DB) *v1.SponsorHandler {
	sponsorRepo := repository.NewSponsorRepository(dao.NewSponsorDAO(db))
	assignmentRepo := repository.NewAssignmentRepository(dao.NewAssignmentDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))

	svc := service.NewSponsorService(sponsorRepo, assignmentRepo)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, sponsorRepo, userRepo)
	uSvc := service.NewUserService(userRepo)
	handler := v1.NewSponsorHandler(svc, assignmentSvc, uSvc)

	return handler
}

func (s *Server) initBundleHandler(db *gorm.DB) *v1.BundleHandler {
	repo := repository.NewBundleRepository(dao.NewBundleDAO(db))
	svc := service.NewBundleService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewBundleHandler(svc, uSvc)

	return handler
}

func (s *Server) initAssignmentHandler(db *gorm.DB) *v1.AssignmentHandler {
	assignmentRepo := repository.NewAssignmentRepository(dao.NewAssignmentDAO(db))
	sponsorRepo := repository.NewSponsorRepository(dao.NewSponsorDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))

	svc := service.NewAssignmentService(assignmentRepo, sponsorRepo, userRepo)
	uSvc := service.NewUserService(userRepo)
	handler := v1.NewAssignmentHandler(svc, uSvc)

	return handler
}

func (s *Server) initStatsHandler(db *gorm.DB) *v1.StatsHandler {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	sponsorRepo := repository.NewSponsorRepository(dao.NewSponsorDAO(db))
	assignmentRepo := repository.NewAssignmentRepository(dao.NewAssignmentDAO(db))

	svc := service.NewStatsService(userRepo, sponsorRepo, assignmentRepo)
	uSvc := service.NewUserService(userRepo)
	handler := v1.NewStatsHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	sponsorHandler *v1.SponsorHandler,
	bundleHandler *v1.BundleHandler,
	assignmentHandler *v1.AssignmentHandler,
	statsHandler *v1.StatsHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.POST("/auth/logout", authHandler.HandleLogout)

		authed.GET("/users", userHandler.HandleListUsers)
		authed.POST("/users", userHandler.HandleCreateUser)
		authed.GET("/users/:userID", userHandler.HandleGetUser)
		authed.PATCH("/users/:userID", userHandler.HandleUpdateUser)
		authed.DELETE("/users/:userID", userHandler.HandleDeleteUser)

		authed.GET("/sponsors", sponsorHandler.HandleListSponsors)
		authed.POST("/sponsors", sponsorHandler.HandleCreateSponsor)
		authed.GET("/sponsors/:sponsorID", sponsorHandler.HandleGetSponsor)
		authed.PATCH("/sponsors/:sponsorID", sponsorHandler.HandleUpdateSponsor)
		authed.DELETE("/sponsors/:sponsorID", sponsorHandler.HandleDeleteSponsor)
		authed.POST("/sponsors/:sponsorID/assign", sponsorHandler.HandleAssignSponsor)
		authed.GET("/sponsors/:sponsorID/assignment", sponsorHandler.HandleGetActiveAssignment)

		authed.GET("/bundles", bundleHandler.HandleListBundles)
		authed.POST("/bundles", bundleHandler.HandleCreateBundle)
		authed.GET("/bundles/:bundleID", bundleHandler.HandleGetBundle)
		authed.PATCH("/bundles/:bundleID", bundleHandler.HandleUpdateBundle)
		authed.DELETE("/bundles/:bundleID", bundleHandler.HandleDeleteBundle)

		authed.GET("/assignments", assignmentHandler.HandleListAssignments)
		authed.POST("/assignments/reset", assignmentHandler.HandleResetAssignments)
		authed.GET("/assignments/:assignmentID", assignmentHandler.HandleGetAssignment)
		authed.PATCH("/assignments/:assignmentID", assignmentHandler.HandleUpdateAssignment)
		authed.POST("/assignments/:assignmentID/start", assignmentHandler.HandleStartAssignment)
		authed.POST("/assignments/:assignmentID/complete", assignmentHandler.HandleCompleteAssignment)
		authed.POST("/assignments/:assignmentID/unassign", assignmentHandler.HandleUnassignAssignment)

		authed.GET("/stats/overview", statsHandler.HandleOverview)
		authed.GET("/stats/users", statsHandler.HandleUserStats)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Kermisfuif Sponsor API"
	docs.SwaggerInfo.Description = "Sponsor management API for the Kermisfuif fundraiser."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
