package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/rahulpatel51/Hostel-Backend/docs"
	v1 "github.com/rahulpatel51/Hostel-Backend/internal/api/handler/v1"
	"github.com/rahulpatel51/Hostel-Backend/internal/api/middleware"
	"github.com/rahulpatel51/Hostel-Backend/internal/config"
	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository/dao"
	"github.com/rahulpatel51/Hostel-Backend/internal/service"
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

	accountSvc := s.initAccountService(db)
	authHandler := s.initAuthHandler(db, accountSvc)
	studentHandler := s.initStudentHandler(db)
	roomHandler := s.initRoomHandler(db)
	occupancyHandler := s.initOccupancyHandler(db)
	allocationHandler := s.initAllocationHandler(db)
	s.MountHandlers(accountSvc, authHandler, studentHandler, roomHandler, occupancyHandler, allocationHandler)

	return s
}

func (s *Server) initAccountService(db *gorm.DB) *service.AccountService {
	repo := repository.NewAccountRepository(dao.NewAccountDAO(db), dao.NewStudentDAO(db), dao.NewWardenDAO(db))
	svc := service.NewAccountService(repo)

	return svc
}

func (s *Server) initAuthHandler(db *gorm.DB, accountSvc *service.AccountService) *v1.AuthHandler {
	repo := repository.NewAccountRepository(dao.NewAccountDAO(db), dao.NewStudentDAO(db), dao.NewWardenDAO(db))
	svc := service.NewAuthService(repo, s.Config.Auth.AdminSignupCode)
	handler := v1.NewAuthHandler(s.Config.API, svc, accountSvc)

	return handler
}

func (s *Server) initStudentHandler(db *gorm.DB) *v1.StudentHandler {
	repo := repository.NewStudentRepository(dao.NewStudentDAO(db))
	svc := service.NewStudentService(repo)
	handler := v1.NewStudentHandler(svc)

	return handler
}

func (s *Server) initRoomHandler(db *gorm.DB) *v1.RoomHandler {
	repo := repository.NewRoomRepository(dao.NewRoomDAO(db))
	occupancyRepo := repository.NewOccupancyRepository(dao.NewOccupancyDAO(db))
	svc := service.NewRoomService(repo, occupancyRepo)
	occSvc := service.NewOccupancyService(occupancyRepo, repository.NewStudentRepository(dao.NewStudentDAO(db)))
	handler := v1.NewRoomHandler(svc, occSvc)

	return handler
}

func (s *Server) initOccupancyHandler(db *gorm.DB) *v1.OccupancyHandler {
	occupancyRepo := repository.NewOccupancyRepository(dao.NewOccupancyDAO(db))
	studentRepo := repository.NewStudentRepository(dao.NewStudentDAO(db))
	svc := service.NewOccupancyService(occupancyRepo, studentRepo)
	handler := v1.NewOccupancyHandler(svc)

	return handler
}

func (s *Server) initAllocationHandler(db *gorm.DB) *v1.AllocationHandler {
	repo := repository.NewAllocationRepository(dao.NewAllocationDAO(db))
	svc := service.NewAllocationService(repo)
	handler := v1.NewAllocationHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.Timeout(time.Duration(s.Config.API.RequestTimeoutSeconds) * time.Second))
}

func (s *Server) MountHandlers(
	accountSvc *service.AccountService,
	authHandler *v1.AuthHandler,
	studentHandler *v1.StudentHandler,
	roomHandler *v1.RoomHandler,
	occupancyHandler *v1.OccupancyHandler,
	allocationHandler *v1.AllocationHandler,
) {
	const basePath = "/api/v1"

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()
	loadAccount := middleware.LoadAccount(accountSvc)
	staffOnly := middleware.RequireRoles(domain.RoleAdmin, domain.RoleWarden)

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authenticated := s.Router.Group(basePath, verifyJWT, loadAccount)
	{
		authenticated.GET("/auth/me", authHandler.HandleGetMe)

		authenticated.GET("/students/:studentID", studentHandler.HandleGetStudent)

		authenticated.GET("/rooms", roomHandler.HandleListRooms)
		authenticated.GET("/rooms/:roomID", roomHandler.HandleGetRoom)
		authenticated.GET("/room-allocation/rooms", roomHandler.HandleListRooms)

		authenticated.GET("/allocations", allocationHandler.HandleListAllocations)
		authenticated.GET("/allocations/:allocationID", allocationHandler.HandleGetAllocation)
	}

	staff := s.Router.Group(basePath, verifyJWT, loadAccount, staffOnly)
	{
		staff.GET("/students", studentHandler.HandleListStudents)
		staff.PUT("/students/:studentID", studentHandler.HandleUpdateStudent)

		staff.POST("/rooms", roomHandler.HandleCreateRoom)
		staff.PUT("/rooms/:roomID", roomHandler.HandleUpdateRoom)
		staff.DELETE("/rooms/:roomID", roomHandler.HandleDeleteRoom)
		staff.POST("/rooms/:roomID/assign", roomHandler.HandleAssignStudent)
		staff.POST("/rooms/:roomID/remove", roomHandler.HandleRemoveStudent)

		staff.POST("/room-allocation/allocate", occupancyHandler.HandleAllocate)
		staff.POST("/room-allocation/deallocate", occupancyHandler.HandleDeallocate)
		staff.POST("/room-allocation/transfer", occupancyHandler.HandleTransfer)

		staff.POST("/allocations", allocationHandler.HandleCreateAllocation)
		staff.POST("/allocations/:allocationID/release", allocationHandler.HandleReleaseAllocation)
		staff.PATCH("/allocations/:allocationID/payment", allocationHandler.HandleUpdatePayment)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Hostel Management API"
	docs.SwaggerInfo.Description = "Room, occupancy and allocation management for a hostel."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
