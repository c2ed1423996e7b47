package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"petcare/internal/config"
	"petcare/internal/database"
	"petcare/internal/domain/notification"
	"petcare/internal/middleware"
	"petcare/internal/modules/appointment"
	"petcare/internal/modules/assignment"
	"petcare/internal/modules/auth"
	"petcare/internal/modules/pet"
	"petcare/internal/modules/search"
	"petcare/internal/modules/vet"
	jwtsvc "petcare/internal/pkg/jwt"
	"petcare/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := notification.AutoMigrate(db); err != nil {
		log.Fatalf("migrate notifications: %v", err)
	}

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := repository.NewUserRepository(db)
	vetRepo := repository.NewVetRepository(db)
	petRepo := repository.NewPetRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	notificationRepo := notification.NewNotificationRepository(db)

	notificationService := notification.NewService(notificationRepo)

	authHandler := auth.NewHandler(auth.NewService(userRepo, vetRepo, jwtService))
	searchHandler := search.NewHandler(search.NewService(vetRepo, nil))
	vetHandler := vet.NewHandler(vet.NewService(vetRepo))
	petHandler := pet.NewHandler(pet.NewService(petRepo))
	assignmentHandler := assignment.NewHandler(assignment.NewService(
		assignmentRepo, petRepo, vetRepo, notificationService,
	))
	appointmentHandler := appointment.NewHandler(appointment.NewService(
		appointmentRepo, petRepo, vetRepo, notificationService,
	))
	notificationHandler := notification.NewHandler(notificationService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins...))

	api := router.Group("/api/v1")

	authHandler.RegisterRoutes(api)
	searchHandler.RegisterRoutes(api)
	vetHandler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.Auth(jwtService))

	petHandler.RegisterRoutes(protected)
	assignmentHandler.RegisterRoutes(protected)
	appointmentHandler.RegisterRoutes(protected)
	notification.RegisterRoutes(protected, notificationHandler)

	vetOnly := protected.Group("")
	vetOnly.Use(middleware.RequireRole("vet"))
	vetHandler.RegisterVetRoutes(vetOnly)

	adminOnly := protected.Group("")
	adminOnly.Use(middleware.RequireRole("admin"))
	vetHandler.RegisterAdminRoutes(adminOnly)

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
