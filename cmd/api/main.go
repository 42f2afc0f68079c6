package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"saasquatch/internal/config"
	"saasquatch/internal/database"
	"saasquatch/internal/middleware"
	"saasquatch/internal/modules/auth"
	"saasquatch/internal/modules/dashboard"
	"saasquatch/internal/modules/emailsummary"
	"saasquatch/internal/modules/leads"
	jwtsvc "saasquatch/internal/pkg/jwt"
	"saasquatch/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	if err := userRepo.Migrate(); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	leadClient := leads.NewClient(cfg.LeadsAPIURL, cfg.LeadsAPITimeout)
	dashboardService := dashboard.NewService(leadClient)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	var provider emailsummary.Provider
	switch cfg.EmailProvider {
	case "resend":
		provider = emailsummary.NewResend(cfg.ResendAPIKey, cfg.LeadsAPITimeout)
	default:
		provider = emailsummary.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.LeadsAPITimeout)
	}
	emailService := emailsummary.NewService(provider, cfg.FromEmail, cfg.AppURL)
	emailHandler := emailsummary.NewHandler(emailService)

	r := gin.Default()
	r.Use(middleware.CORS())

	api := r.Group("/")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		emailHandler.RegisterRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
