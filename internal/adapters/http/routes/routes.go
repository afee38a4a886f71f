package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"

	"github.com/sreejapuram0307/sherising/internal/adapters/http/handlers"
	"github.com/sreejapuram0307/sherising/internal/adapters/http/middleware"
	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
	"github.com/sreejapuram0307/sherising/internal/config"
	"github.com/sreejapuram0307/sherising/internal/core/chatbot"
	"github.com/sreejapuram0307/sherising/internal/core/services"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, matcher *chatbot.Matcher) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	ideaRepo := repositories.NewIdeaRepository(db)
	investmentRepo := repositories.NewInvestmentRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	ideaChatRepo := repositories.NewIdeaChatRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	ideaService := services.NewIdeaService(db, ideaRepo, userRepo)
	investorService := services.NewInvestorService(investmentRepo)
	chatService := services.NewChatService(chatRepo, userRepo)
	ideaChatService := services.NewIdeaChatService(ideaChatRepo, ideaRepo, investmentRepo, userRepo)
	matchService := services.NewMatchService(userRepo, ideaRepo, investmentRepo)
	gamificationService := services.NewGamificationService(userRepo)
	userService := services.NewUserService(userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	ideaHandler := handlers.NewIdeaHandler(ideaService)
	investorHandler := handlers.NewInvestorHandler(investorService)
	chatHandler := handlers.NewChatHandler(chatService)
	ideaChatHandler := handlers.NewIdeaChatHandler(ideaChatService)
	matchHandler := handlers.NewMatchHandler(matchService)
	gamificationHandler := handlers.NewGamificationHandler(gamificationService)
	profileHandler := handlers.NewProfileHandler(userService)
	chatbotHandler := handlers.NewChatbotHandler(matcher)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	auth := middleware.AuthMiddleware(cfg)

	// Auth routes (public, with stricter rate limiting)
	api.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	api.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	api.Post("/refresh", authHandler.RefreshToken)
	api.Post("/logout", authHandler.Logout)
	api.Post("/logout-all", auth, authHandler.LogoutAll)
	api.Get("/me", auth, authHandler.Me)

	// Idea routes
	api.Get("/ideas", auth, ideaHandler.List)
	api.Post("/ideas", auth, middleware.EntrepreneurOnly(), ideaHandler.Create)
	api.Post("/ideas/:id/invest", auth, middleware.InvestorOnly(), ideaHandler.Invest)
	api.Post("/ideas/:id/like", auth, ideaHandler.Like)

	// Investor dashboard routes
	api.Get("/investor/dashboard", auth, middleware.InvestorOnly(), investorHandler.Dashboard)
	api.Get("/investor/my-investments", auth, middleware.InvestorOnly(), investorHandler.MyInvestments)

	// Direct chat routes. The send and contacts routes are registered
	// before the parameterized conversation route.
	api.Get("/chat/contacts", auth, chatHandler.Contacts)
	api.Post("/chat/send", auth, chatHandler.Send)
	api.Get("/chat/:userId", auth, chatHandler.Conversation)

	// Idea chat routes
	api.Post("/idea-chat/send", auth, ideaChatHandler.Send)
	api.Post("/idea-chat/block", auth, ideaChatHandler.Block)
	api.Post("/idea-chat/unblock", auth, ideaChatHandler.Unblock)
	api.Get("/idea-chat/:ideaId/messages", auth, ideaChatHandler.Messages)
	api.Get("/idea-chat/:ideaId/participants", auth, ideaChatHandler.Participants)
	api.Put("/idea-chat/:ideaId/read", auth, ideaChatHandler.MarkRead)

	// Matching routes
	api.Get("/matches/entrepreneur", auth, middleware.EntrepreneurOnly(), matchHandler.ForEntrepreneur)
	api.Get("/matches/investor", auth, middleware.InvestorOnly(), matchHandler.ForInvestor)

	// Gamification routes
	api.Get("/gamification/leaderboard", auth, gamificationHandler.Leaderboard)
	api.Get("/gamification/badge-progress", auth, gamificationHandler.BadgeProgress)

	// Profile routes
	api.Get("/profile", auth, profileHandler.Get)
	api.Put("/profile", auth, profileHandler.Update)
	api.Get("/profile/:userId", auth, profileHandler.GetByID)

	// Chatbot routes
	api.Post("/chatbot/ask", auth, chatbotHandler.Ask)
	api.Get("/chatbot/suggestions", auth, chatbotHandler.Suggestions)
	api.Get("/chatbot/questions", auth, chatbotHandler.Questions)
}
