package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/VibeInvestor-Backend/internal/api/middleware"
	"github.com/ndewijer/VibeInvestor-Backend/internal/config"
	"github.com/ndewijer/VibeInvestor-Backend/internal/metrics"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
)

// Services bundles the service layer the router dispatches to.
type Services struct {
	System    *service.SystemService
	Portfolio *service.PortfolioService
	Trade     *service.TradeService
	Anxiety   *service.AnxietyService
	Feed      *service.FeedService
	User      *service.UserService
	Advice    *service.AdviceService
	Sentiment *service.SentimentService
	Goal      *service.GoalService
	Digest    *service.DigestService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(custommiddleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(logger, m))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Get("/forecast", handlers.Forecast)

		// Everything below acts on behalf of a user.
		r.Group(func(r chi.Router) {
			r.Use(custommiddleware.Identity(cfg.Demo.UserID, svc.User))

			r.Route("/portfolio", func(r chi.Router) {
				portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio)
				r.Get("/", portfolioHandler.Assets)
				r.Post("/asset", portfolioHandler.CreateAsset)
				r.Get("/summary", portfolioHandler.Summary)
			})

			r.Route("/trades", func(r chi.Router) {
				tradeHandler := handlers.NewTradeHandler(svc.Trade)
				r.Get("/", tradeHandler.Trades)
				r.Post("/", tradeHandler.CreateTrade)
				r.Get("/commissions", tradeHandler.Commissions)
			})

			r.Route("/anxiety", func(r chi.Router) {
				anxietyHandler := handlers.NewAnxietyHandler(svc.Anxiety)
				r.Get("/", anxietyHandler.Logs)
				r.Post("/", anxietyHandler.CreateLog)
				r.Get("/calendar", anxietyHandler.Calendar)
			})

			feedHandler := handlers.NewFeedHandler(svc.Feed)
			r.Get("/feed", feedHandler.Feed)
			r.Get("/saved-ideas", feedHandler.SavedIdeas)
			r.Route("/posts", func(r chi.Router) {
				r.Post("/", feedHandler.CreatePost)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateIDMiddleware)
					r.Post("/comments", feedHandler.CreateComment)
					r.Post("/reactions", feedHandler.ToggleReaction)
					r.Post("/save", feedHandler.ToggleSave)
				})
			})

			r.Route("/users/{id}", func(r chi.Router) {
				userHandler := handlers.NewUserHandler(svc.User)
				r.Use(custommiddleware.ValidateIDMiddleware)
				r.Get("/profile", userHandler.Profile)
				r.Post("/subscribe", userHandler.ToggleSubscription)
			})

			insightsHandler := handlers.NewInsightsHandler(svc.Advice, svc.Sentiment, svc.Goal, svc.Digest)
			limiter := custommiddleware.NewRateLimiter(cfg.AI.RatePerMinute, m)
			r.With(limiter.Handler).Post("/ai/analyze-portfolio", insightsHandler.AnalyzePortfolio)
			r.Get("/market-sentiment", insightsHandler.MarketSentiment)
			r.Get("/goals", insightsHandler.Goals)
			r.Post("/goals/sync", insightsHandler.SyncGoals)
			r.Get("/achievements", insightsHandler.Achievements)
			r.Get("/digest", insightsHandler.Digest)
		})
	})

	return r
}
