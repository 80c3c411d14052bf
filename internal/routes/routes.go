package routes

import (
	"net/http"

	"github.com/templui/lifecoach/internal/app"
	"github.com/templui/lifecoach/internal/handler"
	"github.com/templui/lifecoach/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB, app.ChatService.Provider())
	chat := handler.NewChatHandler(app.ChatService)
	coach := handler.NewCoachingHandler(app.ChatService)
	profile := handler.NewProfileHandler(app.ProfileService)
	goal := handler.NewGoalHandler(app.GoalService)
	lifeArea := handler.NewLifeAreaHandler(app.LifeAreaService)
	session := handler.NewSessionHandler(app.CoachingSessionService)
	assessment := handler.NewAssessmentHandler(app.AssessmentService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /health", health.Health)

	// Chat (anonymous callers get the free-tier coach, rate limited per IP)
	chatLimiter := middleware.RateLimit(app.Cfg.ChatRateLimit, app.Cfg.ChatRateWindow)
	mux.HandleFunc("POST /api/chat", chatLimiter(chat.Chat))

	// Assessment (anonymous sessions allowed)
	mux.HandleFunc("GET /api/assessment/questions", assessment.Questions)
	mux.HandleFunc("GET /api/assessment/progress/{session}", assessment.Progress)
	mux.HandleFunc("PUT /api/assessment/progress/{session}", assessment.SaveProgress)
	mux.HandleFunc("POST /api/assessment", assessment.Submit)

	// ============================================================================
	// PROTECTED ROUTES
	// ============================================================================

	// Assessment
	mux.HandleFunc("GET /api/assessment", middleware.RequireAuth(assessment.Latest))
	mux.HandleFunc("POST /api/assessment/{session}/claim", middleware.RequireAuth(assessment.Claim))
	mux.HandleFunc("GET /api/assessment/report", middleware.RequireAuth(assessment.Report))

	// Profile
	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(profile.Me))
	mux.HandleFunc("PATCH /api/profile/name", middleware.RequireAuth(profile.UpdateName))
	mux.HandleFunc("PATCH /api/profile/coaching-style", middleware.RequireAuth(profile.UpdateCoachingStyle))

	// Goals
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("GET /api/goals/tracker", middleware.RequireAuth(goal.Tracker))
	mux.HandleFunc("GET /api/goals/{id}", middleware.RequireAuth(goal.Get))
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("PUT /api/goals/{id}", middleware.RequireAuth(goal.Update))
	mux.HandleFunc("PATCH /api/goals/{id}/progress", middleware.RequireAuth(goal.UpdateProgress))
	mux.HandleFunc("DELETE /api/goals/{id}", middleware.RequireAuth(goal.Delete))

	// Life areas
	mux.HandleFunc("GET /api/life-areas", middleware.RequireAuth(lifeArea.List))
	mux.HandleFunc("PUT /api/life-areas/{area}", middleware.RequireAuth(lifeArea.Rate))

	// Coaching
	mux.HandleFunc("GET /api/coaching/sessions", middleware.RequireAuth(session.List))
	mux.HandleFunc("POST /api/coaching/sessions", middleware.RequireAuth(session.Record))
	mux.HandleFunc("GET /api/coaching/prompt", middleware.RequireAuth(coach.Prompt))

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.RealIP(app.Cfg.TrustProxyHeaders),
		middleware.RequestLogging,
		middleware.Config(app.Cfg),
		middleware.AuthMiddleware(app.AuthService, app.UserService, app.ProfileService, app.SubscriptionService),
		middleware.CSRFProtection,
	)
}
