package api

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/chandru-wp/portfolio-server/docs"
	"github.com/chandru-wp/portfolio-server/internal/api/handlers"
	"github.com/chandru-wp/portfolio-server/internal/api/middleware"
)

// SetupRouter wires every route. Token auth (middleware.RequireAuth) is
// available but not attached anywhere; all routes are public.
func SetupRouter(log *logrus.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "🚀 Server Ready — Portfolio + Users + Messages")
	})

	mux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	// Profile (singleton by convention)
	mux.HandleFunc("GET /api/profile", handlers.GetProfile)
	mux.HandleFunc("POST /api/profile", handlers.CreateProfile)
	mux.HandleFunc("PUT /api/profile", handlers.UpdateProfile)
	mux.HandleFunc("PUT /api/profile/{id}", handlers.UpdateProfileByID)

	// Skills
	mux.HandleFunc("GET /api/skills", handlers.GetSkills)
	mux.HandleFunc("POST /api/skills", handlers.CreateSkills)
	mux.HandleFunc("PUT /api/skills/{id}", handlers.UpdateSkillGroup)
	mux.HandleFunc("DELETE /api/skills/{id}", handlers.DeleteSkillGroup)

	// Experience
	mux.HandleFunc("GET /api/experience", handlers.GetExperience)
	mux.HandleFunc("POST /api/experience", handlers.CreateExperience)
	mux.HandleFunc("PUT /api/experience/{id}", handlers.UpdateExperience)
	mux.HandleFunc("DELETE /api/experience/{id}", handlers.DeleteExperience)

	// Education
	mux.HandleFunc("GET /api/education", handlers.GetEducation)
	mux.HandleFunc("POST /api/education", handlers.CreateEducation)
	mux.HandleFunc("PUT /api/education/{id}", handlers.UpdateEducation)
	mux.HandleFunc("DELETE /api/education/{id}", handlers.DeleteEducation)

	// Portfolio projects
	mux.HandleFunc("GET /api/portfolio", handlers.ListProjects)
	mux.HandleFunc("GET /api/portfolio/{id}", handlers.GetProject)
	mux.HandleFunc("POST /api/portfolio", handlers.CreateProject)
	mux.HandleFunc("PUT /api/portfolio/{id}", handlers.UpdateProject)
	mux.HandleFunc("DELETE /api/portfolio/{id}", handlers.DeleteProject)

	// Contact messages
	mux.HandleFunc("GET /api/messages", handlers.ListMessages)
	mux.HandleFunc("POST /api/messages", handlers.CreateMessage)
	mux.HandleFunc("PUT /api/messages/{id}/reply", handlers.ReplyMessage)
	mux.HandleFunc("PUT /api/messages/{id}/edit-reply", handlers.EditReply)
	mux.HandleFunc("PUT /api/messages/{id}/delete-reply", handlers.DeleteReply)
	mux.HandleFunc("DELETE /api/messages/{id}", handlers.DeleteMessage)

	// Accounts
	mux.HandleFunc("POST /api/register", handlers.Register)
	mux.HandleFunc("POST /api/login", handlers.Login)
	mux.HandleFunc("PUT /api/change-role/{id}", handlers.ChangeRole)

	// Assistant
	mux.HandleFunc("POST /api/ai-query", handlers.AIQuery)

	// Project media
	mux.HandleFunc("POST /api/media/presign", handlers.PresignUpload)
	mux.HandleFunc("GET /api/media/{key...}", handlers.GetMediaURL)

	handler := middleware.CORS(mux)
	handler = middleware.Logger(log, handler)
	return handler
}
