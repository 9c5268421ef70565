package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/chandru-wp/portfolio-server/internal/assistant"
	"github.com/chandru-wp/portfolio-server/internal/repositories"
	"github.com/chandru-wp/portfolio-server/internal/utils"
)

// POST /api/ai-query
// AIQuery godoc
// @Summary Ask the portfolio assistant a question
// @Description Keyword-matched canned responses over the portfolio content.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param query body object true "Question payload, e.g. {\"question\": \"What are your skills?\"}"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/ai-query [post]
func AIQuery(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Question == "" {
		utils.Error(w, http.StatusBadRequest, "Question required")
		return
	}

	snap, err := assistant.LoadSnapshot(r.Context(), repositories.DB)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error generating response")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"answer": assistant.Generate(input.Question, snap),
	})
}
