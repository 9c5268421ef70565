package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chandru-wp/portfolio-server/internal/repositories"
	"github.com/chandru-wp/portfolio-server/internal/utils"
)

const presignTTL = 15 * time.Minute

// POST /api/media/presign
// PresignUpload godoc
// @Summary Get a presigned upload URL for a project image
// @Tags Media
// @Accept json
// @Produce json
// @Param upload body object true "Upload request, e.g. {\"filename\": \"screenshot.png\"}"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/media/presign [post]
func PresignUpload(w http.ResponseWriter, r *http.Request) {
	if repositories.MediaClient == nil {
		utils.Error(w, http.StatusServiceUnavailable, "Media storage not configured")
		return
	}

	var input struct {
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Filename == "" {
		utils.Error(w, http.StatusBadRequest, "Filename required")
		return
	}

	token, err := utils.GenerateSecureToken(8)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to create upload key")
		return
	}
	key := "projects/" + token + "_" + input.Filename

	url, err := repositories.PresignUploadURL(r.Context(), key, presignTTL)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate upload URL")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"url": url,
		"key": key,
	})
}

// GET /api/media/{key...}
func GetMediaURL(w http.ResponseWriter, r *http.Request) {
	if repositories.MediaClient == nil {
		utils.Error(w, http.StatusServiceUnavailable, "Media storage not configured")
		return
	}

	key := r.PathValue("key")
	if key == "" {
		utils.Error(w, http.StatusBadRequest, "Media key required")
		return
	}

	exists, err := repositories.MediaObjectExists(r.Context(), key)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to check media object")
		return
	}
	if !exists {
		utils.Error(w, http.StatusNotFound, "Media not found")
		return
	}

	url, err := repositories.PresignDownloadURL(r.Context(), key, presignTTL)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate download URL")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"url": url})
}
