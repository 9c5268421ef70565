package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chandru-wp/portfolio-server/internal/models"
	"github.com/chandru-wp/portfolio-server/internal/repositories"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package-level connection at a fresh in-memory
// sqlite database and clears the read cache.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := repositories.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	repositories.DB = db
	listCache.Flush()
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	return bytes.NewReader(b)
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func TestGetSkillsSortedByOrder(t *testing.T) {
	setupTestDB(t)

	groups := []models.SkillGroup{
		{Category: "cloud", Items: models.StringList{"GCP"}, Order: 3},
		{Category: "frontend", Items: models.StringList{"React"}, Order: 1},
		{Category: "backend", Items: models.StringList{"Node.js"}, Order: 2},
	}
	if err := repositories.DB.Create(&groups).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	w := httptest.NewRecorder()
	GetSkills(w, httptest.NewRequest(http.MethodGet, "/api/skills", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	got := decodeBody[[]models.SkillGroup](t, w)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, category := range []string{"frontend", "backend", "cloud"} {
		if got[i].Category != category {
			t.Errorf("got[%d].Category = %q, want %q", i, got[i].Category, category)
		}
	}
}

func TestGetSkillsEmptyReturnsArray(t *testing.T) {
	setupTestDB(t)

	w := httptest.NewRecorder()
	GetSkills(w, httptest.NewRequest(http.MethodGet, "/api/skills", nil))

	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("empty list body = %q, want []", body)
	}
}

func TestCreateSkillsBulkReturnsCount(t *testing.T) {
	setupTestDB(t)

	payload := []map[string]any{
		{"category": "frontend", "items": []string{"React"}, "order": 1},
		{"category": "backend", "items": []string{"Go"}, "order": 2},
	}
	w := httptest.NewRecorder()
	CreateSkills(w, httptest.NewRequest(http.MethodPost, "/api/skills", jsonBody(t, payload)))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	got := decodeBody[map[string]int](t, w)
	if got["count"] != 2 {
		t.Errorf("count = %d, want 2", got["count"])
	}

	var n int64
	repositories.DB.Model(&models.SkillGroup{}).Count(&n)
	if n != 2 {
		t.Errorf("rows = %d, want 2", n)
	}
}

func TestUpdateSkillGroupNotFound(t *testing.T) {
	setupTestDB(t)

	req := httptest.NewRequest(http.MethodPut, "/api/skills/missing", jsonBody(t, map[string]any{"category": "x"}))
	req.SetPathValue("id", "00000000-0000-0000-0000-000000000000")
	w := httptest.NewRecorder()
	UpdateSkillGroup(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestCreateThenGetProject(t *testing.T) {
	setupTestDB(t)

	input := map[string]string{
		"userId":      "user-1",
		"title":       "UptimeEye",
		"description": "Site monitoring application",
		"github":      "https://github.com/username/uptimeeye",
		"website":     "https://uptimeeye.com",
	}
	w := httptest.NewRecorder()
	CreateProject(w, httptest.NewRequest(http.MethodPost, "/api/portfolio", jsonBody(t, input)))
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	created := decodeBody[models.Portfolio](t, w)
	if created.ID == "" {
		t.Fatal("created project has no id")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/"+created.ID, nil)
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	GetProject(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	got := decodeBody[models.Portfolio](t, w)
	if got.Title != input["title"] || got.Description != input["description"] ||
		got.Github != input["github"] || got.Website != input["website"] || got.UserID != input["userId"] {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestGetProjectNotFound(t *testing.T) {
	setupTestDB(t)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/x", nil)
	req.SetPathValue("id", "00000000-0000-0000-0000-000000000000")
	w := httptest.NewRecorder()
	GetProject(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUpdateProjectNotFoundPerformsNoMutation(t *testing.T) {
	setupTestDB(t)

	project := models.Portfolio{Title: "Rydirect", Description: "Link manager"}
	if err := repositories.DB.Create(&project).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/portfolio/x", jsonBody(t, map[string]string{"title": "hijacked"}))
	req.SetPathValue("id", "00000000-0000-0000-0000-000000000000")
	w := httptest.NewRecorder()
	UpdateProject(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}

	var reloaded models.Portfolio
	repositories.DB.First(&reloaded, "id = ?", project.ID)
	if reloaded.Title != "Rydirect" {
		t.Errorf("project was mutated: %+v", reloaded)
	}
}

func TestDeleteProjectThenListExcludesIt(t *testing.T) {
	setupTestDB(t)

	projects := []models.Portfolio{
		{Title: "UptimeEye"},
		{Title: "Rydirect"},
	}
	if err := repositories.DB.Create(&projects).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/portfolio/"+projects[0].ID, nil)
	req.SetPathValue("id", projects[0].ID)
	w := httptest.NewRecorder()
	DeleteProject(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	ListProjects(w, httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))
	got := decodeBody[[]models.Portfolio](t, w)
	if len(got) != 1 || got[0].Title != "Rydirect" {
		t.Errorf("list after delete = %+v", got)
	}

	// Deleting again is an error.
	req = httptest.NewRequest(http.MethodDelete, "/api/portfolio/"+projects[0].ID, nil)
	req.SetPathValue("id", projects[0].ID)
	w = httptest.NewRecorder()
	DeleteProject(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestMessageReplyLifecycle(t *testing.T) {
	setupTestDB(t)

	message := models.Message{Username: "visitor", Subject: "Hi", Message: "Nice site"}
	if err := repositories.DB.Create(&message).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// Reply sets text and the flag together.
	req := httptest.NewRequest(http.MethodPut, "/api/messages/"+message.ID+"/reply",
		jsonBody(t, map[string]string{"reply": "Thanks!"}))
	req.SetPathValue("id", message.ID)
	w := httptest.NewRecorder()
	ReplyMessage(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("reply status = %d: %s", w.Code, w.Body.String())
	}
	got := decodeBody[models.Message](t, w)
	if got.Reply == nil || *got.Reply != "Thanks!" || !got.Replied {
		t.Errorf("after reply: %+v", got)
	}

	// Edit replaces text and leaves the flag alone.
	req = httptest.NewRequest(http.MethodPut, "/api/messages/"+message.ID+"/edit-reply",
		jsonBody(t, map[string]string{"reply": "Thanks a lot!"}))
	req.SetPathValue("id", message.ID)
	w = httptest.NewRecorder()
	EditReply(w, req)
	got = decodeBody[models.Message](t, w)
	if got.Reply == nil || *got.Reply != "Thanks a lot!" || !got.Replied {
		t.Errorf("after edit-reply: %+v", got)
	}

	// Delete clears both.
	req = httptest.NewRequest(http.MethodPut, "/api/messages/"+message.ID+"/delete-reply", nil)
	req.SetPathValue("id", message.ID)
	w = httptest.NewRecorder()
	DeleteReply(w, req)
	got = decodeBody[models.Message](t, w)
	if got.Reply != nil || got.Replied {
		t.Errorf("after delete-reply: %+v", got)
	}
}

func TestReplyRequiresText(t *testing.T) {
	setupTestDB(t)

	message := models.Message{Username: "visitor", Subject: "Hi", Message: "Nice site"}
	if err := repositories.DB.Create(&message).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/messages/"+message.ID+"/reply",
		jsonBody(t, map[string]string{"reply": ""}))
	req.SetPathValue("id", message.ID)
	w := httptest.NewRecorder()
	ReplyMessage(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateMessageRequiresAllFields(t *testing.T) {
	setupTestDB(t)

	w := httptest.NewRecorder()
	CreateMessage(w, httptest.NewRequest(http.MethodPost, "/api/messages",
		jsonBody(t, map[string]string{"username": "visitor", "subject": "Hi"})))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func registerDemo(t *testing.T) {
	t.Helper()
	w := httptest.NewRecorder()
	Register(w, httptest.NewRequest(http.MethodPost, "/api/register",
		jsonBody(t, map[string]string{"username": "demo", "password": "demo123", "role": "admin"})))
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	setupTestDB(t)
	registerDemo(t)

	w := httptest.NewRecorder()
	Register(w, httptest.NewRequest(http.MethodPost, "/api/register",
		jsonBody(t, map[string]string{"username": "demo", "password": "other", "role": "user"})))

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}

	var n int64
	repositories.DB.Model(&models.User{}).Count(&n)
	if n != 1 {
		t.Errorf("user rows = %d, want 1", n)
	}
}

func TestRegisterDoesNotStorePlaintextPassword(t *testing.T) {
	setupTestDB(t)
	registerDemo(t)

	var user models.User
	if err := repositories.DB.First(&user, "username = ?", "demo").Error; err != nil {
		t.Fatalf("user missing: %v", err)
	}
	if user.Password == "demo123" {
		t.Error("password stored in plaintext")
	}
}

func TestLoginStatusCodes(t *testing.T) {
	setupTestDB(t)
	registerDemo(t)

	// Unknown user.
	w := httptest.NewRecorder()
	Login(w, httptest.NewRequest(http.MethodPost, "/api/login",
		jsonBody(t, map[string]string{"username": "ghost", "password": "x"})))
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown user: status = %d, want 404", w.Code)
	}

	// Wrong password.
	w = httptest.NewRecorder()
	Login(w, httptest.NewRequest(http.MethodPost, "/api/login",
		jsonBody(t, map[string]string{"username": "demo", "password": "wrong"})))
	if w.Code != http.StatusBadRequest {
		t.Errorf("wrong password: status = %d, want 400", w.Code)
	}

	// Correct credentials echo username and role.
	w = httptest.NewRecorder()
	Login(w, httptest.NewRequest(http.MethodPost, "/api/login",
		jsonBody(t, map[string]string{"username": "demo", "password": "demo123"})))
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", w.Code, w.Body.String())
	}
	got := decodeBody[map[string]string](t, w)
	if got["username"] != "demo" || got["role"] != "admin" {
		t.Errorf("login response = %v", got)
	}
}

func TestChangeRole(t *testing.T) {
	setupTestDB(t)
	registerDemo(t)

	var user models.User
	if err := repositories.DB.First(&user, "username = ?", "demo").Error; err != nil {
		t.Fatalf("user missing: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/change-role/"+user.ID,
		jsonBody(t, map[string]string{"role": "user"}))
	req.SetPathValue("id", user.ID)
	w := httptest.NewRecorder()
	ChangeRole(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	repositories.DB.First(&user, "id = ?", user.ID)
	if user.Role != "user" {
		t.Errorf("role = %q, want %q", user.Role, "user")
	}
}

func TestProfileSingletonBehavior(t *testing.T) {
	setupTestDB(t)

	// No profile yet: GET returns an empty object.
	w := httptest.NewRecorder()
	GetProfile(w, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	if body := strings.TrimSpace(w.Body.String()); body != "{}" {
		t.Errorf("empty profile body = %q, want {}", body)
	}

	// PUT with no rows creates one.
	w = httptest.NewRecorder()
	UpdateProfile(w, httptest.NewRequest(http.MethodPut, "/api/profile",
		jsonBody(t, map[string]string{"name": "Sibi", "email": "sibi@example.com"})))
	if w.Code != http.StatusCreated {
		t.Fatalf("upsert-create status = %d: %s", w.Code, w.Body.String())
	}

	// PUT again updates the existing row instead of adding another.
	w = httptest.NewRecorder()
	UpdateProfile(w, httptest.NewRequest(http.MethodPut, "/api/profile",
		jsonBody(t, map[string]string{"phone": "+91 12345"})))
	if w.Code != http.StatusOK {
		t.Fatalf("upsert-update status = %d: %s", w.Code, w.Body.String())
	}
	got := decodeBody[models.Profile](t, w)
	if got.Name != "Sibi" || got.Phone != "+91 12345" {
		t.Errorf("merged profile = %+v", got)
	}

	var n int64
	repositories.DB.Model(&models.Profile{}).Count(&n)
	if n != 1 {
		t.Errorf("profile rows = %d, want 1", n)
	}
}

func TestAIQueryRequiresQuestion(t *testing.T) {
	setupTestDB(t)

	w := httptest.NewRecorder()
	AIQuery(w, httptest.NewRequest(http.MethodPost, "/api/ai-query",
		jsonBody(t, map[string]string{})))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestAIQueryAnswersFromStore(t *testing.T) {
	setupTestDB(t)

	groups := []models.SkillGroup{
		{Category: "frontend", Items: models.StringList{"React", "Vite"}, Order: 1},
	}
	if err := repositories.DB.Create(&groups).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	w := httptest.NewRecorder()
	AIQuery(w, httptest.NewRequest(http.MethodPost, "/api/ai-query",
		jsonBody(t, map[string]string{"question": "What are your skills?"})))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	got := decodeBody[map[string]string](t, w)
	if !strings.Contains(got["answer"], "frontend") || !strings.Contains(got["answer"], "React, Vite") {
		t.Errorf("answer = %q", got["answer"])
	}
}
