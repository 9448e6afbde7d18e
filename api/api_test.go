package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jamesfcoton/site-backend/content"
	"github.com/jamesfcoton/site-backend/database"
	"github.com/jamesfcoton/site-backend/localcache"
	"github.com/jamesfcoton/site-backend/models"
	"github.com/jamesfcoton/site-backend/services"
)

const testPassword = "test-password"

var testSecret = []byte("test-secret")

// newTestRouter wires a cache-only stack: no postgres, no bucket, no LLM.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	cache, err := localcache.New(t.TempDir())
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	db := database.New(nil, cache)
	generator := services.NewCatalogGenerator(context.Background(), "", "")
	site := content.NewService(db, cache, generator, testPassword)
	if err := site.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	handlers := initializeHandlers(site, nil, testSecret, time.Hour)
	r := chi.NewRouter()
	setupRoutes(r, handlers, newAuthMiddleware(testSecret))
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()

	rec, body := doJSON(t, r, http.MethodPost, "/admin/login", "", map[string]string{"password": testPassword})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}

func TestGetCatalog(t *testing.T) {
	r := newTestRouter(t)

	rec, body := doJSON(t, r, http.MethodGet, "/catalog", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	library, ok := body["library"].([]any)
	if !ok || len(library) == 0 {
		t.Fatalf("library = %v", body["library"])
	}
	if _, ok := body["highlight"].(map[string]any); !ok {
		t.Fatal("no highlight in catalog")
	}
}

func TestSearch(t *testing.T) {
	r := newTestRouter(t)

	rec, body := doJSON(t, r, http.MethodGet, "/search?q=chrono", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	results, _ := body["results"].([]any)
	if len(results) == 0 {
		t.Fatal("expected a match for the sample highlight")
	}

	rec, body = doJSON(t, r, http.MethodGet, "/search", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if total, _ := body["total"].(float64); total != 0 {
		t.Fatalf("empty query total = %v", total)
	}
}

func TestGetMarquee(t *testing.T) {
	r := newTestRouter(t)

	rec, body := doJSON(t, r, http.MethodGet, "/marquee", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	items, _ := body["items"].([]any)
	if len(items) != 5 {
		t.Fatalf("default marquee size = %d", len(items))
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := newTestRouter(t)

	rec, _ := doJSON(t, r, http.MethodPost, "/admin/login", "", map[string]string{"password": "nope"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	rec, _ := doJSON(t, r, http.MethodPost, "/admin/project", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token status = %d", rec.Code)
	}

	rec, _ = doJSON(t, r, http.MethodPost, "/admin/project", "not-a-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token status = %d", rec.Code)
	}
}

func TestProjectLifecycle(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	// Create
	rec, body := doJSON(t, r, http.MethodPost, "/admin/project", token, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body["cloud"] != "local-only" {
		t.Fatalf("cloud = %v without a remote store", body["cloud"])
	}
	project, _ := body["project"].(map[string]any)
	projectID, _ := project["id"].(string)
	if projectID == "" {
		t.Fatal("created project has no id")
	}

	// Update
	updated := models.Movie{Title: "SECOND SUN", Genre: "Sci-Fi", Year: 2026}
	rec, _ = doJSON(t, r, http.MethodPut, "/admin/project/"+projectID, token, updated)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec, catalogBody := doJSON(t, r, http.MethodGet, "/catalog", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("catalog status = %d", rec.Code)
	}
	library, _ := catalogBody["library"].([]any)
	first, _ := library[0].(map[string]any)
	if first["title"] != "SECOND SUN" {
		t.Fatalf("library[0].title = %v", first["title"])
	}

	// Tags from free-form input
	rec, body = doJSON(t, r, http.MethodPut, "/admin/project/"+projectID+"/tags", token,
		map[string]string{"tags": "neon, night  city"})
	if rec.Code != http.StatusOK {
		t.Fatalf("tags status = %d, body %s", rec.Code, rec.Body.String())
	}
	tagged, _ := body["project"].(map[string]any)
	tags, _ := tagged["tags"].([]any)
	if len(tags) != 3 {
		t.Fatalf("tags = %v", tags)
	}

	// Delete
	rec, _ = doJSON(t, r, http.MethodDelete, "/admin/project/"+projectID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec, _ = doJSON(t, r, http.MethodDelete, "/admin/project/"+projectID, token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("double delete status = %d", rec.Code)
	}
}

func TestSectionAndCategoryFlow(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	rec, body := doJSON(t, r, http.MethodPost, "/admin/categories", token, map[string]string{"title": "Commercials"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category status = %d, body %s", rec.Code, rec.Body.String())
	}
	category, _ := body["category"].(map[string]any)
	categoryID, _ := category["id"].(string)
	if categoryID == "" {
		t.Fatal("created category has no id")
	}

	// Pick an existing library project.
	_, catalogBody := doJSON(t, r, http.MethodGet, "/catalog", "", nil)
	library, _ := catalogBody["library"].([]any)
	first, _ := library[0].(map[string]any)
	projectID, _ := first["id"].(string)

	rec, _ = doJSON(t, r, http.MethodPost, fmt.Sprintf("/admin/section/%s/movies", categoryID), token,
		map[string]string{"projectId": projectID})
	if rec.Code != http.StatusOK {
		t.Fatalf("add to category status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec, _ = doJSON(t, r, http.MethodPost, "/admin/section/no-such-section/movies", token,
		map[string]string{"projectId": projectID})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown section status = %d", rec.Code)
	}

	rec, _ = doJSON(t, r, http.MethodPut, fmt.Sprintf("/admin/section/%s/title", categoryID), token,
		map[string]string{"title": "Spots"})
	if rec.Code != http.StatusOK {
		t.Fatalf("rename status = %d", rec.Code)
	}

	rec, _ = doJSON(t, r, http.MethodDelete,
		fmt.Sprintf("/admin/section/%s/movies/%s", categoryID, projectID), token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove from category status = %d", rec.Code)
	}

	rec, _ = doJSON(t, r, http.MethodDelete, "/admin/categories/"+categoryID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete category status = %d", rec.Code)
	}
}

func TestMarqueeAdmin(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	rec, body := doJSON(t, r, http.MethodPost, "/admin/marquee", token,
		map[string]string{"text": "NEW SHOWCASE", "link": "/showcase"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status = %d, body %s", rec.Code, rec.Body.String())
	}
	item, _ := body["item"].(map[string]any)
	itemID, _ := item["id"].(string)
	if itemID == "" {
		t.Fatal("added item has no id")
	}

	rec, _ = doJSON(t, r, http.MethodDelete, "/admin/marquee/"+itemID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove status = %d", rec.Code)
	}

	_, listBody := doJSON(t, r, http.MethodGet, "/marquee", "", nil)
	items, _ := listBody["items"].([]any)
	if len(items) != 5 {
		t.Fatalf("marquee size after add+remove = %d", len(items))
	}
}

func TestPasswordChangeInvalidatesOld(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	rec, _ := doJSON(t, r, http.MethodPost, "/admin/password", token,
		map[string]string{"currentPassword": "wrong", "newPassword": "longenough"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong current password status = %d", rec.Code)
	}

	rec, _ = doJSON(t, r, http.MethodPost, "/admin/password", token,
		map[string]string{"currentPassword": testPassword, "newPassword": "abc"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("short password status = %d", rec.Code)
	}

	rec, _ = doJSON(t, r, http.MethodPost, "/admin/password", token,
		map[string]string{"currentPassword": testPassword, "newPassword": "longenough"})
	if rec.Code != http.StatusOK {
		t.Fatalf("change status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec, _ = doJSON(t, r, http.MethodPost, "/admin/login", "", map[string]string{"password": testPassword})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("old password still accepted, status = %d", rec.Code)
	}
	rec, _ = doJSON(t, r, http.MethodPost, "/admin/login", "", map[string]string{"password": "longenough"})
	if rec.Code != http.StatusOK {
		t.Fatalf("new password rejected, status = %d", rec.Code)
	}
}

func TestMediaUnavailableWithoutBucket(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	rec, _ := doJSON(t, r, http.MethodGet, "/admin/media", token, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("list status = %d", rec.Code)
	}

	rec, _ = doJSON(t, r, http.MethodDelete, "/admin/media?path=images/x.png", token, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("delete status = %d", rec.Code)
	}
}

func TestUpdateThemeAndBadge(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	rec, _ := doJSON(t, r, http.MethodPut, "/admin/theme", token,
		map[string]string{"themeColor": "#FF0055", "marqueeColor": "#000000", "marqueeTextColor": "#FFFFFF"})
	if rec.Code != http.StatusOK {
		t.Fatalf("theme status = %d", rec.Code)
	}

	rec, _ = doJSON(t, r, http.MethodPut, "/admin/badge", token,
		map[string]string{"text": "NEW FILM", "color": "#FF0055"})
	if rec.Code != http.StatusOK {
		t.Fatalf("badge status = %d", rec.Code)
	}

	_, body := doJSON(t, r, http.MethodGet, "/catalog", "", nil)
	if body["themeColor"] != "#FF0055" {
		t.Fatalf("themeColor = %v", body["themeColor"])
	}
	if body["heroBadgeText"] != "NEW FILM" {
		t.Fatalf("heroBadgeText = %v", body["heroBadgeText"])
	}
}

func TestTokenVerification(t *testing.T) {
	token, expiresAt, err := issueAdminToken(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if expiresAt.Before(time.Now()) {
		t.Fatal("token already expired")
	}
	if err := verifyAdminToken(testSecret, token); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := verifyAdminToken([]byte("other-secret"), token); err == nil {
		t.Fatal("token verified with the wrong secret")
	}

	expired, _, err := issueAdminToken(testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("issue expired: %v", err)
	}
	if err := verifyAdminToken(testSecret, expired); err == nil {
		t.Fatal("expired token verified")
	}
}
