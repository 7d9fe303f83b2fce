package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"testing"
	"time"

	"bibleapp/backend/internal/db"
	"bibleapp/backend/internal/handler"
	"bibleapp/backend/internal/repository"
	"bibleapp/backend/internal/router"
	"bibleapp/backend/internal/service"
)

type authResponse struct {
	Token string `json:"token"`
}

type planEnvelope struct {
	Plan *struct {
		ID                int64    `json:"id"`
		PlanName          string   `json:"planName"`
		EndDate           string   `json:"endDate"`
		SelectedBookCodes []string `json:"selectedBookCodes"`
		GoalStatus        [][]int  `json:"goalStatus"`
		TotalReadCount    int      `json:"totalReadCount"`
		CurrentReadCount  int      `json:"currentReadCount"`
		GoalPercent       float64  `json:"goalPercent"`
		RestDay           int      `json:"restDay"`
		ReadCountPerDay   float64  `json:"readCountPerDay"`
	} `json:"plan"`
}

type plansEnvelope struct {
	Plans []struct {
		ID       int64  `json:"id"`
		PlanName string `json:"planName"`
	} `json:"plans"`
}

type dayEnvelope struct {
	Day struct {
		Date    string `json:"date"`
		Entries []struct {
			BookCode    string `json:"bookCode"`
			ReadChapter []int  `json:"readChapter"`
		} `json:"entries"`
		TotalChapters int `json:"totalChapters"`
	} `json:"day"`
}

type backupDoc struct {
	ExportedAt string                              `json:"exportedAt"`
	Source     string                              `json:"source"`
	Tables     map[string][]map[string]interface{} `json:"tables"`
}

func TestPlanLifecycleAndDerivedFields(t *testing.T) {
	engine := setupTestEngine(t)
	token := registerUser(t, engine, "reader@example.com", "123456")

	today := time.Now().Format("2006-01-02")
	endDate := time.Now().AddDate(0, 0, 5).Format("2006-01-02")

	// Ruth (4 chapters) + John (21 chapters) = 25 total.
	status, body := requestJSON(t, engine, http.MethodPost, "/api/plans", token, map[string]interface{}{
		"planName":          "",
		"startDate":         today,
		"endDate":           endDate,
		"selectedBookCodes": []string{"Rut", "Jhn"},
	})
	if status != http.StatusCreated {
		t.Fatalf("create plan failed with status %d: %s", status, string(body))
	}

	var created planEnvelope
	mustUnmarshal(t, body, &created)
	plan := created.Plan
	if plan == nil {
		t.Fatal("expected created plan in response")
	}
	if plan.PlanName != "Bible Reading Plan" {
		t.Fatalf("expected default plan name, got %q", plan.PlanName)
	}
	if plan.TotalReadCount != 25 {
		t.Fatalf("expected total 25, got %d", plan.TotalReadCount)
	}
	if plan.RestDay != 5 {
		t.Fatalf("expected restDay 5, got %d", plan.RestDay)
	}
	if plan.ReadCountPerDay != 5 {
		t.Fatalf("expected pace 5.00 at creation, got %v", plan.ReadCountPerDay)
	}
	if len(plan.GoalStatus) != 66 {
		t.Fatalf("expected 66 goal status rows, got %d", len(plan.GoalStatus))
	}

	// Mark John 1-5 as read.
	goalStatus := plan.GoalStatus
	johnRow := goalStatus[42] // John is the 43rd book
	for i := 0; i < 5; i++ {
		johnRow[i] = 1
	}
	status, body = requestJSON(t, engine, http.MethodPut, planPath(plan.ID)+"/goal-status", token, map[string]interface{}{
		"goalStatus": goalStatus,
	})
	if status != http.StatusOK {
		t.Fatalf("update goal status failed with status %d: %s", status, string(body))
	}

	var updated planEnvelope
	mustUnmarshal(t, body, &updated)
	if updated.Plan.CurrentReadCount != 5 {
		t.Fatalf("expected current 5, got %d", updated.Plan.CurrentReadCount)
	}
	if updated.Plan.GoalPercent != 20 {
		t.Fatalf("expected percent 20.00, got %v", updated.Plan.GoalPercent)
	}
	if updated.Plan.ReadCountPerDay != 4 {
		t.Fatalf("expected pace 4.00, got %v", updated.Plan.ReadCountPerDay)
	}

	// The edit lands on today's grass.
	status, body = requestJSON(t, engine, http.MethodGet, "/api/grass/"+today, token, nil)
	if status != http.StatusOK {
		t.Fatalf("get grass day failed with status %d: %s", status, string(body))
	}
	var day dayEnvelope
	mustUnmarshal(t, body, &day)
	if day.Day.TotalChapters != 5 {
		t.Fatalf("expected 5 chapters on today's grass, got %d", day.Day.TotalChapters)
	}
	if len(day.Day.Entries) != 1 || day.Day.Entries[0].BookCode != "Jhn" {
		t.Fatalf("expected a single John entry, got %+v", day.Day.Entries)
	}
	if !reflect.DeepEqual(day.Day.Entries[0].ReadChapter, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("expected chapters 1-5, got %v", day.Day.Entries[0].ReadChapter)
	}

	// Shrinking the selection recomputes against the unchanged matrix.
	status, body = requestJSON(t, engine, http.MethodPut, planPath(plan.ID), token, map[string]interface{}{
		"planName":          "John only",
		"startDate":         today,
		"endDate":           endDate,
		"selectedBookCodes": []string{"Jhn"},
	})
	if status != http.StatusOK {
		t.Fatalf("update metadata failed with status %d: %s", status, string(body))
	}
	mustUnmarshal(t, body, &updated)
	if updated.Plan.TotalReadCount != 21 || updated.Plan.CurrentReadCount != 5 {
		t.Fatalf("expected total 21 current 5, got %d/%d",
			updated.Plan.TotalReadCount, updated.Plan.CurrentReadCount)
	}
	if updated.Plan.GoalPercent != 23.81 {
		t.Fatalf("expected percent 23.81, got %v", updated.Plan.GoalPercent)
	}

	// Deletion is idempotent.
	status, _ = requestJSON(t, engine, http.MethodDelete, planPath(plan.ID), token, nil)
	if status != http.StatusNoContent {
		t.Fatalf("expected 204 on delete, got %d", status)
	}
	status, _ = requestJSON(t, engine, http.MethodDelete, planPath(plan.ID), token, nil)
	if status != http.StatusNoContent {
		t.Fatalf("expected 204 on repeated delete, got %d", status)
	}

	status, _ = requestJSON(t, engine, http.MethodGet, planPath(plan.ID), token, nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", status)
	}
}

func TestMetadataUpdateOnMissingPlanIsNoOp(t *testing.T) {
	engine := setupTestEngine(t)
	token := registerUser(t, engine, "reader@example.com", "123456")

	status, body := requestJSON(t, engine, http.MethodPut, "/api/plans/999", token, map[string]interface{}{
		"planName":          "ghost",
		"selectedBookCodes": []string{"Gen"},
	})
	if status != http.StatusOK {
		t.Fatalf("expected silent no-op 200, got %d: %s", status, string(body))
	}
	var envelope planEnvelope
	mustUnmarshal(t, body, &envelope)
	if envelope.Plan != nil {
		t.Fatalf("expected null plan for missing id, got %+v", envelope.Plan)
	}
}

func TestGrassReconciliationKeepsOtherSources(t *testing.T) {
	engine := setupTestEngine(t)
	token := registerUser(t, engine, "reader@example.com", "123456")

	today := time.Now().Format("2006-01-02")

	// Chapters 1, 2 and 5 arrive from a direct sync (another flow).
	status, body := requestJSON(t, engine, http.MethodPut, "/api/grass/"+today+"/books/Mrk", token, map[string]interface{}{
		"chapters": []int{1, 2, 5},
	})
	if status != http.StatusOK {
		t.Fatalf("seed grass failed with status %d: %s", status, string(body))
	}

	status, body = requestJSON(t, engine, http.MethodPost, "/api/plans", token, map[string]interface{}{
		"planName":          "Mark",
		"endDate":           time.Now().AddDate(0, 0, 30).Format("2006-01-02"),
		"selectedBookCodes": []string{"Mrk"},
	})
	if status != http.StatusCreated {
		t.Fatalf("create plan failed with status %d: %s", status, string(body))
	}
	var created planEnvelope
	mustUnmarshal(t, body, &created)
	planID := created.Plan.ID
	goalStatus := created.Plan.GoalStatus

	// First edit: check chapters 1 and 2. The day already holds {1,2,5}
	// and nothing was previously checked, so the set stays {1,2,5}.
	markRow := goalStatus[40] // Mark is the 41st book
	markRow[0], markRow[1] = 1, 1
	status, _ = requestJSON(t, engine, http.MethodPut, planPath(planID)+"/goal-status", token, map[string]interface{}{
		"goalStatus": goalStatus,
	})
	if status != http.StatusOK {
		t.Fatalf("first goal edit failed with status %d", status)
	}
	assertDayChapters(t, engine, token, today, "Mrk", []int{1, 2, 5})

	// Second edit: uncheck 2, check 3. Chapter 2 belonged to the
	// previous view so it goes; chapter 5 came from the direct sync and
	// survives; chapter 3 is new.
	markRow[1] = 0
	markRow[2] = 1
	status, _ = requestJSON(t, engine, http.MethodPut, planPath(planID)+"/goal-status", token, map[string]interface{}{
		"goalStatus": goalStatus,
	})
	if status != http.StatusOK {
		t.Fatalf("second goal edit failed with status %d", status)
	}
	assertDayChapters(t, engine, token, today, "Mrk", []int{1, 3, 5})
}

func TestGrassReplaceEmptyIsIdempotent(t *testing.T) {
	engine := setupTestEngine(t)
	token := registerUser(t, engine, "reader@example.com", "123456")

	today := time.Now().Format("2006-01-02")
	path := "/api/grass/" + today + "/books/Psa"

	status, _ := requestJSON(t, engine, http.MethodPut, path, token, map[string]interface{}{
		"chapters": []int{23, 23, 1},
	})
	if status != http.StatusOK {
		t.Fatalf("replace failed with status %d", status)
	}
	assertDayChapters(t, engine, token, today, "Psa", []int{1, 23})

	for i := 0; i < 2; i++ {
		status, _ = requestJSON(t, engine, http.MethodPut, path, token, map[string]interface{}{
			"chapters": []int{},
		})
		if status != http.StatusOK {
			t.Fatalf("empty replace %d failed with status %d", i, status)
		}
	}

	status, body := requestJSON(t, engine, http.MethodGet, "/api/grass/"+today, token, nil)
	if status != http.StatusOK {
		t.Fatalf("get day failed with status %d", status)
	}
	var day dayEnvelope
	mustUnmarshal(t, body, &day)
	if day.Day.TotalChapters != 0 || len(day.Day.Entries) != 0 {
		t.Fatalf("expected empty day after removal, got %+v", day.Day)
	}
}

func TestBackupRoundTrip(t *testing.T) {
	engine := setupTestEngine(t)
	token := registerUser(t, engine, "reader@example.com", "123456")

	today := time.Now().Format("2006-01-02")
	requestJSON(t, engine, http.MethodPost, "/api/plans", token, map[string]interface{}{
		"planName":          "Round trip",
		"endDate":           time.Now().AddDate(0, 0, 10).Format("2006-01-02"),
		"selectedBookCodes": []string{"Gen", "Rev"},
	})
	requestJSON(t, engine, http.MethodPut, "/api/grass/"+today+"/books/Gen", token, map[string]interface{}{
		"chapters": []int{1, 2},
	})
	requestJSON(t, engine, http.MethodPost, "/api/favorites", token, map[string]interface{}{
		"bookCode": "Psa", "chapter": 23, "verse": 1,
		"verseText": "The LORD is my shepherd; I shall not want.",
	})
	requestJSON(t, engine, http.MethodPost, "/api/prayers", token, map[string]interface{}{
		"title": "Morning", "content": "For the day ahead",
	})

	status, body := requestJSON(t, engine, http.MethodGet, "/api/backup/export", token, nil)
	if status != http.StatusOK {
		t.Fatalf("export failed with status %d: %s", status, string(body))
	}
	var exported backupDoc
	mustUnmarshal(t, body, &exported)
	if exported.ExportedAt == "" || exported.Source == "" {
		t.Fatalf("export envelope incomplete: %+v", exported)
	}
	if len(exported.Tables["plans"]) != 1 || len(exported.Tables["bible_grass"]) != 1 {
		t.Fatalf("unexpected exported table sizes: plans=%d grass=%d",
			len(exported.Tables["plans"]), len(exported.Tables["bible_grass"]))
	}

	// A payload with an unknown table imports cleanly; the table is
	// skipped.
	exported.Tables["future_feature"] = []map[string]interface{}{{"x": 1}}
	status, body = requestJSON(t, engine, http.MethodPost, "/api/backup/import", token, exported)
	if status != http.StatusOK {
		t.Fatalf("import failed with status %d: %s", status, string(body))
	}

	status, body = requestJSON(t, engine, http.MethodGet, "/api/backup/export", token, nil)
	if status != http.StatusOK {
		t.Fatalf("re-export failed with status %d", status)
	}
	var reExported backupDoc
	mustUnmarshal(t, body, &reExported)

	for _, table := range []string{"plans", "bible_grass", "favorite_verses", "meditation_memos", "prayer_journal", "app_settings"} {
		if !reflect.DeepEqual(exported.Tables[table], reExported.Tables[table]) {
			t.Fatalf("table %s changed across round trip:\nbefore: %v\nafter:  %v",
				table, exported.Tables[table], reExported.Tables[table])
		}
	}
}

func TestImportRejectsMalformedDocumentBeforeWiping(t *testing.T) {
	engine := setupTestEngine(t)
	token := registerUser(t, engine, "reader@example.com", "123456")

	requestJSON(t, engine, http.MethodPost, "/api/plans", token, map[string]interface{}{
		"planName":          "Keep me",
		"selectedBookCodes": []string{"Gen"},
	})

	status, body := requestJSON(t, engine, http.MethodPost, "/api/backup/import", token, map[string]interface{}{
		"source": "somewhere",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for document without tables, got %d: %s", status, string(body))
	}

	status, body = requestJSON(t, engine, http.MethodGet, "/api/plans", token, nil)
	if status != http.StatusOK {
		t.Fatalf("list plans failed with status %d", status)
	}
	var plans plansEnvelope
	mustUnmarshal(t, body, &plans)
	if len(plans.Plans) != 1 || plans.Plans[0].PlanName != "Keep me" {
		t.Fatalf("plan lost after rejected import: %+v", plans.Plans)
	}
}

func TestSettingsDefaultsAndUpdate(t *testing.T) {
	engine := setupTestEngine(t)
	token := registerUser(t, engine, "reader@example.com", "123456")

	status, body := requestJSON(t, engine, http.MethodGet, "/api/settings", token, nil)
	if status != http.StatusOK {
		t.Fatalf("get settings failed with status %d", status)
	}
	var settings struct {
		Settings struct {
			Language string `json:"language"`
			Theme    string `json:"theme"`
		} `json:"settings"`
	}
	mustUnmarshal(t, body, &settings)
	if settings.Settings.Language != "en" || settings.Settings.Theme != "light" {
		t.Fatalf("unexpected default settings: %+v", settings.Settings)
	}

	status, body = requestJSON(t, engine, http.MethodPut, "/api/settings", token, map[string]interface{}{
		"language": "ko", "theme": "dark",
	})
	if status != http.StatusOK {
		t.Fatalf("update settings failed with status %d", status)
	}
	mustUnmarshal(t, body, &settings)
	if settings.Settings.Language != "ko" || settings.Settings.Theme != "dark" {
		t.Fatalf("settings not updated: %+v", settings.Settings)
	}
}

func TestAnnotationsRequireValidReferences(t *testing.T) {
	engine := setupTestEngine(t)
	token := registerUser(t, engine, "reader@example.com", "123456")

	status, _ := requestJSON(t, engine, http.MethodPost, "/api/favorites", token, map[string]interface{}{
		"bookCode": "NotABook", "chapter": 1, "verse": 1,
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown book, got %d", status)
	}

	status, _ = requestJSON(t, engine, http.MethodPost, "/api/memos", token, map[string]interface{}{
		"bookCode": "Gen", "chapter": 99, "verse": 1, "memo": "out of range",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range chapter, got %d", status)
	}

	status, body := requestJSON(t, engine, http.MethodPost, "/api/memos", token, map[string]interface{}{
		"bookCode": "Gen", "chapter": 1, "verse": 1, "memo": "In the beginning",
	})
	if status != http.StatusCreated {
		t.Fatalf("create memo failed with status %d: %s", status, string(body))
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	engine := setupTestEngine(t)
	status, _ := requestJSON(t, engine, http.MethodGet, "/api/plans", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}
}

func planPath(id int64) string {
	return "/api/plans/" + strconv.FormatInt(id, 10)
}

func assertDayChapters(t *testing.T, engine http.Handler, token, date, bookCode string, want []int) {
	t.Helper()
	status, body := requestJSON(t, engine, http.MethodGet, "/api/grass/"+date, token, nil)
	if status != http.StatusOK {
		t.Fatalf("get day failed with status %d", status)
	}
	var day dayEnvelope
	mustUnmarshal(t, body, &day)
	for _, entry := range day.Day.Entries {
		if entry.BookCode == bookCode {
			if !reflect.DeepEqual(entry.ReadChapter, want) {
				t.Fatalf("expected %s chapters %v, got %v", bookCode, want, entry.ReadChapter)
			}
			return
		}
	}
	t.Fatalf("no %s entry on %s: %+v", bookCode, date, day.Day.Entries)
}

func setupTestEngine(t *testing.T) http.Handler {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsDir := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")
	if err := db.RunMigrations(database, migrationsDir); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	planRepo := repository.NewPlanRepository(database)
	grassRepo := repository.NewGrassRepository(database)
	favoriteRepo := repository.NewFavoriteRepository(database)
	memoRepo := repository.NewMemoRepository(database)
	prayerRepo := repository.NewPrayerRepository(database)
	settingsRepo := repository.NewSettingsRepository(database)
	backupRepo := repository.NewBackupRepository(database)

	authService := service.NewAuthService(userRepo, "test-secret", 24*time.Hour)

	return router.New(authService, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Plans:       handler.NewPlanHandler(service.NewPlanService(planRepo, grassRepo, time.Now)),
		Grass:       handler.NewGrassHandler(service.NewGrassService(grassRepo, time.Now)),
		Annotations: handler.NewAnnotationHandler(service.NewAnnotationService(favoriteRepo, memoRepo, prayerRepo, time.Now)),
		Settings:    handler.NewSettingsHandler(service.NewSettingsService(settingsRepo, "en", "light", time.Now)),
		Backup:      handler.NewBackupHandler(service.NewBackupService(backupRepo, "bibleapp-backend", time.Now)),
		Books:       handler.NewBookHandler(),
	}, []string{"http://localhost:5173"})
}

func registerUser(t *testing.T, server http.Handler, email, password string) string {
	t.Helper()
	status, body := requestJSON(t, server, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if status != http.StatusCreated {
		t.Fatalf("register %s failed with status %d: %s", email, status, string(body))
	}
	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal register response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("empty token for user %s", email)
	}
	return resp.Token
}

func mustUnmarshal(t *testing.T, body []byte, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(body, dest); err != nil {
		t.Fatalf("unmarshal response %s: %v", string(body), err)
	}
}

func requestJSON(
	t *testing.T,
	server http.Handler,
	method, path, token string,
	body interface{},
) (int, []byte) {
	t.Helper()

	var payload []byte
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		payload = raw
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder.Code, recorder.Body.Bytes()
}
