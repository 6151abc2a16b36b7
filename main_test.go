package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Kousthubh02/Chillar/internal/auth"
	"github.com/Kousthubh02/Chillar/internal/config"
	"github.com/Kousthubh02/Chillar/internal/models"
	"github.com/Kousthubh02/Chillar/internal/ratelimit"
	"github.com/Kousthubh02/Chillar/internal/session"
	"github.com/Kousthubh02/Chillar/internal/storage/sqlite"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "admin-pass"
)

var (
	testDir    string
	testStore  *sqlite.SQLiteStore
	testMailer *outbox
	testApp    *App
	testRouter *gin.Engine
)

// outbox records OTP mails instead of sending them
type outbox struct {
	mu    sync.Mutex
	codes map[string]string
}

func (o *outbox) SendOTP(_ context.Context, to, code string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.codes[to] = code
	return nil
}

func (o *outbox) code(to string) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.codes[to]
}

func (o *outbox) reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.codes = make(map[string]string)
}

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	// Set gin to test mode
	gin.SetMode(gin.TestMode)
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	if err := setupTestDB(); err != nil {
		log.Fatalf("Failed to setup test database: %v", err)
	}

	code := m.Run()

	testStore.Close()
	os.RemoveAll(testDir)
	os.Exit(code)
}

// setupTestDB creates a throwaway SQLite database and the test router
func setupTestDB() error {
	var err error
	testDir, err = os.MkdirTemp("", "chillar-test-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}

	testStore, err = sqlite.New(filepath.Join(testDir, "test.db"))
	if err != nil {
		return fmt.Errorf("failed to open test database: %w", err)
	}

	testMailer = &outbox{codes: make(map[string]string)}
	testApp, err = newTestApp(func(*config.Config) {})
	if err != nil {
		return err
	}
	testRouter = setupRouter(testApp)
	return nil
}

// newTestApp builds an App over the shared test store; mutate adjusts the config
func newTestApp(mutate func(*config.Config)) (*App, error) {
	hash, err := auth.HashPIN(testAdminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	cfg := &config.Config{
		Port:             "8080",
		Environment:      "test",
		JWTSecret:        "test-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  24 * time.Hour,
		AdminCredentials: map[string]string{testAdminUser: hash},
		AdminSessionTTL:  time.Hour,
		CORSOrigins:      []string{"*"},
	}
	mutate(cfg)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newApp(cfg, testStore, ratelimit.NewMemoryLimiter(), session.NewMemoryStore(cfg.AdminSessionTTL), testMailer, logger), nil
}

// cleanupTestData removes all rows and resets rate limits
func cleanupTestData() error {
	ctx := context.Background()

	transactions, err := testStore.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}
	for _, t := range transactions {
		if err := testStore.DeleteTransaction(ctx, t.ID); err != nil {
			return fmt.Errorf("failed to clean transactions: %w", err)
		}
	}

	events, err := testStore.ListEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}
	for _, e := range events {
		if err := testStore.DeleteEvent(ctx, e.ID); err != nil {
			return fmt.Errorf("failed to clean events: %w", err)
		}
	}

	people, err := testStore.ListPeople(ctx)
	if err != nil {
		return fmt.Errorf("failed to list people: %w", err)
	}
	for _, p := range people {
		if err := testStore.DeletePerson(ctx, p.ID); err != nil {
			return fmt.Errorf("failed to clean people: %w", err)
		}
	}

	users, err := testStore.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	for _, u := range users {
		if err := testStore.DeleteUser(ctx, u.ID); err != nil {
			return fmt.Errorf("failed to clean users: %w", err)
		}
	}

	testApp.limiter = ratelimit.NewMemoryLimiter()
	testMailer.reset()
	return nil
}

// mustCleanup is cleanupTestData for the top of a test
func mustCleanup(t *testing.T) {
	t.Helper()
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}
}

// createTestPerson creates a test person and returns the ID
func createTestPerson(t *testing.T, name string) int64 {
	t.Helper()
	person := &models.Person{Name: name}
	if err := testStore.CreatePerson(context.Background(), person); err != nil {
		t.Fatalf("Failed to create person: %v", err)
	}
	return person.ID
}

// createTestEvent creates a test event and returns the ID
func createTestEvent(t *testing.T, name string) int64 {
	t.Helper()
	event := &models.Event{Name: name}
	if err := testStore.CreateEvent(context.Background(), event); err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}
	return event.ID
}

// createTestTransaction stores a transaction directly and returns the ID
func createTestTransaction(t *testing.T, personID int64, eventID *int64, amount float64, reason, due string) int64 {
	t.Helper()
	dueDate, err := models.ParseDate(due)
	if err != nil {
		t.Fatalf("Bad due date %q: %v", due, err)
	}
	txn := &models.Transaction{
		PersonID: personID,
		EventID:  eventID,
		Amount:   amount,
		Reason:   reason,
		DueDate:  dueDate,
	}
	if err := testStore.CreateTransaction(context.Background(), txn); err != nil {
		t.Fatalf("Failed to create transaction: %v", err)
	}
	return txn.ID
}

// jsonBody marshals v for a request body
func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}
	return bytes.NewBuffer(body)
}

// makeRequest helper function for making HTTP requests
func makeRequest(method, url string, body io.Reader) *httptest.ResponseRecorder {
	return makeRequestWithHeaders(testRouter, method, url, body, nil)
}

// makeRequestWithHeaders sends a request through router with extra headers
func makeRequestWithHeaders(router http.Handler, method, url string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

// parseJSONResponse helper function to parse JSON response
func parseJSONResponse(recorder *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(recorder.Body.Bytes(), target)
}

// responseMsg returns the msg field of a JSON response
func responseMsg(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var resp MessageResponse
	assertNoError(t, parseJSONResponse(recorder, &resp))
	return resp.Msg
}

// assertStatusCode helper function to assert HTTP status code
func assertStatusCode(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected status code %d, got %d", expected, actual)
	}
}

// assertNoError helper function to assert no error occurred
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestHealth(t *testing.T) {
	resp := makeRequest("GET", "/health", nil)
	assertStatusCode(t, http.StatusOK, resp.Code)

	var body map[string]string
	assertNoError(t, parseJSONResponse(resp, &body))
	assert.Equal(t, "ok", body["status"])
}

func TestMetrics(t *testing.T) {
	makeRequest("GET", "/health", nil)

	resp := makeRequest("GET", "/metrics", nil)
	assertStatusCode(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "chillar_http_requests_total")
}

func TestDocs(t *testing.T) {
	resp := makeRequest("GET", "/docs/doc.json", nil)
	assertStatusCode(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "/api/transactions/{id}/pay")
}

func TestRequestID(t *testing.T) {
	resp := makeRequest("GET", "/health", nil)
	assert.NotEmpty(t, resp.Header().Get(requestIDHeader))

	resp = makeRequestWithHeaders(testRouter, "GET", "/health", nil, map[string]string{requestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", resp.Header().Get(requestIDHeader))
}

func TestCORS(t *testing.T) {
	resp := makeRequestWithHeaders(testRouter, "OPTIONS", "/api/people", nil, map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": "POST",
	})

	assert.Less(t, resp.Code, 300)
	assert.Equal(t, "http://localhost:3000", resp.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(resp.Header().Get("Access-Control-Allow-Methods"), "PATCH"))
}
