package testutil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"supplier-admin/internal/config"
	"supplier-admin/internal/i18n"
	"supplier-admin/internal/middlewares"
	"supplier-admin/internal/mocks"
	"supplier-admin/internal/web"
	"testing"

	"go.uber.org/mock/gomock"
)

// TestContext holds everything needed for testing a handler in isolation.
type TestContext struct {
	AppContext      *middlewares.AppContext
	Request         *http.Request
	Response        *httptest.ResponseRecorder
	MockController  *gomock.Controller
	MockSession     *mocks.MockSessionProvider
	MockCredentials *mocks.MockCredentialChecker
	LogHandler      *TestLogHandler
}

// NewTestContext builds a context for method and url with mocked session and
// credential collaborators, the real renderer and a Danish translator.
func NewTestContext(t *testing.T, method, url string) *TestContext {
	return newTestContext(t, httptest.NewRequest(method, url, nil))
}

// NewTestContextWithForm builds a POST request with a url-encoded form body.
func NewTestContextWithForm(t *testing.T, url string, form url.Values) *TestContext {
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return newTestContext(t, req)
}

// NewTestContextWithBody builds a request with a raw body and content type.
func NewTestContextWithBody(t *testing.T, method, url, contentType string, body io.Reader) *TestContext {
	req := httptest.NewRequest(method, url, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return newTestContext(t, req)
}

func newTestContext(t *testing.T, req *http.Request) *TestContext {
	t.Helper()

	cfg := &config.Config{
		Auth:     config.DefaultAuthConfig,
		Sessions: config.DefaultSessionConfig,
	}

	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)
	mockSession := mocks.NewMockSessionProvider(ctrl)
	mockCredentials := mocks.NewMockCredentialChecker(ctrl)

	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:        req.Context(),
		Config:         cfg,
		Logger:         logger,
		SessionManager: mockSession,
		Credentials:    mockCredentials,
		Translator:     i18n.MustTranslator(cfg.Auth.Locale),
		Renderer:       renderer,
		Request:        req,
		Response:       rr,
	}

	return &TestContext{
		AppContext:      appCtx,
		Request:         req,
		Response:        rr,
		MockController:  ctrl,
		MockSession:     mockSession,
		MockCredentials: mockCredentials,
		LogHandler:      logHandler,
	}
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	t.Helper()
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

func (tc *TestContext) AssertLogCount(t *testing.T, level slog.Level, expectedCount int) {
	t.Helper()
	count := tc.LogHandler.CountByLevel(level)
	if count != expectedCount {
		t.Errorf("Expected %d log entries at level %v, got %d", expectedCount, level, count)
	}
}

// AssertNoLogValue fails if any record carries value in one of its attributes.
func (tc *TestContext) AssertNoLogValue(t *testing.T, value string) {
	t.Helper()
	for _, record := range tc.LogHandler.GetRecords() {
		if strings.Contains(record.Message, value) {
			t.Errorf("log message %q leaks %q", record.Message, value)
		}
		for key, attr := range record.Attrs {
			if s, ok := attr.(string); ok && strings.Contains(s, value) {
				t.Errorf("log attribute %s leaks %q", key, value)
			}
		}
	}
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	t.Helper()
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	t.Helper()
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// AssertRedirect checks the status code and the Location header.
func (tc *TestContext) AssertRedirect(t *testing.T, expectedStatus int, expectedLocation string) {
	t.Helper()
	tc.AssertStatus(t, expectedStatus)
	if loc := tc.Response.Header().Get("Location"); loc != expectedLocation {
		t.Errorf("Expected Location %q, got %q", expectedLocation, loc)
	}
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

func (tc *TestContext) AssertJSONBool(t *testing.T, field string, expected bool) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualBool, ok := actual.(bool)
	if !ok {
		t.Errorf("Expected %s to be a boolean, got %T", field, actual)
		return
	}

	if actualBool != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, actualBool)
	}
}

// AssertJSONString checks a specific string field in a JSON response
func (tc *TestContext) AssertJSONString(t *testing.T, field string, expected string) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualString, ok := actual.(string)
	if !ok {
		t.Errorf("Expected %s to be a string, got %T", field, actual)
		return
	}

	if actualString != expected {
		t.Errorf("Expected %s to be %q, got %q", field, expected, actualString)
	}
}

// WithConfig allows you to override the default config for specific tests
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	return tc
}

// WithTranslator swaps the locale used by the handler under test.
func (tc *TestContext) WithTranslator(locale string) *TestContext {
	tc.AppContext.Translator = i18n.MustTranslator(locale)
	return tc
}

// WithSessionManager allows you to override the session manager with a different mock or implementation
func (tc *TestContext) WithSessionManager(sm middlewares.SessionProvider) *TestContext {
	tc.AppContext.SessionManager = sm
	return tc
}

// WithCredentials replaces the credential checker, usually with auth.NewCredentials.
func (tc *TestContext) WithCredentials(c middlewares.CredentialChecker) *TestContext {
	tc.AppContext.Credentials = c
	return tc
}

// Helper to add headers
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

// WithCookie attaches a cookie to the request.
func (tc *TestContext) WithCookie(c *http.Cookie) *TestContext {
	tc.Request.AddCookie(c)
	return tc
}

// ExpectSessionIsAuthenticated sets up an expectation for session.IsAuthenticated()
func (tc *TestContext) ExpectSessionIsAuthenticated(result bool) *gomock.Call {
	return tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(result)
}

// ExpectSessionIssue sets up an expectation for session.Issue()
func (tc *TestContext) ExpectSessionIssue() *gomock.Call {
	return tc.MockSession.EXPECT().Issue(tc.AppContext)
}

// ExpectSessionRevoke sets up an expectation for session.Revoke()
func (tc *TestContext) ExpectSessionRevoke() *gomock.Call {
	return tc.MockSession.EXPECT().Revoke(tc.AppContext)
}

// ExpectCredentialCheck sets up an expectation for credentials.Check()
func (tc *TestContext) ExpectCredentialCheck(submitted string, result error) *gomock.Call {
	return tc.MockCredentials.EXPECT().Check(submitted).Return(result)
}
