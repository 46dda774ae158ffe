package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"accounts/config"
	appmiddleware "accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/router/handler"
	"accounts/internal/delivery/http/validator"
	"accounts/internal/infra/auth"
	"accounts/internal/infra/persistence/model"
	"accounts/internal/infra/persistence/postgres"
	"accounts/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer assembles the whole HTTP stack on an in-memory database:
// real repositories, real hashing and signing, real gates and routes.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.SessionModel{}))

	cfg := &config.Config{
		JWT:     config.JWTConfig{Secret: "integration-test-secret", TTL: time.Hour},
		Session: config.SessionConfig{TTL: time.Hour},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   log,
	})
	sessionUC := impl.NewSessionService(impl.SessionServiceParams{
		SessionRepo: sessionRepo,
		Config:      cfg,
		Logger:      log,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = appmiddleware.NewErrorMiddleware(log).HandleHTTPError

	r := NewRouter(RouterParams{
		UserHandler:   handler.NewUserHandler(userUC, log),
		AuthHandler:   handler.NewAuthHandler(userUC, sessionUC, nil, log),
		AuthHandlerV2: handler.NewAuthHandlerV2(userUC, tokenSvc, log),
		SessionGate:   appmiddleware.NewSessionGate(sessionUC, userUC, nil),
		TokenGate:     appmiddleware.NewTokenGate(tokenSvc, userUC),
		Policy:        appmiddleware.NewPolicyMiddleware(),
	})
	r.RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, path, body string, decorate func(*http.Request)) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if decorate != nil {
		decorate(req)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

const registerBody = `{
	"name": "Ada Lovelace",
	"email": "ada@example.com",
	"login": "ada",
	"password": "secret123",
	"address": {"street": "Main Street", "number": "42", "city": "London", "zipCode": "E1 6AN"}
}`

func TestTokenSurface_RegisterLoginAndAccess(t *testing.T) {
	e := newTestServer(t)

	// Registration is public on the token surface.
	rec := doJSON(e, http.MethodPost, "/v2/users", registerBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret123")

	// Without a token the rest of the surface is closed.
	rec = doJSON(e, http.MethodGet, "/v2/users", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "problems/unauthorized")

	// Login yields a bearer token.
	rec = doJSON(e, http.MethodPost, "/v2/auth/login",
		`{"login":"ada","password":"secret123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tokenResp struct {
		Token string `json:"token"`
		Type  string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokenResp))
	assert.Equal(t, "Bearer", tokenResp.Type)
	require.NotEmpty(t, tokenResp.Token)

	// The token opens the surface.
	withToken := func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenResp.Token)
	}
	rec = doJSON(e, http.MethodGet, "/v2/users", "", withToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"login":"ada"`)

	// A tampered token is as good as none.
	rec = doJSON(e, http.MethodGet, "/v2/users", "", func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenResp.Token+"x")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenSurface_LoginFailureDoesNotLeakAccounts(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v2/users", registerBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPassword := doJSON(e, http.MethodPost, "/v2/auth/login",
		`{"login":"ada","password":"nope1234"}`, nil)
	unknownLogin := doJSON(e, http.MethodPost, "/v2/auth/login",
		`{"login":"ghost","password":"nope1234"}`, nil)

	assert.Equal(t, http.StatusNotFound, wrongPassword.Code)
	assert.Equal(t, http.StatusNotFound, unknownLogin.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownLogin.Body.String())
}

func TestCookieSurface_LoginLogoutCycle(t *testing.T) {
	e := newTestServer(t)

	// Registration is the one open POST on the cookie surface.
	rec := doJSON(e, http.MethodPost, "/v1/users", registerBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Everything else needs a session.
	rec = doJSON(e, http.MethodGet, "/v1/users", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Login sets the session cookie and returns no body.
	rec = doJSON(e, http.MethodPost, "/auth/login",
		`{"login":"ada","password":"secret123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, rec.Body.String())

	var sessionCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == appmiddleware.SessionCookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	require.NotEmpty(t, sessionCookie.Value)

	withCookie := func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: appmiddleware.SessionCookieName, Value: sessionCookie.Value})
	}

	rec = doJSON(e, http.MethodGet, "/v1/users", "", withCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"login":"ada"`)

	// Logout invalidates the session server-side.
	rec = doJSON(e, http.MethodPost, "/auth/logout", "", withCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/users", "", withCookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCookieSurface_SearchAndCrud(t *testing.T) {
	e := newTestServer(t)

	require.Equal(t, http.StatusCreated,
		doJSON(e, http.MethodPost, "/v1/users", registerBody, nil).Code)

	rec := doJSON(e, http.MethodPost, "/auth/login",
		`{"login":"ada","password":"secret123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	withCookie := func(req *http.Request) {
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
	}

	// Search endpoints.
	rec = doJSON(e, http.MethodGet, "/v1/users/search/name?name=love", "", withCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ada Lovelace")

	rec = doJSON(e, http.MethodGet, "/v1/users/search/login?login=ada", "", withCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/users/search/email?email=ada@example.com", "", withCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/users/search/name", "", withCookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "problems/missing-parameter")

	// Update, password change, delete.
	listRec := doJSON(e, http.MethodGet, "/v1/users", "", withCookie)
	var users []struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &users))
	require.Len(t, users, 1)

	rec = doJSON(e, http.MethodPut, "/v1/users/1",
		`{"name": "Ada King", "address": {"city": "Paris"}}`, withCookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Ada King")

	rec = doJSON(e, http.MethodPatch, "/v1/users/1/password",
		`{"currentPassword": "secret123", "newPassword": "rotated456"}`, withCookie)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/v1/users/1/password",
		`{"currentPassword": "secret123", "newPassword": "rotated456"}`, withCookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "problems/domain-validation-error")

	rec = doJSON(e, http.MethodDelete, "/v1/users/1", "", withCookie)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/users/1", "", withCookie)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "problems/resource-not-found")
}

func TestDuplicateRegistrationMapsToDomainValidation(t *testing.T) {
	e := newTestServer(t)

	require.Equal(t, http.StatusCreated,
		doJSON(e, http.MethodPost, "/v2/users", registerBody, nil).Code)

	rec := doJSON(e, http.MethodPost, "/v2/users", registerBody, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "problems/domain-validation-error")
}

func TestMalformedJSONProducesProblemDocument(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v2/users", `{"name": `, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "problems/malformed-request")
}

func TestHealthEndpointIsOpen(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
