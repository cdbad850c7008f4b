package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"meno/internal/config"
	"meno/internal/http/handlers"
	"meno/internal/repos"
)

type testApp struct {
	app  *fiber.App
	deps *handlers.Deps
	db   *sqlx.DB
}

func testConfig() config.Config {
	return config.Config{
		DBDSN:        ":memory:",
		JWTSecret:    "test-secret",
		TokenTTL:     time.Hour,
		BcryptCost:   bcrypt.MinCost,
		CORSOrigins:  "*",
		LoginRateMax: 100,
		TemplatesDir: "../../web/templates",
		StaticDir:    "../../web/static",
	}
}

func newTestApp(t *testing.T, tweak ...func(*config.Config)) *testApp {
	t.Helper()
	cfg := testConfig()
	for _, fn := range tweak {
		fn(&cfg)
	}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	deps := handlers.NewDeps(db, cfg)
	return &testApp{app: handlers.NewApp(cfg, deps), deps: deps, db: db}
}

// do sends a JSON request and returns the response with its body read.
func (ta *testApp) do(t *testing.T, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func (ta *testApp) signup(t *testing.T, name, email, password, role string) int64 {
	t.Helper()
	resp, body := ta.do(t, "POST", "/api/signup", map[string]string{
		"fullname": name, "email": email, "password": password, "role": role,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var out struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	return out.ID
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID       int64  `json:"id"`
		FullName string `json:"fullname"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	} `json:"user"`
}

func (ta *testApp) login(t *testing.T, email, password string) loginResponse {
	t.Helper()
	resp, body := ta.do(t, "POST", "/api/login", map[string]string{"email": email, "password": password}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out loginResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

// member signs a user up and returns the user id and a fresh token.
func (ta *testApp) member(t *testing.T, email string) (int64, string) {
	t.Helper()
	id := ta.signup(t, "Member", email, "Passw0rd!", "student")
	return id, ta.login(t, email, "Passw0rd!").Token
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var out struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out.Error
}
