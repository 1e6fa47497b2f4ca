package accountd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"foodnetwork/internal/api"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.RateLimit = 1000
	cfg.Burst = 1000
	cfg.BcryptCost = bcrypt.MinCost
	return cfg
}

func newTestServer() *Server {
	cfg := testConfig()
	return NewServer(cfg, NewStore(cfg.BcryptCost))
}

func signUpRequest(email, password string) *http.Request {
	form := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/sign-up", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := serve(newTestServer(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSignUp_CamelCaseBody(t *testing.T) {
	w := serve(newTestServer(), signUpRequest("a@b.com", "x"))
	require.Equal(t, 201, w.Code)

	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	user := body["user"]
	assert.Equal(t, "a@b.com", user["email"])
	assert.Contains(t, user, "createdAt")
	assert.Contains(t, user, "apiKeys")
}

func TestSignUp_Errors(t *testing.T) {
	s := newTestServer()
	require.Equal(t, 201, serve(s, signUpRequest("a@b.com", "x")).Code)

	assert.Equal(t, 409, serve(s, signUpRequest("a@b.com", "x")).Code)
	assert.Equal(t, 422, serve(s, signUpRequest("bad", "x")).Code)
	assert.Equal(t, 422, serve(s, signUpRequest("c@d.com", "")).Code)
}

func TestLogin_RequiresBasicAuth(t *testing.T) {
	s := newTestServer()
	require.Equal(t, 201, serve(s, signUpRequest("a@b.com", "x")).Code)

	w := serve(s, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, 401, w.Code)
	assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.SetBasicAuth("a@b.com", "wrong")
	assert.Equal(t, 401, serve(s, req).Code)

	req = httptest.NewRequest(http.MethodPost, "/login", nil)
	req.SetBasicAuth("a@b.com", "x")
	w = serve(s, req)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"apiKeys":[]`)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = 1
	cfg.Burst = 2
	s := NewServer(cfg, NewStore(cfg.BcryptCost))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, serve(s, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestVerifyKey(t *testing.T) {
	s := newTestServer()
	_, err := s.store.CreateAccount("a@b.com", "x")
	require.NoError(t, err)
	token, err := s.store.CreateKey("a@b.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api-keys/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, 200, serve(s, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/api-keys/verify", nil)
	req.Header.Set("Authorization", "Bearer fn_nope")
	assert.Equal(t, 401, serve(s, req).Code)
}

func TestClientAgainstService(t *testing.T) {
	srv := httptest.NewServer(newTestServer().Router())
	t.Cleanup(srv.Close)

	client, err := api.NewClient(api.TransportConfig{BaseURL: srv.URL})
	require.NoError(t, err)
	ctx := context.Background()

	user, err := client.CreateAccount(ctx, "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	_, err = client.CreateAccount(ctx, "a@b.com", "x")
	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 409, statusErr.StatusCode)

	first, err := client.CreateKey(ctx, "a@b.com", "x")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first, TokenPrefix))

	_, err = client.CreateKey(ctx, "a@b.com", "wrong")
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.StatusCode)

	user, err = client.Authenticate(ctx, "a@b.com", "x")
	require.NoError(t, err)
	require.Len(t, user.APIKeys, 1)
	assert.True(t, user.APIKeys[0].IsActive())

	second, err := client.DeleteAndReissueKey(ctx, user.APIKeys[0].ID, "a@b.com", "x")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	user, err = client.Authenticate(ctx, "a@b.com", "x")
	require.NoError(t, err)
	require.Len(t, user.APIKeys, 2)
	require.NotNil(t, user.APIKeys[0].DeletedAt)
	assert.True(t, user.APIKeys[1].IsActive())

	_, err = client.DeleteAndReissueKey(ctx, user.APIKeys[0].ID, "a@b.com", "x")
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 410, statusErr.StatusCode)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("FOODNET_ACCOUNTD_ADDR", ":4000")
	t.Setenv("FOODNET_ACCOUNTD_RATE_LIMIT", "2.5")
	t.Setenv("FOODNET_ACCOUNTD_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.Addr)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, 10, cfg.Burst)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("FOODNET_ACCOUNTD_BURST", "0")
	_, err := LoadConfig(viper.New())
	assert.Error(t, err)
}

func TestLoadConfig_Seed(t *testing.T) {
	t.Setenv("FOODNET_ACCOUNTD_SEED", "a@b.com:x,c@d.com:y")

	cfg, err := LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, []string{"a@b.com:x", "c@d.com:y"}, cfg.Seed)
}
