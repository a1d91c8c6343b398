package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/restron/restron-api/internal/config"
	"github.com/restron/restron-api/internal/pkg/jwthelper"
	"github.com/restron/restron-api/internal/realtime"
)

const (
	testSigningKey = "server-test-key"
	testUserAgent  = "dashboard/2.1"
)

// newTestServer wires the real routes over a database that is never
// reached: every request here is rejected before a query runs.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=restron dbname=restron sslmode=disable",
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	conf := &config.AppConfig{
		API: &config.APIConfig{
			JWTSigningKey: testSigningKey,
			ClientURL:     "https://order.example.com",
		},
		Gin:    &config.GinConfig{Mode: gin.TestMode},
		Push:   &config.PushConfig{},
		Orders: &config.OrdersConfig{},
	}

	return NewServer(conf, db, realtime.NewHub(), nil, time.UTC)
}

func request(s *Server, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", testUserAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	return w
}

func tokenFor(t *testing.T, id uint, role jwthelper.Role) string {
	t.Helper()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), id, role, testUserAgent)
	require.NoError(t, err)

	return token
}

func TestServer_StoreRegistrationNeedsSuperadmin(t *testing.T) {
	s := newTestServer(t)
	body := `{"storeName": "Spice Route", "email": "owner@spice.test", "password": "secret123"}`

	tests := map[string]string{
		"anonymous":   "",
		"store token": tokenFor(t, 3, jwthelper.RoleStore),
		"plain admin": tokenFor(t, 3, jwthelper.RoleAdmin),
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			w := request(s, http.MethodPost, "/api/v1/stores/register", token, body)
			assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
		})
	}

	w := request(s, http.MethodPost, "/api/v1/admins/register", tokenFor(t, 3, jwthelper.RoleAdmin), body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_QueryTokenOnlyOnWebsocket(t *testing.T) {
	s := newTestServer(t)
	token := tokenFor(t, 3, jwthelper.RoleStore)

	w := request(s, http.MethodGet, "/api/v1/items?token="+token, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(s, http.MethodGet, "/api/v1/ws?token="+token, "", "")
	assert.NotEqual(t, http.StatusUnauthorized, w.Code, "the websocket route reads the query token")
}

func TestServer_AccessLogHidesToken(t *testing.T) {
	var buf bytes.Buffer
	previous := gin.DefaultWriter
	gin.DefaultWriter = &buf
	t.Cleanup(func() { gin.DefaultWriter = previous })

	s := newTestServer(t)
	token := tokenFor(t, 3, jwthelper.RoleStore)

	request(s, http.MethodGet, "/api/v1/ws?token="+token, "", "")

	assert.Contains(t, buf.String(), "/api/v1/ws?token=redacted")
	assert.NotContains(t, buf.String(), token)
}
