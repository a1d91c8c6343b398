package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restron/restron-api/internal/api/handler/v1/response"
	"github.com/restron/restron-api/internal/config"
	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/pkg/jwthelper"
	"github.com/restron/restron-api/internal/service"
)

const testSigningKey = "handler-test-key"

type stubStoreService struct {
	registeredBy uint
	registered   domain.Store
	charges      service.ChargesUpdate
	tokens       []string
	err          error
}

func (s *stubStoreService) Register(_ context.Context, adminID uint, store domain.Store) (domain.Store, error) {
	s.registeredBy, s.registered = adminID, store
	store.ID = 11
	store.Status = domain.StoreOpen
	return store, s.err
}

func (s *stubStoreService) Login(_ context.Context, email, _ string) (domain.Store, error) {
	return domain.Store{ID: 11, Email: email}, s.err
}

func (s *stubStoreService) Logout(context.Context, uint) error { return s.err }

func (s *stubStoreService) GetStore(_ context.Context, id uint) (domain.Store, error) {
	return domain.Store{ID: id, Name: "Spice Route", Password: "hashed"}, s.err
}

func (s *stubStoreService) UpdateCharges(_ context.Context, storeID uint, update service.ChargesUpdate) (domain.Store, error) {
	s.charges = update
	store := domain.Store{ID: storeID}
	if update.TaxRate != nil {
		store.Charges.TaxRate = *update.TaxRate
	}
	return store, s.err
}

func (s *stubStoreService) AddPushToken(_ context.Context, _ uint, token string) error {
	s.tokens = append(s.tokens, token)
	return s.err
}

func (s *stubStoreService) RemovePushToken(_ context.Context, _ uint, token string) error {
	s.tokens = append(s.tokens, "-"+token)
	return s.err
}

func newStoreRouter(svc StoreService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStoreHandler(&config.APIConfig{JWTSigningKey: testSigningKey}, svc)

	r.POST("/stores/register", asAdmin(4), h.HandleRegister)
	r.POST("/stores/register-anonymous", h.HandleRegister)
	r.POST("/stores/login", h.HandleLogin)

	auth := r.Group("/stores", asStore(11))
	auth.POST("/logout", h.HandleLogout)
	auth.GET("/profile", h.HandleGetProfile)
	auth.PUT("/charges", h.HandleUpdateCharges)
	auth.POST("/push-tokens", h.HandleAddPushToken)
	auth.DELETE("/push-tokens", h.HandleRemovePushToken)

	return r
}

const registerBody = `{
	"storeName": "Spice Route",
	"email": "owner@spice.test",
	"password": "secret123",
	"storeDetails": {"address": "12 MG Road, Bengaluru", "phoneNumber": "9876543210"},
	"chargeSettings": {"taxEnabled": true, "taxRate": 0.05, "serviceChargeEnabled": true, "serviceChargeValue": 50}
}`

func TestStoreHandler_HandleRegister(t *testing.T) {
	svc := &stubStoreService{}
	r := newStoreRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/stores/register", strings.NewReader(registerBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "dashboard/2.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "secret123")

	var got response.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, uint(11), got.Store.ID)

	claims, err := jwthelper.ParseToken([]byte(testSigningKey), got.Token)
	require.NoError(t, err)
	storeID, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, uint(11), storeID)
	assert.Equal(t, jwthelper.RoleStore, claims.Role)
	assert.Equal(t, "dashboard/2.1", claims.UserAgent)

	assert.Equal(t, uint(4), svc.registeredBy)
	assert.Equal(t, "12 MG Road, Bengaluru", svc.registered.Address)
	assert.True(t, decimal.NewFromInt(50).Equal(svc.registered.Charges.ServiceChargeValue))
}

func TestStoreHandler_HandleRegister_Errors(t *testing.T) {
	svc := &stubStoreService{err: service.ErrStoreEmailExists}
	r := newStoreRouter(svc)

	w := serve(r, http.MethodPost, "/stores/register", registerBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), service.ErrStoreEmailExists.Error())

	w = serve(r, http.MethodPost, "/stores/register", `{"storeName": "ab", "email": "nope"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var got response.Err
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(t, got.Errors)

	svc.err = service.ErrNotPermitted
	w = serve(r, http.MethodPost, "/stores/register", registerBody)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStoreHandler_HandleRegister_NeedsAdmin(t *testing.T) {
	svc := &stubStoreService{}

	w := serve(newStoreRouter(svc), http.MethodPost, "/stores/register-anonymous", registerBody)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, svc.registered.Email, "the service must not be reached")
}

func TestStoreHandler_HandleLogin(t *testing.T) {
	w := serve(newStoreRouter(&stubStoreService{}), http.MethodPost, "/stores/login", `{"email": "owner@spice.test", "password": "secret123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)

	w = serve(newStoreRouter(&stubStoreService{err: service.ErrWrongCredentials}), http.MethodPost, "/stores/login", `{"email": "owner@spice.test", "password": "wrong1234"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), service.ErrWrongCredentials.Error())
}

func TestStoreHandler_Authenticated(t *testing.T) {
	svc := &stubStoreService{}
	r := newStoreRouter(svc)

	w := serve(r, http.MethodGet, "/stores/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Spice Route")
	assert.NotContains(t, w.Body.String(), "hashed")

	w = serve(r, http.MethodPut, "/stores/charges", `{"taxRate": 0.18}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Nil(t, svc.charges.TaxEnabled, "absent settings stay untouched")
	require.NotNil(t, svc.charges.TaxRate)
	assert.True(t, decimal.RequireFromString("0.18").Equal(*svc.charges.TaxRate))
	assert.Contains(t, w.Body.String(), "Charge settings updated successfully")

	w = serve(r, http.MethodPost, "/stores/push-tokens", `{"token": "device-1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w = serve(r, http.MethodDelete, "/stores/push-tokens", `{"token": "device-1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w = serve(r, http.MethodPost, "/stores/push-tokens", `{"token": ""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"device-1", "-device-1"}, svc.tokens)

	w = serve(r, http.MethodPost, "/stores/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Logged out successfully"}`, w.Body.String())
}
