package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_marketplace/internal/catalog"
	"github.com/fjod/go_marketplace/internal/checkout"
	"github.com/fjod/go_marketplace/internal/domain"
	"github.com/fjod/go_marketplace/internal/session"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := catalog.NewStore(
		map[int]domain.Product{
			42: {ID: 42, Name: "Speaker", Category: 1, Price: 100},
			43: {ID: 43, Name: "Freebie", Category: 1, Price: 0},
		},
		map[int]domain.Category{
			1: {ID: 1, Name: "Electronics"},
		},
	)
	registry := session.NewRegistry([]domain.Credential{
		{Email: "a@x.com", Password: "pw", IsAdmin: false},
		{Email: "root@x.com", Password: "secret", IsAdmin: true},
	})
	calculator := checkout.NewCalculator(registry, store, domain.PaymentModes{
		"upi":  "UPI",
		"card": "Credit Card",
	})

	return NewRouter(registry, store, calculator, 5*time.Second)
}

func doRequest(t *testing.T, handler http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(v))
}

func login(t *testing.T, handler http.Handler, email, password string) string {
	t.Helper()

	recorder := doRequest(t, handler, "POST", "/api/v1/auth/login", "",
		LoginRequestDTO{Email: email, Password: password})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response LoginResponseDTO
	decodeBody(t, recorder, &response)
	require.NotEmpty(t, response.Token)
	return response.Token
}

func TestWelcome(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "GET", "/", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]string
	decodeBody(t, recorder, &response)
	assert.Equal(t, "Welcome to the Demo Marketplace", response["message"])
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "GET", "/health", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]string
	decodeBody(t, recorder, &response)
	assert.Equal(t, "ok", response["status"])
}
