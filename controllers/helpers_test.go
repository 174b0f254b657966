package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kariqs/bites-api/controllers"
	"github.com/Kariqs/bites-api/models"
	"github.com/Kariqs/bites-api/routes"
	"github.com/Kariqs/bites-api/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	router     *gin.Engine
	controller *controllers.Controller
	store      *store.Store
	token      string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New("Test Kitchen", store.WithCatalog(
		[]models.Product{
			{ID: "p1", Name: "Chicken Biryani", Price: 250, Category: "Main Course"},
			{ID: "p2", Name: "Dal Tadka", Price: 120, Category: "Dal"},
			{ID: "p3", Name: "Mutton Curry", Price: 300, Category: "Main Course"},
		},
		[]models.AddOn{
			{ID: "a1", Name: "Roti", Price: 15},
			{ID: "a2", Name: "Naan", Price: 25},
		},
	))

	operator, err := controllers.NewOperator("admin", "admin")
	require.NoError(t, err)

	c := controllers.New(s, operator, []byte("test-secret"))
	c.SendEmail = func(string, string, string) error { return nil }

	router := gin.New()
	routes.Register(router, c)

	app := &testApp{router: router, controller: c, store: s}
	rr := app.do(t, http.MethodPost, "/auth/login", map[string]string{"username": "admin", "password": "admin"})
	require.Equal(t, http.StatusOK, rr.Code)
	var login struct {
		Token string `json:"token"`
	}
	decode(t, rr, &login)
	app.token = login.Token
	return app
}

func (a *testApp) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

// do sends an anonymous request.
func (a *testApp) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	return a.request(t, method, path, body, "")
}

// operator sends a request carrying the operator token.
func (a *testApp) operator(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	return a.request(t, method, path, body, a.token)
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

type cartResponse struct {
	Items   []models.OrderItem `json:"items"`
	Total   float64            `json:"total"`
	Message string             `json:"message"`
}

type checkoutResponse struct {
	OrderID string         `json:"orderId"`
	Receipt models.Receipt `json:"receipt"`
}

func biryaniWithRoti() gin.H {
	return gin.H{
		"productId": "p1",
		"quantity":  2,
		"addOns":    []gin.H{{"addOnId": "a1", "quantity": 1}},
	}
}

func (a *testApp) checkout(t *testing.T) checkoutResponse {
	t.Helper()
	require.Equal(t, http.StatusCreated, a.do(t, http.MethodPost, "/cart", biryaniWithRoti()).Code)
	rr := a.do(t, http.MethodPost, "/checkout", gin.H{"paymentMethod": "cash"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var resp checkoutResponse
	decode(t, rr, &resp)
	return resp
}
