package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fromshel/ontaste-api/controllers"
	"github.com/Fromshel/ontaste-api/models"
	"github.com/Fromshel/ontaste-api/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// --- Mock OrderService ---

type mockOrderService struct {
	placeFn func(ctx context.Context, payload map[string]interface{}) (string, *services.ServiceError)
	listFn  func(ctx context.Context, email string) ([]models.Order, *services.ServiceError)
}

func (m *mockOrderService) PlaceOrder(ctx context.Context, payload map[string]interface{}) (string, *services.ServiceError) {
	return m.placeFn(ctx, payload)
}

func (m *mockOrderService) ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, *services.ServiceError) {
	return m.listFn(ctx, email)
}

// --- Helpers ---

func setupOrderRouter(svc services.OrderService) *gin.Engine {
	r := gin.New()
	oc := controllers.NewOrderController(svc)
	r.POST("/api/order", oc.CreateOrder)
	r.GET("/api/orders/:email", oc.GetOrdersByEmail)
	return r
}

// --- Tests ---

func TestOrderController_CreateOrder_Success(t *testing.T) {
	var captured map[string]interface{}
	svc := &mockOrderService{
		placeFn: func(_ context.Context, payload map[string]interface{}) (string, *services.ServiceError) {
			captured = payload
			return "68b1f0a2c3d4e5f601234567", nil
		},
	}
	r := setupOrderRouter(svc)

	body, _ := json.Marshal(map[string]interface{}{
		"userEmail": "ann@x.com",
		"items":     []string{"Latte"},
		"total":     220,
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/order", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "68b1f0a2c3d4e5f601234567", resp["id"])
	assert.Equal(t, "ann@x.com", captured["userEmail"])
}

func TestOrderController_CreateOrder_InvalidBody(t *testing.T) {
	svc := &mockOrderService{}
	r := setupOrderRouter(svc)

	req, _ := http.NewRequest(http.MethodPost, "/api/order", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderController_CreateOrder_StoreError(t *testing.T) {
	svc := &mockOrderService{
		placeFn: func(_ context.Context, _ map[string]interface{}) (string, *services.ServiceError) {
			return "", &services.ServiceError{StatusCode: 500, Message: "Failed to create order"}
		},
	}
	r := setupOrderRouter(svc)

	req, _ := http.NewRequest(http.MethodPost, "/api/order", bytes.NewBufferString(`{"userEmail":"ann@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOrderController_GetOrdersByEmail_PassesPathParam(t *testing.T) {
	var askedFor string
	svc := &mockOrderService{
		listFn: func(_ context.Context, email string) ([]models.Order, *services.ServiceError) {
			askedFor = email
			return []models.Order{{"userEmail": email, "status": "processing"}}, nil
		},
	}
	r := setupOrderRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/api/orders/ann@x.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ann@x.com", askedFor)

	var orders []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)
}

func TestOrderController_GetOrdersByEmail_NoOrders(t *testing.T) {
	svc := &mockOrderService{
		listFn: func(_ context.Context, _ string) ([]models.Order, *services.ServiceError) {
			return []models.Order{}, nil
		},
	}
	r := setupOrderRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/api/orders/ghost@x.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
