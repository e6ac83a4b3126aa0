package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/command"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/cqrs"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/repository"
)

// ---- mock implementations ----

type mockTransactionCommander struct {
	createFn func(cqrs.CreateTransactionCommand) (*models.Transaction, error)
}

func (m *mockTransactionCommander) CreateTransaction(_ context.Context, cmd cqrs.CreateTransactionCommand) (*models.Transaction, error) {
	if m.createFn != nil {
		return m.createFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}

type mockTransactionQuerier struct {
	getFn  func(cqrs.GetTransactionQuery) (*models.Transaction, error)
	listFn func(cqrs.ListTransactionsQuery) ([]models.Transaction, error)
}

func (m *mockTransactionQuerier) GetTransaction(_ context.Context, q cqrs.GetTransactionQuery) (*models.Transaction, error) {
	if m.getFn != nil {
		return m.getFn(q)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockTransactionQuerier) ListTransactions(_ context.Context, q cqrs.ListTransactionsQuery) ([]models.Transaction, error) {
	if m.listFn != nil {
		return m.listFn(q)
	}
	return nil, fmt.Errorf("not configured")
}

// ---- helpers ----

func newTxTestRouter(cmds TransactionCommander, qrys TransactionQuerier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTransactionHandler(cmds, qrys)
	api := r.Group("/api")
	api.GET("/transactions/:userId", h.ListTransactions)
	api.GET("/transaction/:id", h.GetTransaction)
	api.POST("/transactions", h.CreateTransaction)
	return r
}

func doRequest(router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	if body != nil {
		b, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, url, strings.NewReader(string(b)))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ---- test data ----

var testTransaction = &models.Transaction{
	ID: 4, UserID: 1, Type: models.TransactionSend,
	Amount: decimal.NewFromInt(100000), Recipient: "손자 김민수",
	Status: models.StatusCompleted, CreatedAt: time.Now(),
}

func sendBody() map[string]any {
	return map[string]any{
		"userId": 1, "type": "send", "amount": "100000",
		"recipient": "손자 김민수", "recipientAccount": "****5678",
		"description": "용돈입니다", "status": "completed",
	}
}

// ---- tests ----

func TestCreateTransactionHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		createFn       func(cqrs.CreateTransactionCommand) (*models.Transaction, error)
		expectedStatus int
	}{
		{
			name:           "created - send money",
			body:           sendBody(),
			createFn:       func(cmd cqrs.CreateTransactionCommand) (*models.Transaction, error) { return testTransaction, nil },
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad request - missing required fields",
			body:           map[string]any{},
			createFn:       nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - non-numeric amount",
			body:           map[string]any{"userId": 1, "type": "send", "amount": "십만원"},
			createFn:       nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - unknown type",
			body:           map[string]any{"userId": 1, "type": "loan", "amount": "100"},
			createFn:       nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bad request - service rejects amount",
			body: sendBody(),
			createFn: func(cmd cqrs.CreateTransactionCommand) (*models.Transaction, error) {
				return nil, fmt.Errorf("%w: amount must be greater than zero", command.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not found - unknown user",
			body: sendBody(),
			createFn: func(cmd cqrs.CreateTransactionCommand) (*models.Transaction, error) {
				return nil, repository.ErrNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "internal error - storage failure",
			body: sendBody(),
			createFn: func(cmd cqrs.CreateTransactionCommand) (*models.Transaction, error) {
				return nil, fmt.Errorf("storage unavailable")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTxTestRouter(&mockTransactionCommander{createFn: tt.createFn}, &mockTransactionQuerier{})
			w := doRequest(router, http.MethodPost, "/api/transactions", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateTransactionResponseShape(t *testing.T) {
	router := newTxTestRouter(&mockTransactionCommander{
		createFn: func(cmd cqrs.CreateTransactionCommand) (*models.Transaction, error) { return testTransaction, nil },
	}, &mockTransactionQuerier{})

	w := doRequest(router, http.MethodPost, "/api/transactions", sendBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp["id"] == nil || resp["createdAt"] == nil {
		t.Errorf("expected server-assigned id and createdAt in response, got %v", resp)
	}
	if amount, ok := resp["amount"].(string); !ok || amount != "100000" {
		t.Errorf("expected amount as decimal string, got %v", resp["amount"])
	}
}

func TestListTransactionsHandler(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		listFn         func(cqrs.ListTransactionsQuery) ([]models.Transaction, error)
		expectedStatus int
	}{
		{
			name:   "success",
			userID: "1",
			listFn: func(q cqrs.ListTransactionsQuery) ([]models.Transaction, error) {
				return []models.Transaction{*testTransaction}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - non-numeric user id",
			userID:         "abc",
			listFn:         nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "empty list is 200",
			userID: "2",
			listFn: func(q cqrs.ListTransactionsQuery) ([]models.Transaction, error) {
				return []models.Transaction{}, nil
			},
			expectedStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTxTestRouter(&mockTransactionCommander{}, &mockTransactionQuerier{listFn: tt.listFn})
			w := doRequest(router, http.MethodGet, "/api/transactions/"+tt.userID, nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestGetTransactionHandler(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		getFn          func(cqrs.GetTransactionQuery) (*models.Transaction, error)
		expectedStatus int
	}{
		{
			name: "success",
			id:   "4",
			getFn: func(q cqrs.GetTransactionQuery) (*models.Transaction, error) {
				return testTransaction, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "999",
			getFn: func(q cqrs.GetTransactionQuery) (*models.Transaction, error) {
				return nil, repository.ErrNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "bad request - non-numeric id",
			id:             "abc",
			getFn:          nil,
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTxTestRouter(&mockTransactionCommander{}, &mockTransactionQuerier{getFn: tt.getFn})
			w := doRequest(router, http.MethodGet, "/api/transaction/"+tt.id, nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
