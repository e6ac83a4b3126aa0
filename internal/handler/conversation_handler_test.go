package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/cqrs"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/repository"
)

type mockConversationCommander struct {
	createFn func(cqrs.CreateConversationCommand) (*models.Conversation, error)
}

func (m *mockConversationCommander) CreateConversation(_ context.Context, cmd cqrs.CreateConversationCommand) (*models.Conversation, error) {
	if m.createFn != nil {
		return m.createFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}

type mockConversationQuerier struct {
	listFn func(cqrs.ListConversationsQuery) ([]models.Conversation, error)
}

func (m *mockConversationQuerier) ListConversations(_ context.Context, q cqrs.ListConversationsQuery) ([]models.Conversation, error) {
	if m.listFn != nil {
		return m.listFn(q)
	}
	return nil, fmt.Errorf("not configured")
}

func newConversationTestRouter(cmds ConversationCommander, qrys ConversationQuerier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewConversationHandler(cmds, qrys)
	api := r.Group("/api")
	api.GET("/conversations/:userId", h.ListConversations)
	api.POST("/conversations", h.CreateConversation)
	return r
}

func TestCreateConversationHandler(t *testing.T) {
	stored := &models.Conversation{
		ID: 1, UserID: 1, Message: "잔액 알려줘",
		Response:  "현재 잔액은 2,847,500원입니다. 다른 도움이 필요하시면 말씀해주세요!",
		Type:      models.ConversationChat,
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name           string
		body           any
		createFn       func(cqrs.CreateConversationCommand) (*models.Conversation, error)
		expectedStatus int
	}{
		{
			name: "created with generated response",
			body: map[string]any{"userId": 1, "message": "잔액 알려줘"},
			createFn: func(cmd cqrs.CreateConversationCommand) (*models.Conversation, error) {
				return stored, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad request - missing message",
			body:           map[string]any{"userId": 1},
			createFn:       nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - unknown conversation type",
			body:           map[string]any{"userId": 1, "message": "잔액", "type": "video"},
			createFn:       nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not found - unknown user",
			body: map[string]any{"userId": 99, "message": "잔액"},
			createFn: func(cmd cqrs.CreateConversationCommand) (*models.Conversation, error) {
				return nil, repository.ErrNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newConversationTestRouter(&mockConversationCommander{createFn: tt.createFn}, &mockConversationQuerier{})
			w := doRequest(router, http.MethodPost, "/api/conversations", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateConversationIncludesResponse(t *testing.T) {
	router := newConversationTestRouter(&mockConversationCommander{
		createFn: func(cmd cqrs.CreateConversationCommand) (*models.Conversation, error) {
			return &models.Conversation{
				ID: 1, UserID: cmd.UserID, Message: cmd.Message,
				Response:  "송금을 도와드릴게요! 누구에게 보내시겠어요?",
				Type:      models.ConversationChat,
				CreatedAt: time.Now(),
			}, nil
		},
	}, &mockConversationQuerier{})

	w := doRequest(router, http.MethodPost, "/api/conversations", map[string]any{"userId": 1, "message": "송금하고 싶어"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d; body: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp["response"] == "" || resp["response"] == nil {
		t.Errorf("expected assistant response in record, got %v", resp)
	}
	if resp["type"] != "chat" {
		t.Errorf("expected type chat, got %v", resp["type"])
	}
}

func TestListConversationsHandler(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		listFn         func(cqrs.ListConversationsQuery) ([]models.Conversation, error)
		expectedStatus int
	}{
		{
			name:   "success",
			userID: "1",
			listFn: func(q cqrs.ListConversationsQuery) ([]models.Conversation, error) {
				return []models.Conversation{}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - non-numeric user id",
			userID:         "abc",
			listFn:         nil,
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newConversationTestRouter(&mockConversationCommander{}, &mockConversationQuerier{listFn: tt.listFn})
			w := doRequest(router, http.MethodGet, "/api/conversations/"+tt.userID, nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
