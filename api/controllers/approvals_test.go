package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/terramasterhub/hub-backend/internal/approvals"
	"github.com/terramasterhub/hub-backend/internal/users"
	"github.com/terramasterhub/hub-backend/pkg/enums"
	pkgerrors "github.com/terramasterhub/hub-backend/pkg/errors"
)

type stubApprovalsService struct {
	pending  []approvals.PendingUserDTO
	details  *approvals.PendingUserDTO
	approved *users.UserDTO
	err      error
	lastID   uuid.UUID
}

func (s *stubApprovalsService) ListPending(ctx context.Context) ([]approvals.PendingUserDTO, error) {
	return s.pending, s.err
}

func (s *stubApprovalsService) Details(ctx context.Context, id uuid.UUID) (*approvals.PendingUserDTO, error) {
	s.lastID = id
	return s.details, s.err
}

func (s *stubApprovalsService) Approve(ctx context.Context, id uuid.UUID) (*users.UserDTO, error) {
	s.lastID = id
	return s.approved, s.err
}

func requestWithUserID(method, path, userID string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	rc := chi.NewRouteContext()
	rc.URLParams.Add("userId", userID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

func TestApprovalsListPending(t *testing.T) {
	svc := &stubApprovalsService{pending: []approvals.PendingUserDTO{{
		ID:       uuid.New(),
		Email:    "pending@terramaster.ph",
		UserType: enums.UserTypeSurveyor,
		Status:   enums.UserStatusPending,
	}}}
	handler := ApprovalsList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/approvals", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data []approvals.PendingUserDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Email != "pending@terramaster.ph" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestApprovalsDetailsRejectsBadID(t *testing.T) {
	handler := ApprovalsDetails(&stubApprovalsService{}, nil)

	req := requestWithUserID(http.MethodGet, "/api/admin/v1/approvals/not-a-uuid", "not-a-uuid")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestApprovalsApproveSuccess(t *testing.T) {
	id := uuid.New()
	svc := &stubApprovalsService{approved: &users.UserDTO{
		ID:     id,
		Status: enums.UserStatusActive,
	}}
	handler := ApprovalsApprove(svc, nil)

	req := requestWithUserID(http.MethodPost, "/api/admin/v1/approvals/"+id.String()+"/approve", id.String())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastID != id {
		t.Fatalf("expected service called with %s got %s", id, svc.lastID)
	}
	var envelope struct {
		Data users.UserDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Status != enums.UserStatusActive {
		t.Fatalf("expected verified status got %s", envelope.Data.Status)
	}
}

func TestApprovalsApproveAlreadyHandled(t *testing.T) {
	id := uuid.New()
	svc := &stubApprovalsService{err: pkgerrors.New(pkgerrors.CodeStateConflict, "user status is already Verified")}
	handler := ApprovalsApprove(svc, nil)

	req := requestWithUserID(http.MethodPost, "/api/admin/v1/approvals/"+id.String()+"/approve", id.String())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeStateConflict) {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
}
