package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wrenchworks/internal/adapter/http/handlers/mocks"
	"wrenchworks/internal/domain/entities"
	"wrenchworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(entities.Job{}, usecase.ErrInvalidJobInput)

		body := `{"customer_id":"cust-1","category":"brakes","urgency":"back_in_time","service_type":"mobile"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		now := time.Now().UTC()
		uc.EXPECT().CreateJob(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input usecase.CreateJobInput) (entities.Job, error) {
				if input.CustomerID != "cust-1" || input.Category != "brakes" {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.Job{ID: "job-1", CustomerID: "cust-1", Category: "brakes",
					Urgency: entities.UrgencyHigh, ServiceType: entities.ServiceTypeMobile,
					Status: entities.JobStatusPosted, PaymentStatus: entities.JobPaymentStatusUnpaid,
					CreatedAt: now, UpdatedAt: now}, nil
			},
		)

		body := `{"customer_id":"cust-1","category":"brakes","urgency":"high","service_type":"mobile"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "job-1" || resp["status"] != "posted" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestJobHandler_GetJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id", h.GetJob)

		uc.EXPECT().GetJob(gomock.Any(), "job-9").Return(entities.Job{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id", h.GetJob)

		uc.EXPECT().GetJob(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusBidding}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_ListJobs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs", h.ListJobs)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("by customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs", h.ListJobs)

		uc.EXPECT().ListByCustomer(gomock.Any(), "cust-1").Return([]entities.Job{{ID: "job-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs?customer_id=cust-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("by mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs", h.ListJobs)

		uc.EXPECT().ListByMechanic(gomock.Any(), "mech-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs?mechanic_id=mech-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("customer path variant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/customers/:customer_id/jobs", h.ListCustomerJobs)

		uc.EXPECT().ListByCustomer(gomock.Any(), "cust-2").Return([]entities.Job{{ID: "job-9"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers/cust-2/jobs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mechanic path variant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/mechanics/:mechanic_id/jobs", h.ListMechanicJobs)

		uc.EXPECT().ListByMechanic(gomock.Any(), "mech-7").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/mechanics/mech-7/jobs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("start wrong state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/start", h.StartJob)

		uc.EXPECT().StartJob(gomock.Any(), "job-1", "mech-1").Return(entities.Job{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/start", bytes.NewBufferString(`{"mechanic_id":"mech-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("complete not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/complete", h.CompleteJob)

		uc.EXPECT().CompleteJob(gomock.Any(), "job-1", "mech-9").Return(entities.Job{}, usecase.ErrNotOwner)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/complete", bytes.NewBufferString(`{"mechanic_id":"mech-9"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/cancel", h.CancelJob)

		uc.EXPECT().CancelJob(gomock.Any(), "job-1", "cust-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusCancelled}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/cancel", bytes.NewBufferString(`{"customer_id":"cust-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
