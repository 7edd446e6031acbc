package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"wrenchworks/internal/adapter/http/handlers/mocks"
	"wrenchworks/internal/domain/entities"
	"wrenchworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestScheduleHandler_Propose(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/schedule", h.Propose)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/schedule", bytes.NewBufferString(`{"actor":"mechanic"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("job not negotiable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/schedule", h.Propose)

		uc.EXPECT().Propose(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, usecase.ErrJobNotNegotiable)

		body := `{"actor":"mechanic","date":"2026-09-02","time":"10:00"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/schedule", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/schedule", h.Propose)

		uc.EXPECT().Propose(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, input usecase.ScheduleProposalInput) (entities.Job, error) {
				if input.Actor != entities.ActorMechanic || input.Date != "2026-09-02" {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.Job{ID: "job-1", Status: entities.JobStatusScheduled,
					Schedule: &entities.JobSchedule{Date: input.Date, Time: input.Time}}, nil
			},
		)

		body := `{"actor":"mechanic","date":"2026-09-02","time":"10:00"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/schedule", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestScheduleHandler_Accept(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("proposer accepting own proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/schedule/accept", h.Accept)

		uc.EXPECT().Accept(gomock.Any(), "job-1", entities.ActorMechanic).Return(entities.Job{}, usecase.ErrWrongActor)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/schedule/accept", bytes.NewBufferString(`{"actor":"mechanic"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/schedule/accept", h.Accept)

		uc.EXPECT().Accept(gomock.Any(), "job-1", entities.ActorCustomer).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/schedule/accept", bytes.NewBufferString(`{"actor":"customer"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestScheduleHandler_Reject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no pending proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/schedule/reject", h.Reject)

		uc.EXPECT().Reject(gomock.Any(), "job-1", entities.ActorCustomer, nil).Return(entities.Job{}, usecase.ErrNoPendingProposal)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/schedule/reject", bytes.NewBufferString(`{"actor":"customer"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reject with counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScheduleUseCase(ctrl)
		h := NewScheduleHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/schedule/reject", h.Reject)

		uc.EXPECT().Reject(gomock.Any(), "job-1", entities.ActorCustomer, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.Actor, counter *usecase.ScheduleProposalInput) (entities.Job, error) {
				if counter == nil || counter.Date != "2026-09-04" || counter.Time != "09:00" {
					t.Fatalf("unexpected counter: %+v", counter)
				}
				return entities.Job{ID: "job-1", Status: entities.JobStatusScheduled,
					Schedule: &entities.JobSchedule{Date: counter.Date, Time: counter.Time}}, nil
			},
		)

		body := `{"actor":"customer","counter":{"date":"2026-09-04","time":"09:00"}}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/schedule/reject", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestScheduleHandler_GetPending(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIScheduleUseCase(ctrl)
	h := NewScheduleHandler(uc)

	r := gin.New()
	r.GET("/v1/jobs/:job_id/schedule", h.GetPending)

	uc.EXPECT().GetPending(gomock.Any(), "job-1").
		Return(entities.ScheduleProposal{JobID: "job-1", ProposedBy: entities.ActorMechanic, Date: "2026-09-02", Time: "10:00"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/schedule", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
