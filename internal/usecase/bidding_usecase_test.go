package usecase

import (
	"context"
	"errors"
	"testing"

	"wrenchworks/internal/domain/entities"
	mock_interfaces "wrenchworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newBiddingForTest(ctrl *gomock.Controller) (*BiddingUseCase, workflowMocks) {
	workflow, m := newWorkflowForTest(ctrl, false)
	return NewBiddingUseCase(m.bids, workflow), m
}

func TestBiddingUseCase_PlaceBid(t *testing.T) {
	posted := entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusPosted, Version: 1}

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newBiddingForTest(ctrl)

		if _, err := uc.PlaceBid(context.Background(), "job-1", "mech-1", 0, ""); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("job not biddable once accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBiddingForTest(ctrl)

		accepted := posted
		accepted.Status = entities.JobStatusAccepted
		accepted.MechanicID = "mech-9"
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(accepted, nil)

		if _, err := uc.PlaceBid(context.Background(), "job-1", "mech-1", 50, ""); !errors.Is(err, ErrJobNotBiddable) {
			t.Fatalf("expected ErrJobNotBiddable, got %v", err)
		}
	})

	t.Run("duplicate active bid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBiddingForTest(ctrl)

		bidding := posted
		bidding.Status = entities.JobStatusBidding
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(bidding, nil)
		m.bids.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Bid{
			{ID: "bid-1", JobID: "job-1", MechanicID: "mech-1", Status: entities.BidStatusActive},
		}, nil)

		if _, err := uc.PlaceBid(context.Background(), "job-1", "mech-1", 60, ""); !errors.Is(err, ErrDuplicateBid) {
			t.Fatalf("expected ErrDuplicateBid, got %v", err)
		}
	})

	t.Run("withdrawn bid does not block a new one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBiddingForTest(ctrl)

		bidding := posted
		bidding.Status = entities.JobStatusBidding
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(bidding, nil)
		m.bids.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Bid{
			{ID: "bid-1", JobID: "job-1", MechanicID: "mech-1", Status: entities.BidStatusWithdrawn},
		}, nil)
		m.bids.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Bid{})).DoAndReturn(
			func(_ context.Context, b entities.Bid) (entities.Bid, error) { return b, nil },
		)

		bid, err := uc.PlaceBid(context.Background(), "job-1", "mech-1", 60, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bid.Status != entities.BidStatusActive {
			t.Fatalf("expected active bid, got %s", bid.Status)
		}
	})

	t.Run("first bid flips job to bidding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBiddingForTest(ctrl)

		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(posted, nil)
		m.bids.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)
		m.bids.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Bid{})).DoAndReturn(
			func(_ context.Context, b entities.Bid) (entities.Bid, error) {
				if b.JobID != "job-1" || b.MechanicID != "mech-1" || b.Amount != 50 || b.Status != entities.BidStatusActive {
					t.Fatalf("unexpected bid: %+v", b)
				}
				return b, nil
			},
		)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Status != entities.JobStatusBidding {
					t.Fatalf("expected bidding, got %s", j.Status)
				}
				return j, nil
			},
		)

		if _, err := uc.PlaceBid(context.Background(), "job-1", "mech-1", 50, "can do tomorrow"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("second bid leaves status alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBiddingForTest(ctrl)

		bidding := posted
		bidding.Status = entities.JobStatusBidding
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(bidding, nil)
		m.bids.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Bid{
			{ID: "bid-1", JobID: "job-1", MechanicID: "mech-1", Status: entities.BidStatusActive},
		}, nil)
		m.bids.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Bid) (entities.Bid, error) { return b, nil },
		)
		// no jobs.Update expected

		if _, err := uc.PlaceBid(context.Background(), "job-1", "mech-2", 45, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBiddingUseCase_WithdrawBid(t *testing.T) {
	active := entities.Bid{ID: "bid-1", JobID: "job-1", MechanicID: "mech-1", Status: entities.BidStatusActive}

	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBiddingForTest(ctrl)

		m.bids.EXPECT().GetByID(gomock.Any(), "bid-1").Return(active, nil).Times(2)
		if _, err := uc.WithdrawBid(context.Background(), "bid-1", "mech-2"); !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBiddingForTest(ctrl)

		rejected := active
		rejected.Status = entities.BidStatusRejected
		m.bids.EXPECT().GetByID(gomock.Any(), "bid-1").Return(rejected, nil).Times(2)
		if _, err := uc.WithdrawBid(context.Background(), "bid-1", "mech-1"); !errors.Is(err, ErrBidNotActive) {
			t.Fatalf("expected ErrBidNotActive, got %v", err)
		}
	})

	t.Run("withdraw success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBiddingForTest(ctrl)

		m.bids.EXPECT().GetByID(gomock.Any(), "bid-1").Return(active, nil).Times(2)
		m.bids.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Bid{})).DoAndReturn(
			func(_ context.Context, b entities.Bid) (entities.Bid, error) {
				if b.Status != entities.BidStatusWithdrawn {
					t.Fatalf("expected withdrawn, got %s", b.Status)
				}
				return b, nil
			},
		)

		updated, err := uc.WithdrawBid(context.Background(), "bid-1", "mech-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.BidStatusWithdrawn {
			t.Fatalf("expected withdrawn, got %s", updated.Status)
		}
	})
}

func TestBiddingUseCase_AcceptBid(t *testing.T) {
	job := entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusBidding, Version: 2}
	winning := entities.Bid{ID: "bid-2", JobID: "job-1", MechanicID: "mech-2", Amount: 45, Status: entities.BidStatusActive}

	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBiddingForTest(ctrl)

		m.bids.EXPECT().GetByID(gomock.Any(), "bid-2").Return(winning, nil).Times(2)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		if _, err := uc.AcceptBid(context.Background(), "bid-2", "cust-2"); !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("bid no longer active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBiddingForTest(ctrl)

		withdrawn := winning
		withdrawn.Status = entities.BidStatusWithdrawn
		m.bids.EXPECT().GetByID(gomock.Any(), "bid-2").Return(withdrawn, nil).Times(2)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		if _, err := uc.AcceptBid(context.Background(), "bid-2", "cust-1"); !errors.Is(err, ErrBidNotActive) {
			t.Fatalf("expected ErrBidNotActive, got %v", err)
		}
	})

	t.Run("accept rejects siblings and assigns mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBiddingForTest(ctrl)

		losing := entities.Bid{ID: "bid-1", JobID: "job-1", MechanicID: "mech-1", Amount: 50, Status: entities.BidStatusActive}

		m.bids.EXPECT().GetByID(gomock.Any(), "bid-2").Return(winning, nil).Times(2)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		m.bids.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Bid{})).DoAndReturn(
			func(_ context.Context, b entities.Bid) (entities.Bid, error) {
				if b.ID != "bid-2" || b.Status != entities.BidStatusAccepted {
					t.Fatalf("expected bid-2 accepted, got %+v", b)
				}
				return b, nil
			},
		)
		m.bids.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Bid{losing, {ID: "bid-2", JobID: "job-1", MechanicID: "mech-2", Amount: 45, Status: entities.BidStatusAccepted}}, nil)
		m.bids.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Bid{})).DoAndReturn(
			func(_ context.Context, b entities.Bid) (entities.Bid, error) {
				if b.ID != "bid-1" || b.Status != entities.BidStatusRejected {
					t.Fatalf("expected bid-1 rejected, got %+v", b)
				}
				return b, nil
			},
		)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Status != entities.JobStatusAccepted || j.MechanicID != "mech-2" || j.EstimatedCost != 45 {
					t.Fatalf("unexpected job after accept: %+v", j)
				}
				return j, nil
			},
		)

		accepted, err := uc.AcceptBid(context.Background(), "bid-2", "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if accepted.Status != entities.BidStatusAccepted {
			t.Fatalf("expected accepted, got %s", accepted.Status)
		}
	})
}

func TestBiddingUseCase_ListForJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newBiddingForTest(ctrl)

	m.bids.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Bid{{ID: "bid-1"}}, nil)
	bids, err := uc.ListForJob(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bids) != 1 {
		t.Fatalf("expected 1 bid, got %d", len(bids))
	}

	if _, err := uc.ListForJob(context.Background(), "  "); !errors.Is(err, ErrInvalidJobID) {
		t.Fatalf("expected ErrInvalidJobID, got %v", err)
	}
}

func TestBiddingUseCase_MarketplaceScenario(t *testing.T) {
	// posted -> first bid -> bidding -> second bid -> accept second:
	// winner accepted, loser rejected, job accepted with winner assigned
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	bids := mock_interfaces.NewMockIBidRepository(ctrl)
	proposals := mock_interfaces.NewMockIScheduleProposalRepository(ctrl)
	changeOrders := mock_interfaces.NewMockIChangeOrderRepository(ctrl)
	workflow := NewWorkflowUseCase(jobs, bids, proposals, changeOrders, nil)
	uc := NewBiddingUseCase(bids, workflow)

	// in-memory backing state drives the mocks so the scenario stays coherent
	job := entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusPosted, Version: 1}
	store := map[string]entities.Bid{}

	jobs.EXPECT().GetByID(gomock.Any(), "job-1").DoAndReturn(
		func(context.Context, string) (entities.Job, error) { return job, nil },
	).AnyTimes()
	jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, j entities.Job) (entities.Job, error) {
			j.Version++
			job = j
			return j, nil
		},
	).AnyTimes()
	bids.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (entities.Bid, error) { return store[id], nil },
	).AnyTimes()
	bids.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Bid) (entities.Bid, error) {
			store[b.ID] = b
			return b, nil
		},
	).AnyTimes()
	bids.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Bid) (entities.Bid, error) {
			store[b.ID] = b
			return b, nil
		},
	).AnyTimes()
	bids.EXPECT().ListByJobID(gomock.Any(), "job-1").DoAndReturn(
		func(context.Context, string) ([]entities.Bid, error) {
			out := make([]entities.Bid, 0, len(store))
			for _, b := range store {
				out = append(out, b)
			}
			return out, nil
		},
	).AnyTimes()

	b1, err := uc.PlaceBid(context.Background(), "job-1", "mech-1", 50, "")
	if err != nil {
		t.Fatalf("first bid: %v", err)
	}
	if job.Status != entities.JobStatusBidding {
		t.Fatalf("expected bidding after first bid, got %s", job.Status)
	}

	b2, err := uc.PlaceBid(context.Background(), "job-1", "mech-2", 45, "")
	if err != nil {
		t.Fatalf("second bid: %v", err)
	}
	if job.Status != entities.JobStatusBidding {
		t.Fatalf("expected bidding after second bid, got %s", job.Status)
	}

	if _, err := uc.AcceptBid(context.Background(), b2.ID, "cust-1"); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if job.Status != entities.JobStatusAccepted || job.MechanicID != "mech-2" {
		t.Fatalf("unexpected job after accept: %+v", job)
	}
	if store[b2.ID].Status != entities.BidStatusAccepted {
		t.Fatalf("expected winning bid accepted, got %s", store[b2.ID].Status)
	}
	if store[b1.ID].Status != entities.BidStatusRejected {
		t.Fatalf("expected losing bid rejected, got %s", store[b1.ID].Status)
	}

	// accepted bids stay unique: a late bid on the accepted job fails
	if _, err := uc.PlaceBid(context.Background(), "job-1", "mech-3", 40, ""); !errors.Is(err, ErrJobNotBiddable) {
		t.Fatalf("expected ErrJobNotBiddable, got %v", err)
	}
}
