package request

import (
	"testing"

	"wrenchworks/internal/domain/entities"
)

func TestScheduleProposalRequest_ToInput(t *testing.T) {
	r := ScheduleProposalRequest{Actor: " mechanic ", Date: " 2026-09-02 ", Time: " 10:00 ", Notes: "  morning slot "}
	in := r.ToInput()
	if in.Actor != entities.ActorMechanic {
		t.Fatalf("expected mechanic, got %s", in.Actor)
	}
	if in.Date != "2026-09-02" || in.Time != "10:00" || in.Notes != "morning slot" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestRejectScheduleRequest_CounterInput(t *testing.T) {
	t.Run("no counter", func(t *testing.T) {
		r := RejectScheduleRequest{Actor: "customer"}
		if r.CounterInput() != nil {
			t.Fatal("expected nil counter input")
		}
	})

	t.Run("counter carries no actor", func(t *testing.T) {
		r := RejectScheduleRequest{
			Actor:   "customer",
			Counter: &CounterProposalRequest{Date: "2026-09-04", Time: "09:00"},
		}
		in := r.CounterInput()
		if in == nil {
			t.Fatal("expected counter input")
		}
		if in.Actor != "" {
			t.Fatalf("counter actor must be assigned by the use case, got %s", in.Actor)
		}
		if in.Date != "2026-09-04" || in.Time != "09:00" {
			t.Fatalf("unexpected counter input: %+v", in)
		}
	})
}
