package usecase

import (
	"errors"
	"testing"

	"wrenchworks/internal/domain/entities"
)

func testPricingConfig() PricingConfig {
	return PricingConfig{
		DepositAmount:  10.00,
		CommissionRate: 0.10,
		FeeRates: map[entities.PaymentMethod]float64{
			entities.PaymentMethodCard:      0.029,
			entities.PaymentMethodGooglePay: 0.029,
			entities.PaymentMethodApplePay:  0.029,
			entities.PaymentMethodPayPal:    0.034,
		},
	}
}

func TestPricing_TotalDueNow(t *testing.T) {
	cfg := testPricingConfig()

	deposit := cfg.Deposit()
	if deposit != 10.00 {
		t.Fatalf("expected deposit 10.00, got %.2f", deposit)
	}

	fee, err := cfg.ProcessingFee(deposit, entities.PaymentMethodCard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fee != 0.29 {
		t.Fatalf("expected card fee 0.29, got %.2f", fee)
	}

	if total := cfg.TotalDueNow(deposit, fee); total != 10.29 {
		t.Fatalf("expected total 10.29, got %.2f", total)
	}
}

func TestPricing_ProcessingFeeByMethod(t *testing.T) {
	cfg := testPricingConfig()

	cases := []struct {
		method entities.PaymentMethod
		want   float64
	}{
		{entities.PaymentMethodCard, 0.29},
		{entities.PaymentMethodGooglePay, 0.29},
		{entities.PaymentMethodApplePay, 0.29},
		{entities.PaymentMethodPayPal, 0.34},
	}
	for _, tc := range cases {
		t.Run(string(tc.method), func(t *testing.T) {
			fee, err := cfg.ProcessingFee(10.00, tc.method)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fee != tc.want {
				t.Fatalf("expected fee %.2f, got %.2f", tc.want, fee)
			}
		})
	}

	t.Run("unknown method", func(t *testing.T) {
		if _, err := cfg.ProcessingFee(10.00, "wire_transfer"); !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})
}

func TestPricing_MechanicPayout(t *testing.T) {
	cfg := testPricingConfig()
	if payout := cfg.MechanicPayout(140.00); payout != 126.00 {
		t.Fatalf("expected payout 126.00, got %.2f", payout)
	}
	if payout := cfg.MechanicPayout(99.99); payout != 89.99 {
		t.Fatalf("expected payout 89.99, got %.2f", payout)
	}
}

func TestPricing_Quote(t *testing.T) {
	cfg := testPricingConfig()

	comp, err := cfg.Quote("job-1", entities.PaymentMethodPayPal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comp.JobID != "job-1" || comp.Deposit != 10.00 || comp.ProcessingFee != 0.34 || comp.TotalDueNow != 10.34 {
		t.Fatalf("unexpected computation: %+v", comp)
	}

	if _, err := cfg.Quote("job-1", "cash"); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
}

func TestRound2HalfUp(t *testing.T) {
	if got := round2(0.125); got != 0.13 {
		t.Fatalf("expected 0.13, got %v", got)
	}
	if got := round2(10.281); got != 10.28 {
		t.Fatalf("expected 10.28, got %v", got)
	}
}
