package usecase

import (
	"errors"
	"math"
	"os"
	"strconv"

	"wrenchworks/internal/domain/entities"
)

var ErrInvalidPaymentMethod = errors.New("unknown payment method")

// PricingConfig holds the platform's money knobs. Rates are configuration,
// not hardwired logic; defaults match production values.
type PricingConfig struct {
	DepositAmount  float64
	CommissionRate float64
	FeeRates       map[entities.PaymentMethod]float64
}

// LoadPricingConfig reads pricing configuration from the environment.
//
// Supported env vars:
//   - BOOKING_DEPOSIT (default 10.00)
//   - COMMISSION_RATE (default 0.10)
//   - FEE_RATE_CARD / FEE_RATE_GOOGLE_PAY / FEE_RATE_APPLE_PAY (default 0.029)
//   - FEE_RATE_PAYPAL (default 0.034)
func LoadPricingConfig() PricingConfig {
	return PricingConfig{
		DepositAmount:  getenvFloat("BOOKING_DEPOSIT", 10.00),
		CommissionRate: getenvFloat("COMMISSION_RATE", 0.10),
		FeeRates: map[entities.PaymentMethod]float64{
			entities.PaymentMethodCard:      getenvFloat("FEE_RATE_CARD", 0.029),
			entities.PaymentMethodGooglePay: getenvFloat("FEE_RATE_GOOGLE_PAY", 0.029),
			entities.PaymentMethodApplePay:  getenvFloat("FEE_RATE_APPLE_PAY", 0.029),
			entities.PaymentMethodPayPal:    getenvFloat("FEE_RATE_PAYPAL", 0.034),
		},
	}
}

// Deposit is the fixed booking fee charged at scheduling time, independent of
// job size.
func (c PricingConfig) Deposit() float64 {
	return round2(c.DepositAmount)
}

// ProcessingFee is the method-dependent percentage of the deposit.
func (c PricingConfig) ProcessingFee(deposit float64, method entities.PaymentMethod) (float64, error) {
	rate, ok := c.FeeRates[method]
	if !ok {
		return 0, ErrInvalidPaymentMethod
	}
	return round2(deposit * rate), nil
}

// TotalDueNow is what the customer pays at booking: deposit plus fee.
func (c PricingConfig) TotalDueNow(deposit, processingFee float64) float64 {
	return round2(deposit + processingFee)
}

// MechanicPayout is the job total minus the platform commission.
func (c PricingConfig) MechanicPayout(jobTotal float64) float64 {
	return round2(jobTotal * (1 - c.CommissionRate))
}

// Quote assembles the full PaymentComputation for a job and payment method.
func (c PricingConfig) Quote(jobID string, method entities.PaymentMethod) (entities.PaymentComputation, error) {
	deposit := c.Deposit()
	fee, err := c.ProcessingFee(deposit, method)
	if err != nil {
		return entities.PaymentComputation{}, err
	}
	return entities.PaymentComputation{
		JobID:         jobID,
		PaymentMethod: method,
		Deposit:       deposit,
		ProcessingFee: fee,
		TotalDueNow:   c.TotalDueNow(deposit, fee),
	}, nil
}

// round2 rounds to two decimal places, half up for positive amounts.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
