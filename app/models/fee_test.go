package models

import "testing"

func TestDeriveFeeStatus(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		paid   float64
		want   FeeStatus
	}{
		{"nothing paid", 100, 0, FeePending},
		{"negative paid clamps to pending", 100, -5, FeePending},
		{"partial payment", 100, 40, FeePartial},
		{"almost complete", 100, 99.99, FeePartial},
		{"exactly paid", 100, 100, FeePaid},
		{"overpaid stays paid", 100, 120, FeePaid},
		{"zero amount with payment", 0, 10, FeePaid},
		{"zero amount nothing paid", 0, 0, FeePending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveFeeStatus(tt.amount, tt.paid); got != tt.want {
				t.Errorf("DeriveFeeStatus(%v, %v) = %v, want %v", tt.amount, tt.paid, got, tt.want)
			}
		})
	}
}

// A re-priced fee keeps its paid value, so lowering the amount below what
// was already collected flips the status to paid without any payment event.
func TestDeriveFeeStatusRepricing(t *testing.T) {
	paid := 80.00

	if got := DeriveFeeStatus(100, paid); got != FeePartial {
		t.Fatalf("before repricing: got %v, want %v", got, FeePartial)
	}
	if got := DeriveFeeStatus(50, paid); got != FeePaid {
		t.Fatalf("after repricing down: got %v, want %v", got, FeePaid)
	}
	if got := DeriveFeeStatus(200, paid); got != FeePartial {
		t.Fatalf("after repricing up: got %v, want %v", got, FeePartial)
	}
}

func TestFeeOutstanding(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		paid   float64
		want   float64
	}{
		{"untouched", 65, 0, 65},
		{"partial", 100, 40, 60},
		{"settled", 100, 100, 0},
		{"overpaid never negative", 100, 150, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := &Fee{Amount: tt.amount, Paid: tt.paid}
			if got := fee.Outstanding(); got != tt.want {
				t.Errorf("Outstanding() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultFeePolicy(t *testing.T) {
	policy := DefaultFeePolicy()
	if !policy.RequireEnrollment {
		t.Error("default policy should require enrollment")
	}
	if policy.RejectOverpayment {
		t.Error("default policy should accept overpayment")
	}
}
