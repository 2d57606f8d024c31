package invoicer

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyArithmetic(t *testing.T) {
	rate := M(75, "EUR")

	hours := decimal.NewFromInt(15).Mul(decimal.NewFromInt(8))
	total := rate.Mul(hours)
	if !total.Equal(M(9000, "EUR")) {
		t.Errorf("75 x 120 = %s, want 9000 EUR", total.Amount())
	}

	sum := total.Add(M(0.5, "EUR"))
	if !sum.Equal(M(9000.5, "EUR")) {
		t.Errorf("Add() = %s, want 9000.5", sum.Amount())
	}
}

func TestMoneyMulKeepsPrecision(t *testing.T) {
	// 12.5 days at 80.10/h for 7.5h/day must not lose cents on the way.
	rate := M(80.10, "EUR")
	hours := decimal.RequireFromString("12.5").Mul(decimal.RequireFromString("7.5"))
	total := rate.Mul(hours)
	if got, want := total.Amount().String(), "7509.375"; got != want {
		t.Errorf("Mul() = %s, want %s", got, want)
	}
	if got, want := total.Round().Amount().String(), "7509.38"; got != want {
		t.Errorf("Round() = %s, want %s", got, want)
	}
}

func TestMoneyCurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding EUR to USD should panic")
		}
	}()
	M(1, "EUR").Add(M(1, "USD"))
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("1234.56", "EUR")
	if err != nil {
		t.Fatalf("ParseMoney() error = %v", err)
	}
	if got, want := m.Amount().String(), "1234.56"; got != want {
		t.Errorf("Amount() = %s, want %s", got, want)
	}
	if _, err := ParseMoney("twelve", "EUR"); err == nil {
		t.Error("ParseMoney(\"twelve\") should fail")
	}
}
