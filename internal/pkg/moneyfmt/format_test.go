package moneyfmt_test

import (
	"testing"

	"github.com/bassel-dev/crypto-dashboard/internal/pkg/moneyfmt"
)

func fptr(v float64) *float64 { return &v }

// Проверяем пороги сокращения: миллиарды, миллионы и всё, что ниже
func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"nil is N/A", nil, "N/A"},
		{"billions", fptr(2_500_000_000), "€ 2.50 Mrd."},
		{"millions", fptr(1_200_000), "€ 1.20 Mio."},
		{"below million keeps full number", fptr(999), "€ 999.00"},
		{"thousands separators", fptr(12345.67), "€ 12,345.67"},
		{"million boundary", fptr(1_000_000), "€ 1.00 Mio."},
		{"billion boundary", fptr(1_000_000_000), "€ 1.00 Mrd."},
		{"just below billion stays millions", fptr(999_990_000), "€ 999.99 Mio."},
		{"zero", fptr(0), "€ 0.00"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := moneyfmt.FormatAmount(tc.in); got != tc.want {
				t.Errorf("FormatAmount = %q, want %q", got, tc.want)
			}
		})
	}
}

// Доминация BTC выводится с одним знаком после запятой
func TestFormatPercent(t *testing.T) {
	t.Parallel()

	if got := moneyfmt.FormatPercent(58.34, 1); got != "58.3 %" {
		t.Errorf("FormatPercent = %q, want %q", got, "58.3 %")
	}
}

// Изменение за 24ч всегда со знаком
func TestFormatChange(t *testing.T) {
	t.Parallel()

	if got := moneyfmt.FormatChange(-2.5); got != "-2.50 %" {
		t.Errorf("FormatChange = %q, want %q", got, "-2.50 %")
	}
	if got := moneyfmt.FormatChange(1.25); got != "+1.25 %" {
		t.Errorf("FormatChange = %q, want %q", got, "+1.25 %")
	}
}
