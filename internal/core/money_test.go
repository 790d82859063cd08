package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1234.5", "1234.5", true},
		{"1234,5", "1234.5", true},
		{"0", "0", true},
		{" 12.34 ", "12.34", true},
		{"", "", false},
		{"-5", "", false},
		{"+5", "", false},
		{"abc", "", false},
		{"1.2.3", "", false},
	}
	for i, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("case %d (%q): unexpected error %v", i, tc.in, err)
			}
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Fatalf("case %d (%q): got %s, want %s", i, tc.in, got, tc.want)
			}
			continue
		}
		if err == nil {
			t.Fatalf("case %d (%q): expected error", i, tc.in)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(CNY, decimal.NewFromInt(1500)); got != "￥1500" {
		t.Fatalf("got %q", got)
	}
	if got := FormatAmount(USD, decimal.RequireFromString("200.505")); got != "$200.51" {
		t.Fatalf("got %q", got)
	}
}

func TestCurrencySymbolFallback(t *testing.T) {
	if got := Currency("XAU").Symbol(); got != "XAU" {
		t.Fatalf("got %q", got)
	}
}
