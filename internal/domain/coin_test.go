package domain

import "testing"

func TestCurrencyFor(t *testing.T) {
	cases := []struct {
		code string
		want Currency
	}{
		{"usd", Currency{Code: "usd", Symbol: "$"}},
		{" EUR ", Currency{Code: "eur", Symbol: "€"}},
		{"inr", Currency{Code: "inr", Symbol: "₹"}},
		{"", Currency{Code: "usd", Symbol: "$"}},
		{"gbp", Currency{Code: "gbp", Symbol: "GBP"}},
	}
	for _, tc := range cases {
		if got := CurrencyFor(tc.code); got != tc.want {
			t.Fatalf("CurrencyFor(%q) = %+v, want %+v", tc.code, got, tc.want)
		}
	}
}
