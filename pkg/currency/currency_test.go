package currency

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{name: "dollars", amount: 30.0, code: "USD", want: "$30.00"},
		{name: "euros", amount: 12.5, code: "EUR", want: "€12,50"},
		{name: "unknown code falls back to USD", amount: 5.0, code: "WAT", want: "$5.00"},
		{name: "empty code falls back to USD", amount: 5.0, code: "", want: "$5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.amount, tt.code); got != tt.want {
				t.Errorf("Format(%v, %q) = %q, want %q", tt.amount, tt.code, got, tt.want)
			}
		})
	}
}

func TestKnown(t *testing.T) {
	if !Known("USD") {
		t.Error("Known(USD) = false, want true")
	}
	if Known("WAT") {
		t.Error("Known(WAT) = true, want false")
	}
}
