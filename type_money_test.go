package rebalance

import "testing"

func TestMoneyString(t *testing.T) {
	if got, want := USD(800).String(), "$800.00"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := USD(1234.5).String(), "$1,234.50"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMoneyRatio(t *testing.T) {
	if got, want := USD(500).Ratio(USD(2000)), W(0.25); !got.Equal(want) {
		t.Errorf("Ratio() = %v, want %v", got, want)
	}
}

func TestMoneyAbs(t *testing.T) {
	if got, want := USD(-800).Abs(), USD(800); !got.Equal(want) {
		t.Errorf("Abs() = %v, want %v", got, want)
	}
}

func TestWeightString(t *testing.T) {
	if got, want := W(0.5).String(), "50.00%"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := W(0.4).Sub(W(0.9)).SignedString(), "-50.00%"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := W(0).SignedString(), "-"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
}
