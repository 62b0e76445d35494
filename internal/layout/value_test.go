package layout

import (
	"math"
	"testing"
)

func TestValue_Constructors(t *testing.T) {
	type tc struct {
		value  Value
		isAuto bool
		unit   Unit
		amount float64
	}

	tests := map[string]tc{
		"Auto": {
			value:  Auto(),
			isAuto: true,
			unit:   UnitAuto,
			amount: 0,
		},
		"Fixed": {
			value:  Fixed(100),
			isAuto: false,
			unit:   UnitFixed,
			amount: 100,
		},
		"Percent": {
			value:  Percent(50),
			isAuto: false,
			unit:   UnitPercent,
			amount: 50,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsAuto(); got != tt.isAuto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.isAuto)
			}
			if tt.value.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", tt.value.Unit, tt.unit)
			}
			if tt.value.Amount != tt.amount {
				t.Errorf("Amount = %v, want %v", tt.value.Amount, tt.amount)
			}
		})
	}
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value     Value
		reference float64
		fallback  float64
		expected  float64
	}

	tests := map[string]tc{
		"fixed ignores reference": {
			value:     Fixed(50),
			reference: 100,
			fallback:  999,
			expected:  50,
		},
		"fixed negative is kept": {
			value:     Fixed(-10),
			reference: 100,
			fallback:  50,
			expected:  -10,
		},
		"50 percent of 100": {
			value:     Percent(50),
			reference: 100,
			expected:  50,
		},
		"33 percent keeps fraction": {
			value:     Percent(33),
			reference: 10,
			expected:  3.3,
		},
		"percent of unconstrained falls back": {
			value:     Percent(50),
			reference: Unconstrained,
			fallback:  7,
			expected:  7,
		},
		"auto returns fallback": {
			value:     Auto(),
			reference: 100,
			fallback:  42,
			expected:  42,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.value.Resolve(tt.reference, tt.fallback)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Resolve(%v, %v) = %v, want %v",
					tt.reference, tt.fallback, got, tt.expected)
			}
		})
	}
}

func TestValue_Definite(t *testing.T) {
	type tc struct {
		value     Value
		reference float64
		expected  float64
		ok        bool
	}

	tests := map[string]tc{
		"fixed":                   {value: Fixed(12), reference: 0, expected: 12, ok: true},
		"negative clamps to zero": {value: Fixed(-3), reference: 0, expected: 0, ok: true},
		"percent":                 {value: Percent(10), reference: 200, expected: 20, ok: true},
		"percent unconstrained":   {value: Percent(10), reference: Unconstrained},
		"auto":                    {value: Auto(), reference: 200},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := tt.value.definite(tt.reference)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("definite(%v) = (%v, %v), want (%v, %v)", tt.reference, got, ok, tt.expected, tt.ok)
			}
		})
	}
}
