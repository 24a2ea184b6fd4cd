package roomapi

import (
	"encoding/json"
	"testing"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{"lowercase true", "true", true},
		{"uppercase TRUE", "TRUE", true},
		{"mixed case True", "True", true},
		{"lowercase false", "false", false},
		{"uppercase FALSE", "FALSE", false},
		{"mixed case False", "False", false},
		{"integer", "42", int64(42)},
		{"negative integer", "-7", int64(-7)},
		{"explicit positive integer", "+42", int64(42)},
		{"zero", "0", int64(0)},
		{"float", "3.14", float64(3.14)},
		{"negative float", "-0.5", float64(-0.5)},
		{"scientific notation", "1e3", float64(1000)},
		{"plain string", "abc", "abc"},
		{"empty string", "", ""},
		{"string with spaces", "some string", "some string"},
		{"almost a number", "42abc", "42abc"},
		{"hex is not a number here", "0x1A", "0x1A"},
		{"truthy word is still a string", "yes", "yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coerce(tt.input)
			if got != tt.expected {
				t.Errorf("Coerce(%q) = %v (%T), want %v (%T)",
					tt.input, got, got, tt.expected, tt.expected)
			}
		})
	}
}

func TestCoerceIsTotal(t *testing.T) {
	// Inputs chosen to poke at parser edge cases; none may panic and every
	// result must survive a round trip through encoding/json.
	inputs := []string{
		"", " ", "true ", " false", "9223372036854775807", "9223372036854775808",
		"-9223372036854775809", "1.7976931348623157e308", "1e309", "inf", "Inf",
		"-inf", "Infinity", "nan", "NaN", "0.1.2", "--5", "++1", "1_000",
		"\x00", "null", "[]", "{}", "\"quoted\"",
	}

	for _, input := range inputs {
		got := Coerce(input)
		if _, err := json.Marshal(got); err != nil {
			t.Errorf("Coerce(%q) = %v (%T) does not marshal: %v", input, got, got, err)
		}
	}
}

func TestCoerceRejectsNonFiniteFloats(t *testing.T) {
	// Parseable-as-float inputs whose value has no JSON representation must
	// stay strings.
	tests := []string{"inf", "+Inf", "-inf", "Infinity", "nan", "NaN", "1e309"}

	for _, input := range tests {
		got := Coerce(input)
		if _, ok := got.(string); !ok {
			t.Errorf("Coerce(%q) = %v (%T), want the original string", input, got, got)
		}
	}
}

func TestCoerceIntegerBeyondInt64RangeFallsToFloat(t *testing.T) {
	got := Coerce("9223372036854775808") // max int64 + 1
	if _, ok := got.(float64); !ok {
		t.Errorf("Coerce overflow = %v (%T), want float64", got, got)
	}
}

func BenchmarkCoerce(b *testing.B) {
	inputs := []string{"true", "42", "3.14", "some_string"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Coerce(inputs[i%len(inputs)])
	}
}
