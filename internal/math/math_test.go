package math

import "testing"

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want bool
	}{
		{name: "zero", n: 0, want: false},
		{name: "negative", n: -8, want: false},
		{name: "one", n: 1, want: true},
		{name: "two", n: 2, want: true},
		{name: "three", n: 3, want: false},
		{name: "four", n: 4, want: true},
		{name: "ring_buffer_default_1024", n: 1024, want: true},
		{name: "just_above_power_of_two", n: 1025, want: false},
		{name: "just_below_power_of_two", n: 1023, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPowerOfTwo(tt.n); got != tt.want {
				t.Errorf("IsPowerOfTwo(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}
