package model

import (
	"testing"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		id   int
		want Position
	}{
		{id: 1, want: POS_PORTERO},
		{id: 2, want: POS_DEFENSA},
		{id: 3, want: POS_CENTROCAMPISTA},
		{id: 4, want: POS_DELANTERO},
		{id: 0, want: POS_UNKNOWN},
		{id: 99, want: POS_UNKNOWN},
	}

	for _, tc := range tests {
		t.Run(string(tc.want), func(t *testing.T) {
			got := ParsePosition(tc.id)
			if tc.want != got {
				t.Errorf("position incorrect, wanted: '%s', got: '%s'", tc.want, got)
			}
		})
	}
}
