package systems

import (
	"reflect"
	"testing"
)

func TestAbilityHints(t *testing.T) {
	tests := []struct {
		score int
		want  []string
	}{
		{0, []string{}},
		{999, []string{}},
		{1000, []string{"Shift: Slow Time"}},
		{1800, []string{"Shift: Slow Time", "Space: Stop Time"}},
		{3300, []string{"Shift: Empowered Slow Time", "Space: Stop Time"}},
		{4300, []string{"Shift: Empowered Slow Time", "Space: Empowered Stop Time"}},
	}

	for _, tt := range tests {
		if got := AbilityHints(tt.score); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("AbilityHints(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestUnlockNotice(t *testing.T) {
	for _, score := range []int{1000, 1800, 3300, 4300} {
		if _, ok := UnlockNotice(score); !ok {
			t.Errorf("UnlockNotice(%d) should report an unlock", score)
		}
	}
	for _, score := range []int{0, 900, 1100, 9500} {
		if msg, ok := UnlockNotice(score); ok {
			t.Errorf("UnlockNotice(%d) = %q, want none", score, msg)
		}
	}
}

func TestInputDirection(t *testing.T) {
	tests := []struct {
		in   Input
		want int
	}{
		{Input{}, 0},
		{Input{Left: true}, -1},
		{Input{Right: true}, 1},
		{Input{Left: true, Right: true}, 0},
	}
	for _, tt := range tests {
		if got := tt.in.Direction(); got != tt.want {
			t.Errorf("%+v.Direction() = %d, want %d", tt.in, got, tt.want)
		}
	}
}
