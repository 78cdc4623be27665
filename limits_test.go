package xargs

import "testing"

func TestEnvironBytes(t *testing.T) {
	t.Setenv("XARGS_LIMITS_TEST", "value")
	base := environBytes()
	if base <= 0 {
		t.Fatalf("environBytes = %d, want > 0", base)
	}
	t.Setenv("XARGS_LIMITS_TEST", "value-grown")
	if grown := environBytes(); grown != base+6 {
		t.Errorf("after growing a variable by 6 bytes: %d, want %d", grown, base+6)
	}
}

func TestClampBytes(t *testing.T) {
	limit := defaultMaxBytes()
	if limit <= 0 {
		t.Skipf("environment leaves no headroom (limit %d)", limit)
	}

	tests := []struct {
		name      string
		requested int64
		want      int64
	}{
		{"zero means default", 0, limit},
		{"above ceiling clamps", limit + 1, limit},
		{"well above ceiling clamps", 1 << 40, limit},
		{"below ceiling kept", 100, 100},
		{"at ceiling kept", limit, limit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampBytes(tt.requested); got != tt.want {
				t.Errorf("clampBytes(%d) = %d, want %d", tt.requested, got, tt.want)
			}
		})
	}
}

func TestArgMaxFloor(t *testing.T) {
	if got := argMax(); got < posixArgMax {
		t.Errorf("argMax = %d, want >= %d", got, posixArgMax)
	}
}
