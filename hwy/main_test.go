package hwy

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints dispatch diagnostics so CI logs show which level was detected.
func TestMain(m *testing.M) {
	fmt.Printf("=== hwy dispatch ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("HWY_NO_SIMD=%q\n", os.Getenv("HWY_NO_SIMD"))
	fmt.Printf("Level: %s (%d bytes)\n", CurrentLevel(), CurrentWidth())
	fmt.Printf("SSE4.1: %v ASIMD: %v\n", HasSSE41(), HasASIMD())
	fmt.Printf("====================\n\n")

	os.Exit(m.Run())
}

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchSSE4, "sse4"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCurrentLevelConsistent(t *testing.T) {
	if CurrentWidth() != 16 {
		t.Errorf("CurrentWidth() = %d, want 16", CurrentWidth())
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %q", CurrentName(), CurrentLevel())
	}
	if HasSIMD() != (CurrentLevel() != DispatchScalar) {
		t.Errorf("HasSIMD() = %v at level %s", HasSIMD(), CurrentLevel())
	}
	if NoSimdEnv() && CurrentLevel() != DispatchScalar {
		t.Errorf("HWY_NO_SIMD set but level is %s", CurrentLevel())
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestMaxLanes(t *testing.T) {
	if got := MaxLanes[uint32](); got != 4 {
		t.Errorf("MaxLanes[uint32]() = %d, want 4", got)
	}
	if got := MaxLanes[float32](); got != 4 {
		t.Errorf("MaxLanes[float32]() = %d, want 4", got)
	}
}
