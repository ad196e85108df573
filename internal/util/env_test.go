package util

import "testing"

func TestGetEnvString(t *testing.T) {
	t.Setenv("CORPLINK_TEST_KEY", "set")

	if got := GetEnvString("CORPLINK_TEST_KEY", "fallback"); got != "set" {
		t.Fatalf("GetEnvString = %q, want %q", got, "set")
	}
	if got := GetEnvString("CORPLINK_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("GetEnvString missing = %q, want %q", got, "fallback")
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		want     bool
	}{
		{"True", "true", false, true},
		{"False", "false", true, false},
		{"Garbage", "yes", false, false},
		{"GarbageKeepsDefault", "1", true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("CORPLINK_TEST_BOOL", tc.value)
			if got := GetEnvBool("CORPLINK_TEST_BOOL", tc.fallback); got != tc.want {
				t.Fatalf("GetEnvBool(%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}
