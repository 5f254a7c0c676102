package telegram

import "testing"

func TestResolveFlagWins(t *testing.T) {
	t.Setenv(EnvVar, "100")
	if got := Resolve(42); got != 42 {
		t.Errorf("Resolve(42) = %d, want 42", got)
	}
}

func TestResolveFromEnv(t *testing.T) {
	t.Setenv(EnvVar, "12345")
	if got := Resolve(Unset); got != 12345 {
		t.Errorf("Resolve = %d, want 12345", got)
	}
}

func TestResolveGarbageEnvIsUnset(t *testing.T) {
	for _, raw := range []string{"", "abc", "-5", "0"} {
		t.Setenv(EnvVar, raw)
		if got := Resolve(Unset); got != Unset {
			t.Errorf("Resolve with env %q = %d, want unset sentinel", raw, got)
		}
	}
}

func TestIsSet(t *testing.T) {
	if IsSet(Unset) {
		t.Error("IsSet(Unset) = true")
	}
	if !IsSet(7) {
		t.Error("IsSet(7) = false")
	}
}
