package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-10-16"
	if got, want := GetFullVersion(), "v1.2.3 (commit: abc123, built: 2026-10-16)"; got != want {
		t.Errorf("GetFullVersion() = %q, want %q", got, want)
	}
	if GetVersion() != "v1.2.3" {
		t.Errorf("GetVersion() = %q", GetVersion())
	}
}
