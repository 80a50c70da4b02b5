package version

import (
	"strings"
	"testing"
)

func TestGetVersionString(t *testing.T) {
	defer func(v, b, g string) { Version, BuildTime, GitCommit = v, b, g }(Version, BuildTime, GitCommit)

	Version, BuildTime, GitCommit = "v1.2.3", "unknown", "unknown"
	if got := GetVersionString(); got != "v1.2.3" {
		t.Errorf("GetVersionString() = %q, want v1.2.3", got)
	}

	BuildTime, GitCommit = "2024-05-01T00:00:00Z", "0123456789abcdef"
	got := GetVersionString()
	if !strings.Contains(got, "commit 0123456") || strings.Contains(got, "89abcdef") {
		t.Errorf("GetVersionString() = %q, want short commit", got)
	}
}

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()
	if info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Errorf("GetBuildInfo() = %+v, want runtime fields set", info)
	}
}
