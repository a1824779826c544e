package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origCommit, origDate := Commit, Date
	defer func() { Commit, Date = origCommit, origDate }()

	tests := []struct {
		name   string
		commit string
		date   string
		want   string
	}{
		{"dev build", "unknown", "unknown", "hairhue version dev ("},
		{"release build", "0123456789abcdef", "2026-01-02T03:04:05Z", "(commit: 01234567, built: 2026-01-02T03:04:05Z"},
		{"short commit", "abc", "2026-01-02T03:04:05Z", "(commit: abc,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Commit, Date = tt.commit, tt.date
			if got := String(); !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestUserAgent(t *testing.T) {
	if got := UserAgent(); got != "hairhue/"+Version {
		t.Errorf("UserAgent() = %q", got)
	}
}
