package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	original := Version
	t.Cleanup(func() { Version = original })

	assert.Equal(t, "dev", Get())

	Version = "1.2.3"
	assert.Equal(t, "1.2.3", Get())
}

func TestInfo(t *testing.T) {
	info := Info()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.NotEmpty(t, info.GitCommit)
	assert.NotEmpty(t, info.BuildTime)
}

func TestApplyVCS(t *testing.T) {
	settings := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "4f1c2ab"},
		{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
	}

	tests := []struct {
		name     string
		info     BuildInfo
		expected BuildInfo
	}{
		{
			name:     "fills_unknown_values",
			info:     BuildInfo{GitCommit: "unknown", BuildTime: "unknown"},
			expected: BuildInfo{GitCommit: "4f1c2ab", BuildTime: "2026-10-01T12:00:00Z"},
		},
		{
			name:     "keeps_injected_values",
			info:     BuildInfo{GitCommit: "deadbeef", BuildTime: "yesterday"},
			expected: BuildInfo{GitCommit: "deadbeef", BuildTime: "yesterday"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.info
			applyVCS(&info, settings)
			assert.Equal(t, tt.expected, info)
		})
	}
}
