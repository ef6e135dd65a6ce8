package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/droid/internal/build"
)

func TestSummary(t *testing.T) {
	oldVersion, oldCommit, oldDate := build.Version, build.Commit, build.Date
	t.Cleanup(func() { build.Version, build.Commit, build.Date = oldVersion, oldCommit, oldDate })

	assert.Equal(t, "dev (commit: none, date: unknown)", build.Summary())

	build.Version, build.Commit, build.Date = "v0.4.0", "1a2b3c4", "2026-01-01"
	assert.Equal(t, "v0.4.0 (commit: 1a2b3c4, date: 2026-01-01)", build.Summary())
}
