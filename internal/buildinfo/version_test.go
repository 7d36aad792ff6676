package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRead_LinkStampsWin(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v1.2.3", "abc123", "2025-01-02T03:04:05Z"

	info := Read()
	assert.Equal(t, Info{Version: "v1.2.3", Commit: "abc123", Date: "2025-01-02T03:04:05Z"}, info)
	assert.Equal(t, "v1.2.3 (commit abc123, built 2025-01-02T03:04:05Z)", String())
	assert.Equal(t, "{{.Name}} v1.2.3 (commit abc123, built 2025-01-02T03:04:05Z)\n", Template())
}

func TestRead_NeverEmpty(t *testing.T) {
	info := Read()
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.Date)
}
