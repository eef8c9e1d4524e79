package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppBuildInfo_UnlinkedValuesReadAsUnknown(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", " ", "")

	assert.Equal(t, "1.4.0", info.Version())
	assert.Equal(t, "N/A", info.Date())
	assert.Equal(t, "N/A", info.Commit())
}

func TestAppBuildInfo_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewAppBuildInfo("1.4.0", "2026-10-01", "9f2c1ab").WriteTo(&buf)
	require.NoError(t, err)

	want := "Build version: 1.4.0\nBuild date: 2026-10-01\nBuild commit: 9f2c1ab\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), n)
}
