package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casetrack/internal/config"
)

func TestOpenDrivers(t *testing.T) {
	s, err := Open(config.BackupConfig{Root: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, DriverFilesystem, s.Driver())

	s, err = Open(config.BackupConfig{Driver: "memory"})
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, s.Driver())

	_, err = Open(config.BackupConfig{Driver: "s3"})
	require.Error(t, err)
}
