package grc_test

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// assertGolden compares got against a checked-in golden file, byte for
// byte. With -update, it (re)writes the golden file instead of comparing.
func assertGolden(t *testing.T, goldenPath, got string) {
	t.Helper()

	if *update {
		require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0o644))

		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "golden file %s not found; run with -update to create", goldenPath)

	assert.Equal(t, string(want), got)
}
