package cmd_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Greg8128/Stim/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRunsDump(t *testing.T) {
	var out bytes.Buffer
	rc := cmd.NewRootCommand(strings.NewReader("1,3\n\n"), &out, &bytes.Buffer{})
	rc.SetArgs([]string{"dump", "--format", "HITS", "-m", "4"})

	require.NoError(t, rc.Execute())
	assert.Equal(t, "0101\n0000\n", out.String())
}
