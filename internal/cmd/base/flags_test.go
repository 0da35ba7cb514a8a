package base

import (
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagSet_Help(t *testing.T) {
	var name string
	var limit int

	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	f.StringVar(&name, "name", "", "(Required) Name of the project.")
	f.IntVar(&limit, "limit", 200, strings.Repeat("word ", 30))

	help := f.Help()

	assert.True(t, strings.HasPrefix(help, "\n\nOptions:\n"))
	assert.Contains(t, help, "  -name\n      (Required) Name of the project.")
	assert.Contains(t, help, "  -limit=<200>\n")
	for _, line := range strings.Split(help, "\n") {
		assert.LessOrEqual(t, len(line), helpWidth)
	}
}

func TestFlagSet_ParseErrorIsSilent(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))

	err := f.Parse([]string{"-unknown"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")
}
