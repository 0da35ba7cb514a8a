package base

import (
	"bytes"
	"flag"
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

const helpWidth = 74

// FlagSet wraps a flag.FlagSet to render flag help in the CLI's format.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns a FlagSet that writes nothing on parse errors; callers
// report them through the UI.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.Usage = func() {}
	f.SetOutput(&bytes.Buffer{})
	return &FlagSet{FlagSet: f}
}

// Help returns the flag documentation appended to a command's help text.
func (f *FlagSet) Help() string {
	var out strings.Builder
	out.WriteString("\n\nOptions:\n")

	f.VisitAll(func(fl *flag.Flag) {
		if fl.DefValue != "" {
			fmt.Fprintf(&out, "\n  -%s=<%s>\n", fl.Name, fl.DefValue)
		} else {
			fmt.Fprintf(&out, "\n  -%s\n", fl.Name)
		}
		usage := wordwrap.WrapString(fl.Usage, helpWidth-6)
		for _, line := range strings.Split(usage, "\n") {
			fmt.Fprintf(&out, "      %s\n", line)
		}
	})

	return strings.TrimRight(out.String(), "\n")
}
