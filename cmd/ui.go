package cmd

import (
	"io"
	"os"

	"github.com/xll-gen/tilerect/internal/ui"
)

// printer returns a status printer for w. Colors are only used on the real stdout.
func printer(w io.Writer) *ui.Printer {
	return &ui.Printer{Out: w, Plain: w != io.Writer(os.Stdout)}
}

// exitOnError prints err the way every subcommand reports failures and exits 1.
func exitOnError(err error) {
	if err == nil {
		return
	}
	ui.Stdout().Error("Error", err.Error())
	os.Exit(1)
}
