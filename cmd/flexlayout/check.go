package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

type checkCmd struct {
	Files []string `arg:"positional,required" help:"layout documents"`
}

// runCheck implements the check subcommand.
// It decodes and validates documents without laying them out.
func runCheck(cmd *checkCmd, stdout, stderr io.Writer) error {
	outcomes := processAll(cmd.Files, nil, false)

	failed := 0
	for _, o := range outcomes {
		if o.err != nil {
			failed++
			fmt.Fprintf(stderr, "%s %v\n", errLabel("FAIL"), o.err)
			continue
		}
		fmt.Fprintf(stdout, "%s   %s\n", okLabel("ok"), o.path)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d document(s) had errors", failed, len(outcomes))
	}
	return nil
}
