package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Hypnoes/FlexConf/flexconf"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate .fc files and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					fmt.Fprintf(os.Stderr, "read %s: %v\n", filename, err)
					failed++
					continue
				}
				if _, err := flexconf.ParseText(data, flexconf.WithFile(filename)); err != nil {
					failed++
					var perr *flexconf.Error
					if errors.As(err, &perr) {
						fmt.Fprintf(os.Stderr, "%v\n%s\n", perr, perr.Snippet)
					} else {
						fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
					}
					continue
				}
				fmt.Printf("%s: ok\n", filename)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}
