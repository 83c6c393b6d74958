package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Hypnoes/FlexConf/flexconf"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var showTokens bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .fc file and dump the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := readInput(filename)
			if err != nil {
				return err
			}

			if showTokens {
				return dumpTokens(data, filename)
			}

			root, err := flexconf.ParseText(data, flexconf.WithFile(filename))
			if err != nil {
				return err
			}

			switch outputFormat {
			case "json":
				out, err := json.MarshalIndent(root, "", "  ")
				if err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println(string(out))
			case "yaml":
				out, err := yaml.Marshal(root)
				if err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				fmt.Print(string(out))
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, yaml)")
	cmd.Flags().BoolVar(&showTokens, "tokens", false, "dump the token stream instead of the tree")

	return cmd
}

func dumpTokens(data []byte, filename string) error {
	tokens, mode, err := flexconf.Tokenize(data, flexconf.WithFile(filename))
	if err != nil {
		return err
	}
	fmt.Printf("mode: %s\n", mode)
	for _, tok := range tokens {
		if tok.Literal != "" {
			fmt.Printf("%s\t%s\t%q\n", tok.Span.Start, tok.Kind, tok.Literal)
		} else {
			fmt.Printf("%s\t%s\n", tok.Span.Start, tok.Kind)
		}
	}
	return nil
}

func readInput(filename string) ([]byte, error) {
	if filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return data, nil
}
