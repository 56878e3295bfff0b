// Command yamlcomment annotates a YAML document with comments drawn from a
// JSON Schema.
//
// It reads a YAML file, looks up each mapping key's description in the
// schema given via --schema, and re-emits the document with the
// descriptions as comment lines above the corresponding keys. Key order
// and values are preserved; only comment lines are added.
//
// # Usage
//
//	yamlcomment --schema values.schema.json [flags] <file.yaml>
//
// Pass "-" as the file to read the document from stdin.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/yamlkit/comment"
	"go.jacobcolvin.com/yamlkit/log"
	"go.jacobcolvin.com/yamlkit/schemacomment"
	"go.jacobcolvin.com/yamlkit/version"
)

func main() {
	cfg := schemacomment.NewConfig()
	logCfg := log.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "yamlcomment --schema <schema.json> [flags] <file.yaml>",
		Short: "Annotate YAML documents with comments from a JSON Schema",
		Long: `yamlcomment re-emits a YAML document with comment lines injected above each
mapping key whose property carries a description in the given JSON Schema.
Values, key order, and formatting produced by the encoder are preserved.`,
		Version:       version.String(),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, logCfg, args[0])
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	if err := rootCmd.MarkFlagRequired(cfg.Flags.Schema); err != nil {
		fmt.Fprintf(os.Stderr, "mark flag required: %v\n", err)
	}

	if err := cfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *schemacomment.Config, logCfg *log.Config, input string) error {
	handler, err := logCfg.NewHandler(os.Stderr)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))

	schema, err := cfg.LoadSchema()
	if err != nil {
		return err
	}

	if schema.Properties == nil {
		slog.Warn("schema has no properties; output will carry no comments",
			slog.String("schema", cfg.Schema),
		)
	}

	var data []byte

	if input == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	// Decode into an ordered representation so re-encoding preserves the
	// original key order.
	var doc any

	err = yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	resolve := schemacomment.NewResolver(schema, schemacomment.WithIndent(cfg.Indent))

	out := os.Stdout

	if cfg.Output != "" && cfg.Output != "-" {
		out, err = os.Create(cfg.Output) //nolint:gosec // Output path from CLI flag is expected.
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}

		defer func() {
			closeErr := out.Close()
			if closeErr != nil {
				slog.Warn("closing output", slog.Any("error", closeErr))
			}
		}()
	}

	return comment.Encode(out, doc, resolve)
}
