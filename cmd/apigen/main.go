// Command apigen drives the schema lowering pipeline end to end: it
// reads a source API schema document, lowers it into the declaration
// tree, and prints a diagnostic rendering of the result. Turning that
// tree into source text for a target language is an external emitter's
// job (§1 Out of scope) — this command stops at the declaration tree.
//
// Grounded on MacroPower-x's cmd/magicschema/main.go for the cobra-driven
// read-generate-write CLI shape.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdkgen/apigen/assemble"
	"github.com/sdkgen/apigen/genconfig"
	"github.com/sdkgen/apigen/ingest"
	"github.com/sdkgen/apigen/loweringerr"
)

type flags struct {
	configPath string
	guard      bool
	format     string
}

func main() {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:           "apigen <source.json|source.yaml>",
		Short:         "Lower a REST API schema description into named Go-style declarations",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(f, args[0])
		},
	}

	rootCmd.Flags().StringVar(&f.configPath, "config", "", "path to a genconfig YAML file (defaults applied when omitted)")
	rootCmd.Flags().BoolVar(&f.guard, "guard", true, "validate the document against the coarse shape guard before lowering")
	rootCmd.Flags().StringVar(&f.format, "format", "yaml", "source document format (yaml or json) for files without a .json, .yaml or .yml extension; those extensions always decide the format")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "apigen: %v\n", err)

		var notImpl *loweringerr.NotImplementedError
		if errors.As(err, &notImpl) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}

func run(f *flags, path string) error {
	cfg := genconfig.DefaultConfig()

	if f.configPath != "" {
		cfgFile, err := os.Open(f.configPath)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		defer cfgFile.Close()

		cfg, err = genconfig.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	src, err := loadSource(f, path)
	if err != nil {
		return err
	}

	result, err := assemble.BuildTree(src, cfg)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.String())
	}

	render(result.Tree)

	return nil
}

func loadSource(f *flags, path string) (ingest.Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source document: %w", err)
	}
	defer file.Close()

	var guard *ingest.Guard
	if f.guard {
		guard, err = ingest.NewGuard()
		if err != nil {
			return nil, fmt.Errorf("compiling shape guard: %w", err)
		}
	}

	format := f.format
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".json" {
		format = "json"
	} else if ext == ".yaml" || ext == ".yml" {
		format = "yaml"
	}

	if format == "json" {
		return ingest.Load(file, guard)
	}

	return ingest.LoadYAML(file, guard)
}
