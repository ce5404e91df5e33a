package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/phuslu/log"

	"github.com/goliatone/go-librarian/pkg/convert"
	"github.com/goliatone/go-librarian/pkg/legacy"
	"github.com/goliatone/go-librarian/pkg/report"
)

// legacyDir is where the old configuration pair historically lived,
// relative to the user's home directory.
const legacyDir = "code/googleapis/google-cloud-go/.librarian"

const defaultOutput = "data/go/librarian.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	statePath := flag.String("state", "", "legacy state.yaml path (default: <home>/"+legacyDir+"/state.yaml)")
	configPath := flag.String("config", "", "legacy config.yaml path (default: <home>/"+legacyDir+"/config.yaml)")
	output := flag.String("output", defaultOutput, "output manifest path")
	reportPath := flag.String("report", "", "write a Markdown migration report to this path")
	interactive := flag.Bool("interactive", false, "ask before overwriting an existing output file")
	verbose := flag.Bool("verbose", false, "enable debug diagnostics")
	flag.Parse()

	level := log.InfoLevel
	if *verbose {
		level = log.DebugLevel
	}
	logger := &log.Logger{
		Level:  level,
		Writer: &log.ConsoleWriter{ColorOutput: true, Writer: os.Stderr},
	}

	if *statePath == "" || *configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		if *statePath == "" {
			*statePath = filepath.Join(home, legacyDir, "state.yaml")
		}
		if *configPath == "" {
			*configPath = filepath.Join(home, legacyDir, "config.yaml")
		}
	}

	if *interactive {
		ok, err := confirmOverwrite(*output)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx := context.Background()
	conv := convert.New(convert.WithLogger(logger))

	result, err := conv.Convert(ctx, convert.Request{
		State:  legacy.FileSource(*statePath),
		Config: legacy.FileSource(*configPath),
	})
	if err != nil {
		return err
	}

	if err := result.Manifest.WriteFile(*output); err != nil {
		return err
	}

	if *reportPath != "" {
		md, err := report.Render(result)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*reportPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Debug().Str("path", *reportPath).Msg("report written")
	}

	fmt.Printf("Converted %d libraries to %s\n", result.Converted, *output)
	fmt.Printf("Release-blocked libraries: %d\n", len(result.Blocked))
	return nil
}

// confirmOverwrite prompts only when the output file already exists.
func confirmOverwrite(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, err
	}

	ok := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Overwrite %s?", path),
		Default: true,
	}
	if err := survey.AskOne(prompt, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
