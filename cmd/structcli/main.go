// Command structcli runs the four structural HTML operations (clean,
// main, siblings, children) against a local file, stdin, or a fetched
// URL, and prints the result. It is glue around the structure package,
// in a plain os.Args style (no subcommand framework).
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"structhtml/config"
	"structhtml/explain"
	"structhtml/fetcher"
	"structhtml/structure"
)

func main() {
	explainMode := false
	var op, source string

	args := os.Args[1:]
	for len(args) > 0 && strings.HasPrefix(args[0], "-") {
		switch args[0] {
		case "-explain":
			explainMode = true
			args = args[1:]
		case "-h", "--help":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown flag: %s\n", args[0])
			os.Exit(1)
		}
	}

	if len(args) < 2 {
		printUsage()
		os.Exit(1)
	}
	op, source = args[0], args[1]

	if err := run(op, source, explainMode); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`structcli - structural HTML parser

Usage: structcli [-explain] <clean|main|siblings|children> <file|url|->

  file     path to a local HTML file
  url      fetched with a plain HTTP GET (no JavaScript)
  -        read HTML from stdin

  -explain  print the Sibling Detector's candidate ranking table
            instead of running the requested operation`)
}

func run(op, source string, explainMode bool) error {
	htmlInput, err := readInput(source)
	if err != nil {
		return err
	}

	policy, err := loadPolicy()
	if err != nil {
		return err
	}

	if explainMode {
		fmt.Print(explain.Table(policy, htmlInput))
		return nil
	}

	switch op {
	case "clean":
		fmt.Println(structure.Clean(policy, htmlInput))
	case "main":
		fmt.Println(structure.Main(policy, htmlInput))
	case "siblings":
		for i, item := range structure.Siblings(policy, htmlInput) {
			fmt.Printf("--- item %d ---\n%s\n", i, item)
		}
	case "children":
		fmt.Println(structure.Children(policy, htmlInput))
	default:
		return fmt.Errorf("unknown operation %q (want clean, main, siblings, or children)", op)
	}
	return nil
}

func readInput(source string) (string, error) {
	switch {
	case source == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return fetcher.Fetch(context.Background(), source, fetcher.DefaultOptions())
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", source, err)
		}
		return string(data), nil
	}
}

func loadPolicy() (config.Policy, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return config.DefaultPolicy(), nil
	}
	return config.Load(filepath.Join(home, ".config", "structcli", "policy.toml"))
}
