package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/twig/internal/app"
)

func printHelp() {
	fmt.Print(`twig - Terminal file explorer

USAGE:
    twig [OPTIONS] [DIRECTORY]

ARGS:
    DIRECTORY    Root directory to browse (default: current directory)

OPTIONS:
    -h, --help   Show this help message and exit
`)
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	root := ""
	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch arg {
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		default:
			root = arg
		}
	}

	if root == "" {
		cwd, err := apppkg.GetCwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error determining current directory: %v\n", err)
			os.Exit(1)
		}
		root = cwd
	}

	info, err := os.Stat(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %s: %v\n", root, err)
		os.Exit(1)
	}
	if !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: %s is not a directory\n", root)
		os.Exit(1)
	}

	app, err := apppkg.NewApplication(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}
