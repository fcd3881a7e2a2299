// Command datagen runs the synthetic test data generation service.
//
// Usage:
//
//	datagen serve
//	datagen seed --per-entity 20
//	datagen schemas --domain ecommerce
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/alecthomas/kong"

	"github.com/qaforge/datagen/pkg/logger"
)

// CLI defines the command-line interface.
type CLI struct {
	Version VersionCmd `cmd:"" help:"Show version information."`
	Serve   ServeCmd   `cmd:"" help:"Start the gRPC and HTTP servers."`
	Seed    SeedCmd    `cmd:"" help:"Seed the vector store with a starter pattern corpus."`
	Schemas SchemasCmd `cmd:"" help:"List registered entity schemas."`

	LogLevel  string `help:"Log level (debug, info, warn, error)." default:"info"`
	LogFile   string `help:"Log file path (empty = stderr)."`
	LogFormat string `help:"Log format (text or json)." default:"text"`
}

// VersionCmd shows version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	version := "dev"
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			version = info.Main.Version
		}
	}
	fmt.Printf("datagen version %s\n", version)
	return nil
}

// shouldSkipBanner checks if the command is informational rather than a
// server start.
func shouldSkipBanner(args []string) bool {
	for _, arg := range args {
		if arg == "version" || arg == "schemas" {
			return true
		}
	}
	return false
}

// printBanner prints the service banner when stdout is a terminal.
func printBanner() {
	if fileInfo, err := os.Stdout.Stat(); err == nil {
		if (fileInfo.Mode() & os.ModeCharDevice) == 0 {
			return
		}
	} else {
		return
	}

	// Blue: #3b82f6 = RGB(59, 130, 246)
	blueColor := "\033[38;2;59;130;246m"
	resetColor := "\033[0m"

	banner := `
██████╗  █████╗ ████████╗ █████╗  ██████╗ ███████╗███╗   ██╗
██╔══██╗██╔══██╗╚══██╔══╝██╔══██╗██╔════╝ ██╔════╝████╗  ██║
██║  ██║███████║   ██║   ███████║██║  ███╗█████╗  ██╔██╗ ██║
██║  ██║██╔══██║   ██║   ██╔══██║██║   ██║██╔══╝  ██║╚██╗██║
██████╔╝██║  ██║   ██║   ██║  ██║╚██████╔╝███████╗██║ ╚████║
╚═════╝ ╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═══╝
`
	fmt.Printf("%s%s%s\n", blueColor, banner, resetColor)
}

func main() {
	if !shouldSkipBanner(os.Args) {
		printBanner()
	}

	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("datagen"),
		kong.Description("Synthetic test data generation service for retail test automation"),
		kong.UsageOnError(),
	)

	level, _ := logger.ParseLevel(cli.LogLevel)
	output := os.Stderr
	if cli.LogFile != "" {
		file, cleanup, err := logger.OpenLogFile(cli.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer cleanup()
		output = file
	}
	logger.Init(level, output, cli.LogFormat)

	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
