package main

import (
	"context"
	"fmt"
	"os"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/utilmind/mysqlstrip/internal/cli"
	"github.com/utilmind/mysqlstrip/internal/logger"
)

const version = "1.0.0"

func main() {
	app := &urfavecli.Command{
		Name:    "mysqlstrip",
		Usage:   "Remove legacy versioned compatibility comments from MySQL/MariaDB dumps",
		Version: version,
		Commands: []*urfavecli.Command{
			{
				Name:      "run",
				Usage:     "Transform one dump file (use - for stdin/stdout)",
				ArgsUsage: "INPUT OUTPUT",
				Action:    runCommand,
				Flags:     commonFlags(),
			},
			{
				Name:      "batch",
				Usage:     "Transform every dump matching a glob pattern into an output directory",
				ArgsUsage: "PATTERN OUTDIR",
				Action:    batchCommand,
				Flags:     commonFlags(),
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func commonFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.UintFlag{
			Name:    "threshold",
			Aliases: []string{"t"},
			Usage:   "Version boundary; comments tagged below it are unwrapped",
		},
		&urfavecli.BoolFlag{
			Name:  "buffer",
			Usage: "Read the whole input into memory before transforming",
		},
		&urfavecli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Suppress progress reporting on stderr",
		},
		&urfavecli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to YAML config file",
		},
		&urfavecli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug output",
		},
	}
}

// loadConfig merges defaults, the config file, and flags, then validates.
func loadConfig(cmd *urfavecli.Command) (*cli.Config, error) {
	config := cli.DefaultConfig

	if err := cli.LoadConfigFile(&config, cmd.String("config")); err != nil {
		return nil, err
	}

	cli.ApplyFlagsToConfig(&config,
		uint64(cmd.Uint("threshold")),
		cmd.Bool("buffer"),
		cmd.Bool("quiet"),
		cmd.Bool("verbose"))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger.SetVerbose(config.Verbose)
	return &config, nil
}

// runCommand handles the 'mysqlstrip run' command
func runCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	args := cmd.Args()
	// Buffered mode accepts a single INPUT and defaults OUTPUT to stdout;
	// streaming mode requires both paths.
	if args.Len() != 2 && !(config.Buffered && args.Len() == 1) {
		fmt.Fprintf(os.Stderr, "Usage: mysqlstrip run [flags] INPUT OUTPUT\n")
		os.Exit(1)
	}

	inPath := args.Get(0)
	outPath := args.Get(1)
	if outPath == "" {
		outPath = "-"
	}

	return cli.Run(config, inPath, outPath)
}

// batchCommand handles the 'mysqlstrip batch' command
func batchCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	args := cmd.Args()
	if args.Len() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: mysqlstrip batch [flags] PATTERN OUTDIR\n")
		os.Exit(1)
	}

	return cli.Batch(config, args.Get(0), args.Get(1))
}
