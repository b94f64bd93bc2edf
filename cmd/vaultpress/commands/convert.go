package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/vaultpress/internal/config"
	"git.home.luguber.info/inful/vaultpress/internal/convert"
)

// ConvertCmd implements the 'convert' command.
type ConvertCmd struct {
	Vault    string `arg:"" help:"Path to the Obsidian vault folder containing markdown files"`
	HugoRoot string `name:"hugo-root" short:"o" help:"Hugo site root directory (defaults to current directory)"`
}

func (cmd *ConvertCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// CLI inputs take precedence over the config file.
	cfg.Vault = cmd.Vault
	if cmd.HugoRoot != "" {
		cfg.Hugo.Root = cmd.HugoRoot
	}
	if cfg.Hugo.Root == "" {
		cfg.Hugo.Root = "."
	}

	level := parseLogLevel(root.Verbose, cfg.Logging.Level)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Friendly user-facing messages go to stdout, structured logs to stderr.
	fmt.Println("Converting Obsidian vault to Hugo")
	fmt.Printf("Vault: %s\n", cfg.Vault)
	fmt.Printf("Hugo root: %s\n", cfg.Hugo.Root)

	report, err := convert.New(cfg).Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Conversion complete:")
	fmt.Printf("Successfully processed: %d\n", report.NotesConverted)
	fmt.Printf("Failed: %d\n", report.NotesFailed)
	if report.ImagesMissing > 0 {
		fmt.Printf("Missing images: %d\n", report.ImagesMissing)
	}
	return nil
}
