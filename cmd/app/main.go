package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/gebo/internal"
	"github.com/starford/gebo/internal/converter"
	"github.com/starford/gebo/internal/mcpserver"
	pkgconfig "github.com/starford/gebo/pkg/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadIfPresent(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func runConvert(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithRequirementsPath(cmd.String("requirements")),
		internal.WithRelationsPath(cmd.String("relations")),
		internal.WithOutputPath(cmd.String("out")),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func runMCP(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	conv := converter.New(
		converter.WithTitle(cfg.Document.Title),
		converter.WithToolID(cfg.Document.ToolID),
		converter.WithSourceToolID(cfg.Document.SourceToolID),
	)

	return mcpserver.New(conv).ServeStdio()
}

func main() {
	configFlag := &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to config file",
		DefaultText: "config/config.yaml",
		Value:       "config/config.yaml",
		Sources:     cli.EnvVars("APP_CONFIG_FILE"),
	}

	cmd := &cli.Command{
		Name:   "gebo",
		Usage:  "Convert tabular requirement and relation sheets into a ReqIF document",
		Action: runConvert,
		Flags: []cli.Flag{
			configFlag,
			&cli.StringFlag{
				Name:     "requirements",
				Aliases:  []string{"r"},
				Usage:    "Path to the requirements CSV sheet",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "relations",
				Aliases: []string{"l"},
				Usage:   "Path to the relations CSV sheet (optional)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output file path (defaults to the requirements path with a .reqif extension)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "mcp",
				Usage:  "Serve conversion tools over the Model Context Protocol on stdio",
				Action: runMCP,
				Flags:  []cli.Flag{configFlag},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
