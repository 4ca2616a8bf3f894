// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/DMTF/Redfish-URI-Validator/pkg/report"
)

func crawlCmd() *cli.Command {
	return &cli.Command{
		Name:                  "crawl",
		EnableShellCompletion: true,
		Usage:                 "Download every resource from a Redfish service",
		Description: `Retrieves the full resource set reachable from the service root and writes
the raw payloads as a JSON array (or YAML sequence). The saved crawl can be
validated later with 'validate --payloads'.

# Examples

Capture a service for offline validation:
  redfish-uri-validator crawl -u root -p secret -r https://bmc.example.com --output crawl.json`,
		Flags: append(connectionFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(report.FormatJSON),
				Usage:   "Output format (json, yaml)",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			slog.Info("logging in and downloading resources; this may take a while",
				"service", cmd.String("rhost"))
			if err := client.Login(ctx); err != nil {
				return err
			}
			defer func() {
				if err := client.Logout(ctx); err != nil {
					slog.Warn("failed to log out", "error", err)
				}
			}()

			col, err := client.Crawl(ctx)
			if err != nil {
				return err
			}
			slog.Info("crawl completed", "resources", col.Len())

			writer := report.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			return writer.Serialize(ctx, col)
		},
	}
}
