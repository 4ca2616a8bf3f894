// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/DMTF/Redfish-URI-Validator/pkg/crawler"
	"github.com/DMTF/Redfish-URI-Validator/pkg/report"
	"github.com/DMTF/Redfish-URI-Validator/pkg/resource"
	"github.com/DMTF/Redfish-URI-Validator/pkg/spec"
	"github.com/DMTF/Redfish-URI-Validator/pkg/validate"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Crawl a Redfish service and verify every URI against an OpenAPI specification",
		Description: `Retrieves every resource exposed by the service and checks each @odata.id
against the path templates declared by the OpenAPI specification. Resources
without a direct match are traced through the resource graph: settings,
action-info, and collection-capabilities annotations excuse the miss, OEM
subtrees downgrade it to a warning, anything else is a failure.

An HTML report is written after every completed run. The aggregate result can
additionally be serialized as JSON, YAML, or a table.

# Examples

Validate a live service:
  redfish-uri-validator validate -u root -p secret -r https://bmc.example.com --openapi openapi.yaml

Validate a previously captured crawl:
  redfish-uri-validator validate --payloads crawl.json --openapi openapi.yaml

CI gate on failures:
  redfish-uri-validator validate -u root -p secret -r https://bmc --openapi openapi.yaml --fail-on-error`,
		Flags: append(connectionFlags(),
			&cli.StringFlag{
				Name:     "openapi",
				Required: true,
				Usage:    "The OpenAPI specification file to validate against",
			},
			&cli.StringFlag{
				Name:  "payloads",
				Usage: "Validate a saved crawl file instead of a live service",
			},
			&cli.StringFlag{
				Name:    "logdir",
				Aliases: []string{"d"},
				Usage:   "Output directory for the HTML report (default: current directory)",
			},
			&cli.BoolFlag{
				Name:  "no-report",
				Usage: "Skip HTML report generation",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit non-zero when any resource fails validation",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path for the serialized result (default: stdout)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Usage:   "Serialize the result as json, yaml, or table",
			},
		),
		Action: runValidate,
	}
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	openapi := cmd.String("openapi")
	pathSet, err := spec.LoadOpenAPI(openapi)
	if err != nil {
		return err
	}
	slog.Info("loaded specification", "file", openapi, "paths", pathSet.Len())

	col, service, err := gatherResources(ctx, cmd)
	if err != nil {
		return err
	}
	slog.Info("retrieved resources", "count", col.Len())

	v := validate.New(
		validate.WithVersion(version),
		validate.WithService(service),
		validate.WithSpecSource(openapi),
	)
	result, err := v.Validate(ctx, col, pathSet)
	if err != nil {
		return err
	}
	slog.Info("validation completed",
		"pass", result.TotalPass,
		"fail", result.TotalFail,
		"warn", result.TotalWarn)

	if !cmd.Bool("no-report") {
		gen := report.NewGenerator(report.Config{
			ToolVersion: version,
			Service:     service,
			User:        cmd.String("user"),
			SpecPath:    openapi,
		})
		path, err := gen.GenerateFile(cmd.String("logdir"), result, pathSet.Templates())
		if err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}
		slog.Info("report written", "file", path)
	}

	if cmd.String("format") != "" || cmd.String("output") != "" {
		outFormat := report.FormatJSON
		if cmd.String("format") != "" {
			outFormat, err = parseOutputFormat(cmd)
			if err != nil {
				return err
			}
		}
		writer := report.NewFileWriterOrStdout(outFormat, cmd.String("output"))
		if err := writer.Serialize(ctx, result); err != nil {
			return err
		}
	}

	if cmd.Bool("fail-on-error") && result.TotalFail > 0 {
		return cli.Exit(fmt.Sprintf("validation failed: %d resources failed", result.TotalFail), 1)
	}
	return nil
}

// gatherResources produces the resource collection from either a saved crawl
// file or a live service, returning the collection and a display name for
// the source.
func gatherResources(ctx context.Context, cmd *cli.Command) (*resource.Collection, string, error) {
	if payloads := cmd.String("payloads"); payloads != "" {
		col, err := crawler.LoadPayloads(payloads)
		if err != nil {
			return nil, "", err
		}
		return col, payloads, nil
	}

	client, err := newClient(cmd)
	if err != nil {
		return nil, "", err
	}

	rhost := cmd.String("rhost")
	slog.Info("logging in and downloading resources; this may take a while", "service", rhost)
	if err := client.Login(ctx); err != nil {
		return nil, "", err
	}
	defer func() {
		if err := client.Logout(ctx); err != nil {
			slog.Warn("failed to log out", "error", err)
		}
	}()

	col, err := client.Crawl(ctx)
	if err != nil {
		return nil, "", err
	}
	return col, rhost, nil
}
