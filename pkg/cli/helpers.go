// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/DMTF/Redfish-URI-Validator/pkg/crawler"
	"github.com/DMTF/Redfish-URI-Validator/pkg/report"
)

// connectionFlags are shared by every command that talks to a live service.
func connectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "user",
			Aliases: []string{"u"},
			Usage:   "The user name for authentication",
		},
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "The password for authentication",
		},
		&cli.StringFlag{
			Name:    "rhost",
			Aliases: []string{"r"},
			Usage:   "The address of the Redfish service (with scheme prefix)",
		},
		&cli.BoolFlag{
			Name:    "insecure",
			Aliases: []string{"k"},
			Usage:   "Skip TLS certificate verification",
		},
		&cli.IntFlag{
			Name:  "workers",
			Value: 4,
			Usage: "Maximum concurrent requests during the crawl",
		},
		&cli.FloatFlag{
			Name:  "rps",
			Usage: "Maximum requests per second (0 = unlimited)",
		},
	}
}

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (report.Format, error) {
	outFormat := report.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: json, yaml, table", outFormat)
	}
	return outFormat, nil
}

// newClient builds a crawler client from the shared connection flags.
func newClient(cmd *cli.Command) (*crawler.Client, error) {
	rhost := cmd.String("rhost")
	if rhost == "" {
		return nil, fmt.Errorf("--rhost is required to reach a live service")
	}

	opts := []crawler.Option{
		crawler.WithWorkers(int(cmd.Int("workers"))),
		crawler.WithRateLimit(cmd.Float("rps")),
	}
	if cmd.Bool("insecure") {
		opts = append(opts, crawler.WithInsecureTLS())
	}
	return crawler.New(rhost, cmd.String("user"), cmd.String("password"), opts...)
}
