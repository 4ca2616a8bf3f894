// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/DMTF/Redfish-URI-Validator/pkg/cli"
)

// version is set at build time via ldflags.
var version = "1.2.0"

func main() {
	cmd := cli.New(version)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}
