// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/DMTF/Redfish-URI-Validator/pkg/validate"
)

// Config holds the presentation inputs for HTML reports. Tool version and
// logo are explicit configuration rather than process-wide state.
type Config struct {
	// ToolVersion is printed in the report header.
	ToolVersion string

	// Logo is a base64-encoded GIF shown in the report header. DefaultLogo is
	// used when empty.
	Logo string

	// Service is the validated service address.
	Service string

	// User is the account the crawl authenticated as.
	User string

	// SpecPath is the OpenAPI specification file the run validated against.
	SpecPath string
}

// Generator renders validation results as a standalone HTML report.
type Generator struct {
	cfg  Config
	now  func() time.Time
	coll *collate.Collator
}

// Option is a functional option for configuring Generator instances.
type Option func(*Generator)

// WithClock returns an Option that replaces the report timestamp source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a Generator with the given presentation config.
func NewGenerator(cfg Config, opts ...Option) *Generator {
	if cfg.Logo == "" {
		cfg.Logo = DefaultLogo
	}
	g := &Generator{
		cfg:  cfg,
		now:  time.Now,
		coll: collate.New(language.Und),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type uriRow struct {
	URI     string
	Result  validate.Status
	Details string
	Class   string
	Hint    string
}

type reportData struct {
	Logo        template.URL
	ToolVersion string
	Timestamp   string
	Service     string
	User        string
	SpecPath    string
	TotalPass   int
	TotalFail   int
	TotalWarn   int
	Rows        []uriRow
	Orphans     []string
}

// Generate renders the report for the given result. The specification's
// templates feed the nearest-template hints shown on failing rows.
func (g *Generator) Generate(w io.Writer, res *validate.Result, templates []string) error {
	uris := make([]string, 0, len(res.URIs))
	for uri := range res.URIs {
		uris = append(uris, uri)
	}
	g.coll.SortStrings(uris)

	rows := make([]uriRow, 0, len(uris))
	for _, uri := range uris {
		verdict := res.URIs[uri]
		row := uriRow{
			URI:     uri,
			Result:  verdict.Result,
			Details: verdict.Details,
			Class:   statusClass(verdict.Result),
		}
		if verdict.Result == validate.StatusFail {
			if hint, ok := NearestTemplate(uri, templates); ok {
				row.Hint = hint
			}
		}
		rows = append(rows, row)
	}

	orphans := make([]string, 0, len(res.Orphans))
	for _, orphan := range res.Orphans {
		payload, err := json.MarshalIndent(orphan, "", "    ")
		if err != nil {
			return fmt.Errorf("failed to render orphan payload: %w", err)
		}
		orphans = append(orphans, string(payload))
	}

	data := reportData{
		Logo:        template.URL("data:image/gif;base64," + g.cfg.Logo),
		ToolVersion: g.cfg.ToolVersion,
		Timestamp:   g.now().Format(time.ANSIC),
		Service:     g.cfg.Service,
		User:        g.cfg.User,
		SpecPath:    g.cfg.SpecPath,
		TotalPass:   res.TotalPass,
		TotalFail:   res.TotalFail,
		TotalWarn:   res.TotalWarn,
		Rows:        rows,
		Orphans:     orphans,
	}
	return reportTemplate.Execute(w, data)
}

// GenerateFile writes the report into dir (created if needed) using the
// RedfishURITestReport_<timestamp>.html naming convention and returns the
// file path.
func (g *Generator) GenerateFile(dir string, res *validate.Result, templates []string) (string, error) {
	name := "RedfishURITestReport_" + g.now().Format("01_02_2006_150405") + ".html"
	path := name
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		path = filepath.Join(dir, name)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := g.Generate(f, res, templates); err != nil {
		return "", err
	}
	return path, nil
}

func statusClass(s validate.Status) string {
	switch s {
	case validate.StatusFail:
		return "fail"
	case validate.StatusWarning:
		return "warn"
	default:
		return "pass"
	}
}

// NearestTemplate returns the specification template with the smallest edit
// distance to the identifier, used as a hint on failing rows.
func NearestTemplate(uri string, templates []string) (string, bool) {
	best := ""
	bestDist := -1
	for _, t := range templates {
		d := levenshtein.ComputeDistance(uri, t)
		if bestDist < 0 || d < bestDist {
			best = t
			bestDist = d
		}
	}
	return best, bestDist >= 0
}

var reportTemplate = template.Must(template.New("report").Parse(`<html>
  <head>
    <title>Redfish URI Test Summary</title>
    <style>
      .pass {background-color:#99EE99}
      .fail {background-color:#EE9999}
      .warn {background-color:#EEEE99}
      .bluebg {background-color:#BDD6EE}
      .center {text-align:center;}
      .log {text-align:left; white-space:pre-wrap; word-wrap:break-word; font-size:smaller}
      .title {background-color:#DDDDDD; border: 1pt solid; padding: 8px}
      .titlerow {border: 2pt solid}
      body {background-color:lightgrey; border: 1pt solid; text-align:center; margin-left:auto; margin-right:auto}
      th {text-align:center; background-color:beige; border: 1pt solid}
      td {text-align:left; background-color:white; border: 1pt solid; word-wrap:break-word;}
      table {width:90%; margin: 0px auto; table-layout:fixed;}
    </style>
  </head>
  <table>
    <tr>
      <th>
        <h2>##### Redfish URI Test Report #####</h2>
        <h4><img align="center" alt="DMTF Redfish Logo" height="203" width="288" src="{{.Logo}}"></h4>
        <h4><a href="https://github.com/DMTF/Redfish-URI-Validator">https://github.com/DMTF/Redfish-URI-Validator</a></h4>
        Tool Version: {{.ToolVersion}}<br/>
        {{.Timestamp}}<br/><br/>
        This tool is provided and maintained by the DMTF.  For feedback, please open issues<br/>
        in the tool's Github repository: <a href="https://github.com/DMTF/Redfish-URI-Validator/issues">https://github.com/DMTF/Redfish-URI-Validator/issues</a><br/>
      </th>
    </tr>
    <tr>
      <th>
        System: {{.Service}}/redfish/v1/, User: {{.User}}<br/>
        OpenAPI Specification: {{.SpecPath}}<br/>
      </th>
    </tr>
    <tr>
      <td>
        <center><b>Results Summary</b></center>
        <center>Pass: {{.TotalPass}}, Fail: {{.TotalFail}}, Warning: {{.TotalWarn}}</center>
      </td>
    </tr>
    <tr>
      <th class="titlerow bluebg">
        <b>Results</b>
      </th>
    </tr>
    {{if or .Rows .Orphans}}<tr><td><table>
    {{range .Rows}}<tr>
      <td>{{.URI}}</td>
      <td class="{{.Class}} center" width="30%">{{.Result}}{{if ne .Class "pass"}}: {{.Details}}{{if .Hint}}<br/>Closest specification path: {{.Hint}}{{end}}{{end}}</td>
    </tr>
    {{end}}{{range .Orphans}}<tr>
      <td><pre class="log">{{.}}</pre></td>
      <td class="fail center" width="30%">Fail: Missing "@odata.id" and/or "@odata.type" from the payload</td>
    </tr>
    {{end}}</table></td></tr>
    {{end}}
  </table>
</html>
`))
