// SPDX-License-Identifier: MIT

// Package seatplan parses CLI flags and prints a seating plan.
package seatplan

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seatplan/advisory"
	"github.com/katalvlaran/seatplan/export"
	"github.com/katalvlaran/seatplan/internal/logging"
	entrypoint "github.com/katalvlaran/seatplan/internal/platform/cmd"
	"github.com/katalvlaran/seatplan/internal/platform/config"
	"github.com/katalvlaran/seatplan/planner"
	"github.com/katalvlaran/seatplan/roster"
	"github.com/katalvlaran/seatplan/stats"
)

// ErrUnknownFormat indicates an output format other than table, csv, json or yaml.
var ErrUnknownFormat = errors.New("seatplan: unknown output format")

// Config holds CLI configuration. Zero counts mean "derive".
type Config struct {
	Attendees      int    `env:"SEATPLAN_ATTENDEES"`
	Tables         int    `env:"SEATPLAN_TABLES"`
	Rounds         int    `env:"SEATPLAN_ROUNDS"`
	PeoplePerTable int    `env:"SEATPLAN_PEOPLE_PER_TABLE"`
	MaxOverlap     int    `env:"SEATPLAN_MAX_OVERLAP"`
	RosterPath     string `env:"SEATPLAN_ROSTER"`
	RequestPath    string `env:"SEATPLAN_CONFIG"`
	CSVPath        string `env:"SEATPLAN_CSV"`
	Format         string `env:"SEATPLAN_FORMAT" envDefault:"table"`
	Lang           string `env:"SEATPLAN_LANG"`
	LogLevel       string `env:"SEATPLAN_LOG_LEVEL" envDefault:"warn"`
	LogFormat      string `env:"SEATPLAN_LOG_FORMAT" envDefault:"text"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.Configure(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Attendees, "attendees", cfg.Attendees, "total attendees including sponsors")
	fs.IntVar(&cfg.Tables, "tables", cfg.Tables, "number of tables (0 = derive)")
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "number of rounds (0 = one per sponsor)")
	fs.IntVar(&cfg.PeoplePerTable, "ppt", cfg.PeoplePerTable, "people per table including the host (0 = derive)")
	fs.IntVar(&cfg.MaxOverlap, "max-overlap", cfg.MaxOverlap, "target max meetings per pair (0 = 1)")
	fs.StringVar(&cfg.RosterPath, "roster", cfg.RosterPath, "roster file (.yaml, .yml or .csv)")
	fs.StringVar(&cfg.RequestPath, "config", cfg.RequestPath, "YAML request file; flags and env take precedence")
	fs.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "also write the seating chart to this CSV file")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: table, csv, json or yaml")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "advisory language as a BCP 47 tag (default en)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
}

// Run builds one plan and writes it to stdout.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.Run(ctx, entrypoint.ServiceCLI, func(ctx context.Context) error {
		return run(ctx, cfg, os.Stdout)
	})
}

// requestFile is the -config document.
type requestFile struct {
	TotalAttendees int    `yaml:"total_attendees"`
	Tables         int    `yaml:"tables"`
	Rounds         int    `yaml:"rounds"`
	PeoplePerTable int    `yaml:"people_per_table"`
	MaxOverlap     int    `yaml:"max_overlap"`
	Roster         string `yaml:"roster"`
	Language       string `yaml:"language"`
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	switch format {
	case "table", "csv", "json", "yaml":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	req, err := buildRequest(cfg)
	if err != nil {
		return err
	}

	plan, err := planner.New(planner.WithLogger(logger)).Plan(ctx, req)
	if err != nil {
		return err
	}

	if cfg.CSVPath != "" {
		if err = writeCSVFile(cfg.CSVPath, plan); err != nil {
			return err
		}
	}

	switch format {
	case "csv":
		return export.WriteCSV(out, plan.Result, plan.Labels)
	case "json":
		rep, err := newReport(plan)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		rep, err := newReport(plan)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(rep)
	default:
		return writeTable(out, plan)
	}
}

// buildRequest merges the optional request file under explicit settings.
func buildRequest(cfg Config) (planner.Request, error) {
	var file requestFile
	if cfg.RequestPath != "" {
		if err := config.LoadYAML(cfg.RequestPath, &file); err != nil {
			return planner.Request{}, err
		}
	}

	req := planner.Request{
		TotalAttendees: firstNonZero(cfg.Attendees, file.TotalAttendees),
		Tables:         firstNonZero(cfg.Tables, file.Tables),
		Rounds:         firstNonZero(cfg.Rounds, file.Rounds),
		PeoplePerTable: firstNonZero(cfg.PeoplePerTable, file.PeoplePerTable),
		MaxOverlap:     firstNonZero(cfg.MaxOverlap, file.MaxOverlap),
	}

	lang := cfg.Lang
	if lang == "" {
		lang = file.Language
	}
	if lang != "" {
		tag, err := language.Parse(lang)
		if err != nil {
			return planner.Request{}, fmt.Errorf("seatplan: language %q: %w", lang, err)
		}
		req.Language = tag
	}

	path := cfg.RosterPath
	if path == "" {
		path = file.Roster
	}
	if path != "" {
		r, err := roster.Load(path)
		if err != nil {
			return planner.Request{}, err
		}
		req.Roster = &r
	}

	return req, nil
}

func firstNonZero(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}

	return 0
}

func writeCSVFile(path string, plan *planner.Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("seatplan: create csv: %w", err)
	}
	if err = export.WriteCSV(f, plan.Result, plan.Labels); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func writeTable(out io.Writer, plan *planner.Plan) error {
	chart, err := export.RenderTable(plan.Result, plan.Labels)
	if err != nil {
		return err
	}
	unmet, err := plan.UnmetReport()
	if err != nil {
		return err
	}

	sections := []string{}
	if notes := export.RenderNotes(plan.Notes); notes != "" {
		sections = append(sections, notes)
	}
	sections = append(sections, chart, export.RenderSummary(plan.Summary), export.RenderUnmet(unmet))
	_, err = fmt.Fprintln(out, strings.Join(sections, "\n\n"))

	return err
}

// report is the json/yaml output document.
type report struct {
	ID      string             `json:"id" yaml:"id"`
	Params  reportParams       `json:"params" yaml:"params"`
	Notes   advisory.List      `json:"notes" yaml:"notes"`
	Header  []string           `json:"header" yaml:"header"`
	Chart   [][]string         `json:"chart" yaml:"chart"`
	Summary stats.Summary      `json:"summary" yaml:"summary"`
	Unmet   []stats.UnmetEntry `json:"unmet" yaml:"unmet"`
}

type reportParams struct {
	Rotators       int `json:"rotators" yaml:"rotators"`
	Sponsors       int `json:"sponsors" yaml:"sponsors"`
	Tables         int `json:"tables" yaml:"tables"`
	Rounds         int `json:"rounds" yaml:"rounds"`
	PeoplePerTable int `json:"people_per_table" yaml:"people_per_table"`
}

func newReport(plan *planner.Plan) (report, error) {
	chart, err := export.Rows(plan.Result, plan.Labels)
	if err != nil {
		return report{}, err
	}
	unmet, err := plan.UnmetReport()
	if err != nil {
		return report{}, err
	}
	p := plan.Params

	return report{
		ID: plan.ID,
		Params: reportParams{
			Rotators:       p.Rotators,
			Sponsors:       p.Sponsors,
			Tables:         p.Tables,
			Rounds:         p.Rounds,
			PeoplePerTable: p.PeoplePerTable,
		},
		Notes:   plan.Notes,
		Header:  append([]string{"Participant"}, export.RoundHeaders(p.Rounds)...),
		Chart:   chart,
		Summary: plan.Summary,
		Unmet:   unmet,
	}, nil
}
