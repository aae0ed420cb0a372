// SPDX-License-Identifier: MIT

package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileEntry is the on-disk shape of one participant.
type fileEntry struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// fileRoster is the YAML document shape:
//
//	participants:
//	  - name: Ada Lovelace
//	    role: sponsor
//	  - name: Alan Turing
type fileRoster struct {
	Participants []fileEntry `yaml:"participants"`
}

// Load reads a roster file, choosing the decoder by extension
// (.yaml, .yml or .csv).
func Load(path string) (Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return Roster{}, fmt.Errorf("roster: open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(f)
	case ".csv":
		return DecodeCSV(f)
	default:
		return Roster{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// DecodeYAML reads a `participants:` document.
func DecodeYAML(r io.Reader) (Roster, error) {
	var doc fileRoster
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Roster{}, ErrEmptyRoster
		}
		return Roster{}, fmt.Errorf("roster: decode yaml: %w", err)
	}

	return New(toParticipants(doc.Participants))
}

// DecodeCSV reads a CSV with a header row. The "name" column is required and
// the "role" column is optional (missing means rotator); header names are
// matched case-insensitively and other columns are ignored.
func DecodeCSV(r io.Reader) (Roster, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Roster{}, ErrEmptyRoster
	}
	if err != nil {
		return Roster{}, fmt.Errorf("roster: read csv header: %w", err)
	}
	nameCol, roleCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			nameCol = i
		case "role":
			roleCol = i
		}
	}
	if nameCol < 0 {
		return Roster{}, ErrMissingColumn
	}

	var entries []fileEntry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Roster{}, fmt.Errorf("roster: read csv: %w", err)
		}
		var e fileEntry
		if nameCol < len(rec) {
			e.Name = rec[nameCol]
		}
		if roleCol >= 0 && roleCol < len(rec) {
			e.Role = rec[roleCol]
		}
		entries = append(entries, e)
	}

	return New(toParticipants(entries))
}

func toParticipants(entries []fileEntry) []Participant {
	ps := make([]Participant, len(entries))
	for i, e := range entries {
		ps[i] = Participant{Name: e.Name, Role: ParseRole(e.Role)}
	}

	return ps
}
