// Package campaign loads campaign data files and groups their flat mission
// rows into a Campaign → Episode → Mission tree.
package campaign

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column names of a campaign data file header.
const (
	ColGameName      = "game_name"
	ColIWAD          = "iwad"
	ColPWAD          = "pwad"
	ColComplevel     = "complevel"
	ColReleaseDate   = "release_date"
	ColEpisodeName   = "episode_name"
	ColEpisodeNumber = "episode_number"
	ColMissionName   = "mission_name"
	ColMissionNumber = "mission_number"
	ColLevelNumber   = "level_number"
	ColIsSecret      = "is_secret"
)

var requiredColumns = []string{
	ColGameName, ColIWAD, ColPWAD, ColComplevel, ColReleaseDate,
	ColEpisodeName, ColEpisodeNumber, ColMissionName, ColMissionNumber,
	ColLevelNumber, ColIsSecret,
}

// LoadFile reads and groups the campaign data file at path.
func LoadFile(path string) (*Campaign, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open campaign file: %w", err)
	}
	defer func() {
		_ = f.Close() // read-only
	}()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load reads campaign rows from r and groups them into a Campaign.
func Load(r io.Reader) (*Campaign, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}
	return Group(records)
}

// ReadRecords parses CSV data whose first row is a header naming each column.
// Columns may appear in any order and unknown columns are ignored.
func ReadRecords(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, &FormatError{Line: 1, Err: err}
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, &FormatError{Line: 1, Column: name, Err: errMissingColumn}
		}
	}

	var records []Record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &FormatError{Line: parseErr.Line, Err: parseErr.Err}
			}
			return nil, fmt.Errorf("failed to read campaign data: %w", err)
		}
		line, _ := reader.FieldPos(0)

		rec, err := parseRecord(columns, fields, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	return records, nil
}

func parseRecord(columns map[string]int, fields []string, line int) (Record, error) {
	get := func(name string) string {
		return strings.TrimSpace(fields[columns[name]])
	}
	atoi := func(name string) (int, error) {
		value := get(name)
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, &FormatError{Line: line, Column: name, Value: value, Err: errors.Unwrap(err)}
		}
		return n, nil
	}

	for _, name := range requiredColumns {
		if value := fields[columns[name]]; strings.ContainsAny(value, "\r\n") {
			return Record{}, &FormatError{Line: line, Column: name, Value: value, Err: ErrLineBreak}
		}
	}

	rec := Record{
		GameName:    get(ColGameName),
		IWAD:        get(ColIWAD),
		PWAD:        get(ColPWAD),
		Complevel:   get(ColComplevel),
		ReleaseDate: get(ColReleaseDate),
		EpisodeName: get(ColEpisodeName),
		MissionName: get(ColMissionName),
		IsSecret:    get(ColIsSecret) == "true",
	}

	var err error
	if rec.EpisodeNumber, err = atoi(ColEpisodeNumber); err != nil {
		return Record{}, err
	}
	if rec.MissionNumber, err = atoi(ColMissionNumber); err != nil {
		return Record{}, err
	}
	if rec.LevelNumber, err = atoi(ColLevelNumber); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Group builds a Campaign from records in file order. Campaign attributes
// come from the first record.
//
// Episode boundaries are found by tracking an episode counter that starts at
// the first record's episode number and advances by exactly one whenever a
// record's episode number differs from it. Source data whose episode numbers
// skip therefore splits episodes rather than failing.
func Group(records []Record) (*Campaign, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	first := records[0]
	c := &Campaign{
		Name:        first.GameName,
		IWAD:        first.IWAD,
		PWAD:        first.PWAD,
		Complevel:   first.Complevel,
		ReleaseDate: first.ReleaseDate,
	}

	for _, s := range episodeSpans(records) {
		head := records[s.start]
		ep := Episode{
			Name:     head.EpisodeName,
			Number:   head.EpisodeNumber,
			Missions: make([]Mission, 0, s.end-s.start+1),
		}
		for _, rec := range records[s.start : s.end+1] {
			ep.Missions = append(ep.Missions, Mission{
				Name:     rec.MissionName,
				Number:   rec.MissionNumber,
				Level:    rec.LevelNumber,
				WAD:      rec.PWAD,
				IsSecret: rec.IsSecret,
			})
		}
		c.Episodes = append(c.Episodes, ep)
	}
	return c, nil
}

// span is an inclusive range of record indexes.
type span struct {
	start, end int
}

func episodeSpans(records []Record) []span {
	var spans []span
	current := records[0].EpisodeNumber
	start := 0
	for i, rec := range records {
		if rec.EpisodeNumber != current {
			spans = append(spans, span{start: start, end: i - 1})
			start = i
			current++
		}
	}
	// The trailing episode always closes at the last record.
	return append(spans, span{start: start, end: len(records) - 1})
}
