// Package sbs provides a client for the SBS On Demand catalog API.
package sbs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ProgramTypeSeries marks a program listing entry that exposes seasons and its own feed URL.
const ProgramTypeSeries = "program_series"

// ID is an upstream identifier. The API emits ids both as JSON strings and numbers.
type ID string

// UnmarshalJSON accepts a string or a number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Int64 reduces the id to its trailing path segment and parses it.
func (id ID) Int64() (int64, error) {
	return TrailingID(string(id))
}

// TrailingID returns the integer after the last '/' of s.
// An id without a separator is parsed as-is.
func TrailingID(s string) (int64, error) {
	seg := s[strings.LastIndex(s, "/")+1:]
	n, err := strconv.ParseInt(seg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return n, nil
}

// Movie is a movie entry from the programs feed.
type Movie struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
}

// Program is an entry from the program listing.
type Program struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// IsSeries reports whether the program exposes its own episode feed.
func (p Program) IsSeries() bool {
	return p.Type == ProgramTypeSeries
}

// Episode is an entry from a program's episode feed.
type Episode struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
}

// ProgramDetail is the per-program metadata used to locate its episode feed.
type ProgramDetail struct {
	Seasons []json.RawMessage `json:"seasons"`
	URL     string            `json:"url"`
	PilatID string            `json:"pl1$pilatId"`
}

// feedResponse is the paged feed envelope.
type feedResponse[T any] struct {
	TotalResults int `json:"totalResults"`
	Entries      []T `json:"entries"`
}

// programResponse wraps a single program's detail.
type programResponse struct {
	Program ProgramDetail `json:"program"`
}
