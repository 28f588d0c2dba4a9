package tably

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML render configuration consumed by the CLI and by hosts
// that keep table setup in files rather than code.
//
//	container: orders
//	columns: [Title, Status]
//	sort: {field: Status, order: asc}
//	dates: {date: true, time: false}
//	style:
//	  header_background: "#336699"
//	  outline: true
type Config struct {
	Container string      `yaml:"container"`
	Columns   []string    `yaml:"columns"`
	Sort      *SortSpec   `yaml:"sort"`
	Dates     *DateFormat `yaml:"dates"`
	Style     Style       `yaml:"style"`
}

// ParseConfig decodes a YAML render configuration. Unknown fields are
// rejected.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return c, nil
}

// LoadConfig reads and decodes a YAML render configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// Table builds a Table from the configuration, mounting into doc.
func (c Config) Table(doc *Document) *Table {
	t := New(doc, c.Container)
	t.IncludeHeaders = c.Columns
	t.SortBy = c.Sort
	t.Dates = c.Dates
	t.Style = c.Style
	return t
}
