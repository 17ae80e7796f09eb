// Package csvsource reads the vessel table from a delimited text file.
package csvsource

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/usvmap/usvmap/internal/core/domain"
)

// Encodings reported in domain.RecordSet.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

// Column headers, matched case-insensitively.
var (
	nameColumns    = []string{"Name"}
	countryColumns = []string{"Country"}
	makerColumns   = []string{"Manufacturer"}
	lengthColumns  = []string{"Max. Length (m)", "Length (m)", "Length"}
	latColumns     = []string{"Latitude", "Lat"}
	lonColumns     = []string{"Longitude", "Lon", "Lng"}
)

// Source implements ports.RecordSource over the local filesystem.
type Source struct {
	comma rune
}

// New creates a Source for comma-separated files.
func New() *Source {
	return &Source{comma: ','}
}

// WithComma returns a Source using another field delimiter.
func (s *Source) WithComma(r rune) *Source {
	return &Source{comma: r}
}

// Stat returns the identity of the file at path.
func (s *Source) Stat(path string) (domain.FileIdentity, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return domain.FileIdentity{}, err
	}
	return domain.FileIdentity{Path: path, Size: fi.Size(), ModTime: fi.ModTime()}, nil
}

// Load reads and decodes the whole file.
func (s *Source) Load(ctx context.Context, path string) (*domain.RecordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	id, err := s.Stat(path)
	if err != nil {
		return nil, err
	}
	rs, err := s.Decode(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	rs.Source = id
	return rs, nil
}

// Decode parses file content. Bytes that are not valid UTF-8 are read as
// Windows-1252, which covers Latin-1 exports from spreadsheet tools.
func (s *Source) Decode(ctx context.Context, data []byte) (*domain.RecordSet, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	encoding := EncodingUTF8
	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("utf-8 and %s decoding failed: %w", EncodingWindows1252, err)
		}
		slog.InfoContext(ctx, "input is not valid utf-8, decoded as fallback", "encoding", EncodingWindows1252)
		data = decoded
		encoding = EncodingWindows1252
	}

	records, err := s.parse(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &domain.RecordSet{Records: records, Encoding: encoding}, nil
}

func (s *Source) parse(ctx context.Context, r io.Reader) ([]domain.VesselRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = s.comma
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := indexColumns(header)

	nameIdx, ok := findColumn(cols, nameColumns)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, nameColumns[0])
	}
	countryIdx, ok := findColumn(cols, countryColumns)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, countryColumns[0])
	}
	makerIdx, _ := findColumn(cols, makerColumns)
	lengthIdx, _ := findColumn(cols, lengthColumns)
	latIdx, hasLat := findColumn(cols, latColumns)
	lonIdx, hasLon := findColumn(cols, lonColumns)

	known := map[int]bool{nameIdx: true, countryIdx: true, makerIdx: true, lengthIdx: true, latIdx: true, lonIdx: true}

	var records []domain.VesselRecord
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			slog.DebugContext(ctx, "skipping malformed row", "row", row, "error", err)
			continue
		}
		if blank(fields) {
			continue
		}

		rec := domain.VesselRecord{
			Row:          row,
			Name:         field(fields, nameIdx),
			Manufacturer: field(fields, makerIdx),
			RawCountry:   field(fields, countryIdx),
			LengthM:      parseLength(field(fields, lengthIdx)),
		}
		rec.Country = domain.NormalizeCountry(rec.RawCountry)

		if hasLat && hasLon {
			lat, errLat := strconv.ParseFloat(field(fields, latIdx), 64)
			lon, errLon := strconv.ParseFloat(field(fields, lonIdx), 64)
			if errLat == nil && errLon == nil {
				rec.Coordinates = &domain.GeoPoint{Lat: lat, Lon: lon}
			}
		}

		for i, h := range header {
			if known[i] {
				continue
			}
			if v := field(fields, i); v != "" {
				if rec.Extra == nil {
					rec.Extra = make(map[string]string)
				}
				rec.Extra[cleanHeader(h)] = v
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func cleanHeader(col string) string {
	return strings.TrimSpace(strings.TrimPrefix(col, "\xef\xbb\xbf"))
}

func indexColumns(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, col := range header {
		key := strings.ToLower(cleanHeader(col))
		if _, dup := m[key]; !dup {
			m[key] = i
		}
	}
	return m
}

// findColumn returns the index of the first candidate header present.
// A missing column yields -1.
func findColumn(cols map[string]int, candidates []string) (int, bool) {
	for _, c := range candidates {
		if i, ok := cols[strings.ToLower(c)]; ok {
			return i, true
		}
	}
	return -1, false
}

func field(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}

func blank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// parseLength accepts "12.5", "12,5" and "12.5 m".
func parseLength(s string) *float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "m"))
	if s == "" {
		return nil
	}
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
