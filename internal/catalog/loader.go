// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"github.com/compatproj/datasheet-mcp/internal/datasheet"
)

// Loader walks a directory of datasheet files, decodes each one, and parses
// it into the catalog. The component identifier is the file's base name.
type Loader struct {
	parser     *datasheet.Parser
	extensions []string
	log        *zap.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithExtensions sets the file extensions treated as datasheets.
// The default is ".txt".
func WithExtensions(exts ...string) LoaderOption {
	return func(l *Loader) {
		if len(exts) > 0 {
			l.extensions = exts
		}
	}
}

// WithLogger routes load progress and statistics to log.
func WithLogger(log *zap.Logger) LoaderOption {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLoader creates a Loader around the given parser.
func NewLoader(parser *datasheet.Parser, opts ...LoaderOption) *Loader {
	l := &Loader{
		parser:     parser,
		extensions: []string{".txt"},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadStats summarizes one directory load.
type LoadStats struct {
	// TotalFiles is the number of datasheet files encountered.
	TotalFiles int
	// FullyRanged counts records with concrete ranges on both axes.
	FullyRanged int
	// Conflicting counts records where an axis degraded to unknown because
	// candidate ranges disagreed.
	Conflicting int
	// NoRange counts records where an axis had no valid candidate at all.
	NoRange int
}

// LoadDir parses every datasheet under dir into a fresh Catalog. Unreadable
// files are logged and skipped; a missing or unwalkable directory is an
// error. Records are appended in traversal order.
func (l *Loader) LoadDir(dir string) (*Catalog, LoadStats, error) {
	cat := New()
	var stats LoadStats

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !l.wantsFile(path) {
			return nil
		}
		stats.TotalFiles++

		raw, rerr := os.ReadFile(path)
		if rerr != nil {
			l.log.Warn("skipping unreadable datasheet", zap.String("path", path), zap.Error(rerr))
			return nil
		}

		result := l.parser.ParseWithDiagnostics(filepath.Base(path), DecodeText(raw))
		tally(&stats, result)
		cat.Add(result.Record)
		return nil
	})
	if err != nil {
		return nil, stats, fmt.Errorf("load datasheets from %s: %w", dir, err)
	}

	l.log.Info("datasheet load complete",
		zap.String("dir", dir),
		zap.Int("total_files", stats.TotalFiles),
		zap.Int("fully_ranged", stats.FullyRanged),
		zap.Int("conflicting", stats.Conflicting),
		zap.Int("no_range", stats.NoRange))
	return cat, stats, nil
}

func (l *Loader) wantsFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range l.extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

func tally(stats *LoadStats, result datasheet.ParseResult) {
	record := result.Record
	switch {
	case record.Voltage.IsKnown() && record.Temperature.IsKnown():
		stats.FullyRanged++
	case (!record.Voltage.IsKnown() && len(result.VoltageCandidates) > 1) ||
		(!record.Temperature.IsKnown() && len(result.TemperatureCandidates) > 1):
		stats.Conflicting++
	default:
		stats.NoRange++
	}
}

// DecodeText turns raw datasheet bytes into a string. Valid UTF-8 is kept
// as-is; anything else is read as Latin-1, which never fails and matches how
// vendors typically encode the degree sign. The extraction templates tolerate
// the glyph variants either path can produce.
func DecodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}
