// SPDX-License-Identifier: Apache-2.0

// Package catalog holds the in-memory collection of parsed component records
// and answers compatibility queries against it.
package catalog

import (
	"github.com/compatproj/datasheet-mcp/internal/datasheet"
)

// Catalog is an append-only, ordered collection of component records.
// Insertion order is query-result order. Appends must be serialized by the
// caller; read-only scans are safe to run concurrently with each other.
type Catalog struct {
	records []datasheet.Record
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{}
}

// Add appends a record to the catalog.
func (c *Catalog) Add(record datasheet.Record) {
	c.records = append(c.records, record)
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns a copy of the catalog contents in insertion order.
func (c *Catalog) Records() []datasheet.Record {
	out := make([]datasheet.Record, len(c.records))
	copy(out, c.records)
	return out
}

// FindCompatible returns, in catalog order, every record whose voltage range
// contains voltage and whose temperature range contains temperature. Both
// interval tests are closed: boundary values are compatible. A record with an
// unknown range on either axis never matches. An empty result is a valid
// result, not an error.
func (c *Catalog) FindCompatible(voltage, temperature float64) []datasheet.Record {
	var matches []datasheet.Record
	for _, record := range c.records {
		if record.Voltage.Contains(voltage) && record.Temperature.Contains(temperature) {
			matches = append(matches, record)
		}
	}
	return matches
}
