/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import "sync"

// Collector accumulates result rows from concurrent judging workers.
type Collector struct {
	mu   sync.Mutex
	rows []Row
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		rows: make([]Row, 0),
	}
}

// Add stores one row.
func (c *Collector) Add(row Row) {
	c.mu.Lock()
	c.rows = append(c.rows, row)
	c.mu.Unlock()
}

// Rows returns a copy of all collected rows.
func (c *Collector) Rows() []Row {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Return a copy to avoid external modifications
	result := make([]Row, len(c.rows))
	copy(result, c.rows)
	return result
}

// Len returns the number of collected rows.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rows)
}
