// Package testutil provides shared test infrastructure for the warehouse
// simulator. It consolidates input-file fixtures used across the sim/ and
// cmd/ test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Sample input files describing a small but complete warehouse day:
// two zones with three locations, three products, and two pick orders
// (ORD1 with two lines, ORD2 with one).
const (
	SampleLocationsCSV = "ZONE1;1;L1\nZONE1;2;L2\nZONE2;1;L3\n"
	SampleProductsCSV  = "P1;10;true\nP2;5;false\nP3;20;false\n"
	SampleOrdersCSV    = "ORD1;P1;4\nORD1;P2;2\nORD2;P3;6\n"
)

// WriteFile writes content under dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// WriteInputDir lays out a temporary input directory holding the three
// record files and returns its path.
func WriteInputDir(t *testing.T, locationsCSV, productsCSV, ordersCSV string) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "locations.csv", locationsCSV)
	WriteFile(t, dir, "products.csv", productsCSV)
	WriteFile(t, dir, "pickorders.csv", ordersCSV)
	return dir
}
