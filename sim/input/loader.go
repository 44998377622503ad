// Package input loads the warehouse master data and the day's pick orders
// from semicolon-delimited record files. Each entity kind has its own
// explicit parse function; the loaders validate records and report
// malformed input with file and line context.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	sim "github.com/warehouse-sim/warehouse-sim/sim"
)

// ErrMalformedInput reports an input record that could not be parsed.
var ErrMalformedInput = errors.New("malformed input record")

// Default filenames inside the input data directory.
const (
	LocationsFilename = "locations.csv"
	ProductsFilename  = "products.csv"
	OrdersFilename    = "pickorders.csv"
)

// Input bundles the three read-only collections the simulation runs on.
type Input struct {
	Locations []*sim.Location
	Products  []*sim.Product
	Orders    []*sim.Order
}

// Load reads locations.csv, products.csv and pickorders.csv from dir.
func Load(dir string) (*Input, error) {
	locations, err := LoadLocations(filepath.Join(dir, LocationsFilename))
	if err != nil {
		return nil, err
	}
	products, err := LoadProducts(filepath.Join(dir, ProductsFilename))
	if err != nil {
		return nil, err
	}
	orders, err := LoadOrders(filepath.Join(dir, OrdersFilename))
	if err != nil {
		return nil, err
	}
	return &Input{Locations: locations, Products: products, Orders: orders}, nil
}

// LoadLocations reads location records `zone;<unused>;code` in file order.
func LoadLocations(path string) ([]*sim.Location, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	locations := make([]*sim.Location, 0, len(records))
	for _, rec := range records {
		loc, err := parseLocation(rec.fields)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, rec.line, err)
		}
		locations = append(locations, loc)
	}
	logrus.Infof("loaded %d locations from %s", len(locations), path)
	return locations, nil
}

// LoadProducts reads product records `code;maxLocationQuantity;fastMover`.
func LoadProducts(path string) ([]*sim.Product, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	products := make([]*sim.Product, 0, len(records))
	for _, rec := range records {
		p, err := parseProduct(rec.fields)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, rec.line, err)
		}
		products = append(products, p)
	}
	logrus.Infof("loaded %d products from %s", len(products), path)
	return products, nil
}

// LoadOrders reads order line records `orderId;productCode;quantity` and
// groups them into orders by first appearance of the order id. Line order
// within an order is the file order.
func LoadOrders(path string) ([]*sim.Order, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*sim.Order)
	orders := make([]*sim.Order, 0)
	lineCount := 0
	for _, rec := range records {
		line, err := parseOrderLine(rec.fields)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, rec.line, err)
		}
		order, ok := byID[line.OrderID]
		if !ok {
			order = &sim.Order{ID: line.OrderID}
			byID[line.OrderID] = order
			orders = append(orders, order)
		}
		order.Lines = append(order.Lines, line)
		lineCount++
	}
	logrus.Infof("loaded %d orders with %d lines from %s", len(orders), lineCount, path)
	return orders, nil
}

func parseLocation(fields []string) (*sim.Location, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: location record needs 3 fields, got %d", ErrMalformedInput, len(fields))
	}
	// The zone and shelf fields are carried in the input but not modeled.
	code := strings.TrimSpace(fields[2])
	if code == "" {
		return nil, fmt.Errorf("%w: location code must not be blank", ErrMalformedInput)
	}
	return &sim.Location{Code: code}, nil
}

func parseProduct(fields []string) (*sim.Product, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: product record needs 3 fields, got %d", ErrMalformedInput, len(fields))
	}
	code := strings.TrimSpace(fields[0])
	if code == "" {
		return nil, fmt.Errorf("%w: product code must not be blank", ErrMalformedInput)
	}
	maxQty, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || maxQty <= 0 {
		return nil, fmt.Errorf("%w: maxLocationQuantity must be a positive integer, got %q", ErrMalformedInput, fields[1])
	}
	// Anything other than "true" (case-insensitive) means not a fast mover.
	fastMover := strings.EqualFold(strings.TrimSpace(fields[2]), "true")
	return &sim.Product{Code: code, MaxLocationQuantity: maxQty, FastMover: fastMover}, nil
}

func parseOrderLine(fields []string) (*sim.OrderLine, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: order line record needs 3 fields, got %d", ErrMalformedInput, len(fields))
	}
	orderID := strings.TrimSpace(fields[0])
	productCode := strings.TrimSpace(fields[1])
	if orderID == "" {
		return nil, fmt.Errorf("%w: orderId must not be blank", ErrMalformedInput)
	}
	if productCode == "" {
		return nil, fmt.Errorf("%w: productCode must not be blank", ErrMalformedInput)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil || quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer, got %q", ErrMalformedInput, fields[2])
	}
	return &sim.OrderLine{OrderID: orderID, ProductCode: productCode, Quantity: quantity}, nil
}

// record is one raw input row together with its 1-based line number.
type record struct {
	line   int
	fields []string
}

func readRecords(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1 // rows may carry a trailing empty field
	r.LazyQuotes = true

	raw, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %v", path, ErrMalformedInput, err)
	}
	records := make([]record, 0, len(raw))
	for i, fields := range raw {
		records = append(records, record{line: i + 1, fields: fields})
	}
	return records, nil
}
