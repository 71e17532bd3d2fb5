package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// csvColumns are the fixed leading columns of every CSV export.
var csvColumns = []string{
	"id",
	"ordernumber",
	"name",
	"summary",
	"description",
	"price",
	"url",
	"image",
	"attributes",
	"keywords",
	"groups",
	"bonus",
	"sales_frequency",
	"date_added",
	"sort",
}

var csvSanitizer = strings.NewReplacer("\t", " ", "\r\n", " ", "\r", " ", "\n", " ")

// CSVExporter writes one tab-separated row per item. Usergroup-aware
// properties are flattened for a single usergroup context.
type CSVExporter struct {
	itemsPerPage  int
	csvProperties []string
	usergroup     string
	filePrefix    string
}

func newCSVExporter(itemsPerPage int, csvProperties []string, o options) *CSVExporter {
	props := make([]string, len(csvProperties))
	copy(props, csvProperties)
	return &CSVExporter{
		itemsPerPage:  itemsPerPage,
		csvProperties: props,
		usergroup:     o.usergroup,
		filePrefix:    o.filePrefix,
	}
}

func (e *CSVExporter) Type() Type {
	return TypeCSV
}

func (e *CSVExporter) ItemsPerPage() int {
	return e.itemsPerPage
}

func (e *CSVExporter) CreateItem(id string) *Item {
	return newItem(id, TypeCSV)
}

// Header returns the fixed columns followed by the configured properties.
func (e *CSVExporter) Header() []string {
	header := make([]string, 0, len(csvColumns)+len(e.csvProperties))
	header = append(header, csvColumns...)
	return append(header, e.csvProperties...)
}

// SerializeItems ignores start, count and total.
func (e *CSVExporter) SerializeItems(items []*Item, start, count, total int) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'

	if err := w.Write(e.Header()); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		if err := w.Write(e.row(item)); err != nil {
			return "", fmt.Errorf("write csv row for item %s: %w", item.ID(), err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}

func (e *CSVExporter) SerializeItemsToFile(targetDirectory string, items []*Item, start, count, total int) (string, error) {
	data, err := e.SerializeItems(items, start, count, total)
	if err != nil {
		return "", err
	}
	return writeFileAtomic(targetDirectory, e.FileName(start, count), []byte(data))
}

func (e *CSVExporter) FileName(start, count int) string {
	return fileName(e.filePrefix, start, count, "csv")
}

func (e *CSVExporter) row(item *Item) []string {
	ug := e.usergroup
	row := []string{
		item.ID(),
		item.AllOrdernumbers().CSVFragment(ug),
		item.Names().CSVFragment(ug),
		item.Summaries().CSVFragment(ug),
		item.Descriptions().CSVFragment(ug),
		item.Prices().CSVFragment(ug),
		item.URLs().CSVFragment(ug),
		item.Images().CSVFragment(ug),
		e.attributes(item),
		item.Keywords().CSVFragment(ug),
		item.Groups().CSVFragment(NoUsergroup),
		item.Bonuses().CSVFragment(ug),
		item.SalesFrequencies().CSVFragment(ug),
		item.DatesAdded().CSVFragment(ug),
		item.Sorts().CSVFragment(ug),
	}
	for _, key := range e.csvProperties {
		value := ""
		if p := item.Property(key); p != nil {
			value = p.CSVFragment(ug)
		}
		row = append(row, value)
	}
	for i := range row {
		row[i] = csvSanitizer.Replace(row[i])
	}
	return row
}

func (e *CSVExporter) attributes(item *Item) string {
	parts := make([]string, 0, len(item.attributes))
	for _, a := range item.attributes {
		if fragment := a.CSVFragment(e.usergroup); fragment != "" {
			parts = append(parts, fragment)
		}
	}
	return strings.Join(parts, "&")
}
