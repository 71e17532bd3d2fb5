package export

import (
	"fmt"
	"strings"
)

// Type selects the output format of an exporter.
type Type int

const (
	TypeXML Type = iota
	TypeCSV
)

const (
	DefaultItemsPerPage = 20
	DefaultFilePrefix   = "items"
)

func (t Type) String() string {
	switch t {
	case TypeXML:
		return "xml"
	case TypeCSV:
		return "csv"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType maps a format name ("xml", "csv") to a Type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "xml":
		return TypeXML, nil
	case "csv":
		return TypeCSV, nil
	default:
		return 0, fmt.Errorf("%w: unknown export type %q", ErrInvalidConfiguration, name)
	}
}

// Exporter serializes pages of items. Implementations hold no state between
// calls.
type Exporter interface {
	// SerializeItems renders every non-nil item. start, count and total are
	// page metadata; count is the number of items requested and is never
	// smaller than the number of items rendered.
	SerializeItems(items []*Item, start, count, total int) (string, error)

	// SerializeItemsToFile writes the same document into targetDirectory and
	// returns the absolute path of the written file.
	SerializeItemsToFile(targetDirectory string, items []*Item, start, count, total int) (string, error)

	// CreateItem returns an empty item for this exporter's format.
	CreateItem(id string) *Item

	// FileName returns the base name SerializeItemsToFile uses for a page.
	FileName(start, count int) string

	Type() Type
	ItemsPerPage() int
}

type options struct {
	usergroup  string
	filePrefix string
}

// Option customizes an exporter built by Create.
type Option func(*options)

// WithUsergroup sets the usergroup context the CSV exporter flattens
// usergroup-aware properties for. The XML exporter ignores it.
func WithUsergroup(usergroup string) Option {
	return func(o *options) {
		o.usergroup = usergroup
	}
}

// WithFilePrefix sets the base name of files written by SerializeItemsToFile.
func WithFilePrefix(prefix string) Option {
	return func(o *options) {
		if prefix != "" {
			o.filePrefix = prefix
		}
	}
}

// Create builds an exporter for t. itemsPerPage is a paging hint for callers
// and must be at least 1. csvProperties lists the property keys exported as
// extra CSV columns.
func Create(t Type, itemsPerPage int, csvProperties []string, opts ...Option) (Exporter, error) {
	if itemsPerPage < 1 {
		return nil, fmt.Errorf("%w: items per page must be at least 1, got %d", ErrInvalidConfiguration, itemsPerPage)
	}

	o := options{filePrefix: DefaultFilePrefix}
	for _, opt := range opts {
		opt(&o)
	}

	switch t {
	case TypeXML:
		return newXMLExporter(itemsPerPage, o), nil
	case TypeCSV:
		return newCSVExporter(itemsPerPage, csvProperties, o), nil
	default:
		return nil, fmt.Errorf("%w: unknown export type %d", ErrInvalidConfiguration, int(t))
	}
}

func fileName(prefix string, start, count int, ext string) string {
	return fmt.Sprintf("%s_%d_%d.%s", prefix, start, count, ext)
}
