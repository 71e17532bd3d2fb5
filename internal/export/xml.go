package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const xmlVersion = "1.0"

type xmlDocument struct {
	XMLName xml.Name `xml:"export"`
	Version string   `xml:"version,attr"`
	Items   xmlItems `xml:"items"`
}

type xmlItems struct {
	Start int       `xml:"start,attr"`
	Count int       `xml:"count,attr"`
	Total int       `xml:"total,attr"`
	Items []xmlItem `xml:"item"`
}

type xmlItem struct {
	ID        string `xml:"id,attr"`
	Fragments []xmlFragment
}

type xmlFragment struct {
	XMLName   xml.Name
	Key       string   `xml:"key,attr,omitempty"`
	Usergroup string   `xml:"usergroup,attr,omitempty"`
	Values    []string `xml:"value"`
}

// XMLExporter writes a paged document whose envelope carries start, count
// and total. Each property bucket becomes one element under its item.
type XMLExporter struct {
	itemsPerPage int
	filePrefix   string
}

func newXMLExporter(itemsPerPage int, o options) *XMLExporter {
	return &XMLExporter{
		itemsPerPage: itemsPerPage,
		filePrefix:   o.filePrefix,
	}
}

func (e *XMLExporter) Type() Type {
	return TypeXML
}

func (e *XMLExporter) ItemsPerPage() int {
	return e.itemsPerPage
}

func (e *XMLExporter) CreateItem(id string) *Item {
	return newItem(id, TypeXML)
}

func (e *XMLExporter) SerializeItems(items []*Item, start, count, total int) (string, error) {
	doc := xmlDocument{
		Version: xmlVersion,
		Items: xmlItems{
			Start: start,
			Count: count,
			Total: total,
			Items: make([]xmlItem, 0, len(items)),
		},
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		doc.Items.Items = append(doc.Items.Items, toXMLItem(item))
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encode xml: %w", err)
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}

func (e *XMLExporter) SerializeItemsToFile(targetDirectory string, items []*Item, start, count, total int) (string, error) {
	data, err := e.SerializeItems(items, start, count, total)
	if err != nil {
		return "", err
	}
	return writeFileAtomic(targetDirectory, e.FileName(start, count), []byte(data))
}

func (e *XMLExporter) FileName(start, count int) string {
	return fileName(e.filePrefix, start, count, "xml")
}

func toXMLItem(item *Item) xmlItem {
	out := xmlItem{ID: item.ID()}
	for _, field := range item.Fragments() {
		for _, f := range field.XMLFragments() {
			out.Fragments = append(out.Fragments, xmlFragment{
				XMLName:   xml.Name{Local: f.Name},
				Key:       f.Key,
				Usergroup: f.Usergroup,
				Values:    f.Values,
			})
		}
	}
	return out
}
