// Package export renders catalog items into documents consumed by a search
// indexing service.
//
// # Data model
//
// Every exportable property of an [Item] is a multi-valued collection keyed by
// usergroup. Values added without a usergroup land in the default bucket,
// addressed with [NoUsergroup]:
//
//	item := exporter.CreateItem("123")
//	item.AddName("Shirt", export.NoUsergroup)
//	item.AddName("Corporate Shirt", "b2b")
//	item.AddOrdernumber(export.NewOrdernumber("SKU1", export.NoUsergroup))
//
// Properties implement [FragmentRenderable]. The CSV renderer asks each
// property for a single flattened value in the configured usergroup context,
// the XML renderer asks for one fragment per usergroup bucket.
//
// # Usergroup fallback
//
// [UsergroupAwareMultiValue] resolves a CSV request for usergroup g to the g
// bucket if present, otherwise to the default bucket. The fallback is one
// level deep and never crosses into another scoped bucket. A missing value is
// not an error: it renders as an empty string.
//
// # Exporters
//
// [Create] returns a [CSVExporter] or [XMLExporter]. Both serialize every item
// they receive; start, count and total only feed the XML envelope and the
// output file name.
package export
