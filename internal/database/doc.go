// Package database provides the catalog store that feeds exports.
//
// Products are stored with gorm on SQLite. Every usergroup-scoped value is a
// child row carrying its usergroup and position, so a product read back from
// the store converts into an export item with the same bucket order it was
// saved with.
//
//	db, err := database.NewDatabase("./catalog.db")
//	err = db.SaveProduct(&entities.Product{ExternalID: "123", ...})
//	page, err := db.GetProducts(0, 20)
//
// Each written export page is recorded as an entities.ExportRun.
package database
