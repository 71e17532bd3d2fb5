// Command generate_demo creates a demo catalog database with usergroup-specific
// product data.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db] [-count 100]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/catalogexport/internal/database"
	"github.com/mrlokans/catalogexport/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	count := flag.Int("count", 50, "number of generated products added after the sample products")
	flag.Parse()

	log.Printf("Generating demo catalog at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create demo directory: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	products := append(sampleProducts(), generatedProducts(*count)...)
	saved := 0
	for i := range products {
		if err := db.SaveProduct(&products[i]); err != nil {
			log.Printf("Failed to save product %s: %v", products[i].ExternalID, err)
			continue
		}
		saved++
	}

	log.Printf("Demo catalog generated with %d products", saved)
}

func value(field entities.ProductField, v, usergroup string) entities.ProductValue {
	return entities.ProductValue{Field: field, Value: v, Usergroup: usergroup}
}

// sampleProducts covers the interesting cases: per-usergroup names and
// prices, ordernumbers restricted to a group and multi-valued attributes.
func sampleProducts() []entities.Product {
	return []entities.Product{
		{
			ExternalID: "123",
			Groups:     "retail,b2b",
			Values: []entities.ProductValue{
				value(entities.ProductFieldName, "Shirt", ""),
				value(entities.ProductFieldName, "Corporate Shirt (10 pack)", "b2b"),
				value(entities.ProductFieldSummary, "Plain cotton shirt", ""),
				value(entities.ProductFieldDescription, "Soft cotton shirt with a classic collar.", ""),
				value(entities.ProductFieldPrice, "19.90", ""),
				value(entities.ProductFieldPrice, "149.00", "b2b"),
				value(entities.ProductFieldURL, "https://shop.example.com/shirt", ""),
				value(entities.ProductFieldImage, "https://shop.example.com/img/shirt.jpg", ""),
				value(entities.ProductFieldKeyword, "shirt", ""),
				value(entities.ProductFieldKeyword, "cotton", ""),
				value(entities.ProductFieldBonus, "1.5", ""),
				value(entities.ProductFieldSalesFrequency, "42", ""),
				value(entities.ProductFieldSort, "1", ""),
			},
			Ordernumbers: []entities.ProductOrdernumber{
				{Value: "SKU1"},
				{Value: "SKU2"},
				{Value: "B2B-SKU1", Usergroup: "b2b"},
			},
			Attributes: []entities.ProductAttribute{
				{Key: "color", Value: "red"},
				{Key: "color", Value: "blue"},
				{Key: "size", Value: "M"},
				{Key: "size", Value: "L"},
			},
			Properties: []entities.ProductProperty{
				{Key: "brand", Value: "Acme"},
				{Key: "material", Value: "cotton"},
				{Key: "delivery", Value: "2-3 days", Usergroup: "retail"},
				{Key: "delivery", Value: "next business day", Usergroup: "b2b"},
			},
		},
		{
			ExternalID: "124",
			Groups:     "retail",
			Values: []entities.ProductValue{
				value(entities.ProductFieldName, "Socks", ""),
				value(entities.ProductFieldSummary, "Wool socks, pair of two", ""),
				value(entities.ProductFieldPrice, "7.50", ""),
				value(entities.ProductFieldURL, "https://shop.example.com/socks", ""),
				value(entities.ProductFieldKeyword, "socks", ""),
				value(entities.ProductFieldSort, "2", ""),
			},
			Ordernumbers: []entities.ProductOrdernumber{
				{Value: "SKU3"},
			},
			Attributes: []entities.ProductAttribute{
				{Key: "material", Value: "wool"},
			},
			Properties: []entities.ProductProperty{
				{Key: "brand", Value: "Acme"},
			},
		},
		{
			ExternalID: "125",
			Groups:     "b2b",
			Values: []entities.ProductValue{
				value(entities.ProductFieldName, "Safety Boots", "b2b"),
				value(entities.ProductFieldPrice, "89.00", "b2b"),
				value(entities.ProductFieldKeyword, "boots", "b2b"),
				value(entities.ProductFieldSort, "3", ""),
			},
			Ordernumbers: []entities.ProductOrdernumber{
				{Value: "B2B-BOOT-42", Usergroup: "b2b"},
			},
			Properties: []entities.ProductProperty{
				{Key: "brand", Value: "Steelworks"},
				{Key: "certification", Value: "EN ISO 20345", Usergroup: "b2b"},
			},
		},
	}
}

var (
	demoColors = []string{"red", "green", "blue", "black", "white"}
	demoBrands = []string{"Acme", "Globex", "Initech"}
)

// generatedProducts adds n simple products so exports span several pages.
func generatedProducts(n int) []entities.Product {
	products := make([]entities.Product, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%d", 1000+i)
		color := demoColors[i%len(demoColors)]
		price := fmt.Sprintf("%d.%02d", 5+i%40, (i*7)%100)

		groups := "retail"
		if i%3 == 0 {
			groups = "retail,b2b"
		}

		products = append(products, entities.Product{
			ExternalID: id,
			Groups:     groups,
			Values: []entities.ProductValue{
				value(entities.ProductFieldName, fmt.Sprintf("T-Shirt %s #%d", color, i+1), ""),
				value(entities.ProductFieldPrice, price, ""),
				value(entities.ProductFieldURL, "https://shop.example.com/p/"+id, ""),
				value(entities.ProductFieldSalesFrequency, fmt.Sprintf("%d", (i*13)%100), ""),
				value(entities.ProductFieldSort, fmt.Sprintf("%d", i+10), ""),
			},
			Ordernumbers: []entities.ProductOrdernumber{
				{Value: "GEN-" + id},
			},
			Attributes: []entities.ProductAttribute{
				{Key: "color", Value: color},
			},
			Properties: []entities.ProductProperty{
				{Key: "brand", Value: demoBrands[i%len(demoBrands)]},
			},
		})
	}
	return products
}
