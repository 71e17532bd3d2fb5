package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mrlokans/catalogexport/internal/entities"
	"github.com/mrlokans/catalogexport/internal/export"
)

// ProductToItem converts a stored product into an export item created by e.
// Numeric fields that fail to parse make the whole product unexportable.
func ProductToItem(e export.Exporter, p entities.Product) (*export.Item, error) {
	item := e.CreateItem(p.ExternalID)

	for _, o := range p.Ordernumbers {
		item.AddOrdernumber(export.NewOrdernumber(o.Value, o.Usergroup))
	}

	for _, v := range p.Values {
		if err := addValue(item, v); err != nil {
			return nil, fmt.Errorf("product %s: %w", p.ExternalID, err)
		}
	}

	for _, a := range p.Attributes {
		attr := export.NewAttribute(a.Key)
		attr.AddValue(a.Value, a.Usergroup)
		item.AddAttribute(attr)
	}

	for _, prop := range p.Properties {
		item.AddProperty(prop.Key, prop.Value, prop.Usergroup)
	}

	for _, g := range strings.Split(p.Groups, ",") {
		if g = strings.TrimSpace(g); g != "" {
			item.AddGroup(g)
		}
	}

	if !p.CreatedAt.IsZero() {
		item.AddDateAdded(p.CreatedAt, export.NoUsergroup)
	}

	return item, nil
}

func addValue(item *export.Item, v entities.ProductValue) error {
	switch v.Field {
	case entities.ProductFieldName:
		item.AddName(v.Value, v.Usergroup)
	case entities.ProductFieldSummary:
		item.AddSummary(v.Value, v.Usergroup)
	case entities.ProductFieldDescription:
		item.AddDescription(v.Value, v.Usergroup)
	case entities.ProductFieldURL:
		item.AddURL(v.Value, v.Usergroup)
	case entities.ProductFieldImage:
		item.AddImage(v.Value, v.Usergroup)
	case entities.ProductFieldKeyword:
		item.AddKeyword(v.Value, v.Usergroup)
	case entities.ProductFieldPrice:
		price, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", v.Value, err)
		}
		item.AddPrice(price, v.Usergroup)
	case entities.ProductFieldBonus:
		bonus, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		if err != nil {
			return fmt.Errorf("invalid bonus %q: %w", v.Value, err)
		}
		item.AddBonus(bonus, v.Usergroup)
	case entities.ProductFieldSalesFrequency:
		frequency, err := strconv.Atoi(strings.TrimSpace(v.Value))
		if err != nil {
			return fmt.Errorf("invalid sales frequency %q: %w", v.Value, err)
		}
		item.AddSalesFrequency(frequency, v.Usergroup)
	case entities.ProductFieldSort:
		sort, err := strconv.Atoi(strings.TrimSpace(v.Value))
		if err != nil {
			return fmt.Errorf("invalid sort %q: %w", v.Value, err)
		}
		item.AddSort(sort, v.Usergroup)
	default:
		return fmt.Errorf("unknown field %q", v.Field)
	}
	return nil
}
