package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"

	"github.com/pkg/errors"
)

//go:embed seed.json
var seedJSON []byte

// seed is decoded once; Default hands out copies.
var seed = mustParse(seedJSON)

// SeedJSON returns the embedded seed catalog JSON bytes.
func SeedJSON() []byte {
	return seedJSON
}

// Parse decodes a seed catalog. Unknown fields are rejected so a typo in
// the file cannot silently drop a value.
func Parse(data []byte) (*Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(err, "catalog: decode seed json")
	}
	return &c, nil
}

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the demo catalog. Each call returns a fresh copy.
func Default() *Catalog {
	return &Catalog{
		Restaurants: append([]Restaurant(nil), seed.Restaurants...),
		Outlets:     append([]Outlet(nil), seed.Outlets...),
		Categories:  append([]Category(nil), seed.Categories...),
		Dishes:      append([]Dish(nil), seed.Dishes...),
		Tables:      append([]Table(nil), seed.Tables...),
	}
}
