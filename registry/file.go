/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/tablebind"
)

// File is the on-disk declarations document:
//
//	bindings:
//	  orders-by-id:
//	    tableName: Orders
//	    partitionKey: "{region}"
//	    rowKey: "{id}"
//	  open-orders:
//	    tableName: Orders
//	    partitionKey: "{region}"
//	    filter: "Status eq 'open'"
//	    take: 20
//	  append-order:
//	    tableName: Orders
//	    partitionKey: "{region}"
//	    rowKey: "{id}"
//	    direction: write
type File struct {
	Bindings map[string]tablebind.Declaration `yaml:"bindings"`
}

// LoadFile parses a YAML declarations file and registers every entry.
// Any invalid entry fails the whole load.
func LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read declarations file: %w", err)
	}
	return LoadBytes(raw)
}

// LoadBytes is LoadFile over an in-memory document.
func LoadBytes(raw []byte) error {
	var doc File
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse declarations: %w", err)
	}

	for name, decl := range doc.Bindings {
		if err := Register(name, decl); err != nil {
			return err
		}
	}
	return nil
}
