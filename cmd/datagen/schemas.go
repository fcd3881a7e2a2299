package main

import (
	"fmt"

	"github.com/qaforge/datagen/pkg/schema"
)

// SchemasCmd lists the registered entity schemas.
type SchemasCmd struct {
	Domain string `help:"Filter by domain."`
}

func (c *SchemasCmd) Run(cli *CLI) error {
	registry := schema.NewRegistry()

	for _, sc := range registry.List(c.Domain) {
		info := schema.Describe(sc)
		fmt.Printf("%s (%s)\n", info.Name, info.Domain)
		if info.Description != "" {
			fmt.Printf("  %s\n", info.Description)
		}
		for _, f := range info.Fields {
			required := ""
			if f.Required {
				required = " (required)"
			}
			fmt.Printf("  - %s: %s%s\n", f.Name, f.Type, required)
		}
		fmt.Println()
	}
	return nil
}
