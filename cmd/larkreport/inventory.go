package main

import (
	"fmt"
	"strings"

	"github.com/alnah/go-larkreport/internal/sheet"
)

// runInventoryCmd dispatches inventory subcommands.
func runInventoryCmd(args []string, env *Environment) error {
	if len(args) == 0 {
		printInventoryUsage(env.Stderr)
		return fmt.Errorf("%w: inventory needs a subcommand (add, list)", ErrUsage)
	}

	flags, positional, err := parseInventoryFlags(args[1:], env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected arguments: %s", ErrUsage, strings.Join(positional, " "))
	}
	cfg, _, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	path := flags.sheet
	if path == "" {
		path = cfg.Inventory.Sheet
	}

	switch args[0] {
	case "add":
		return runInventoryAdd(path, flags, env)
	case "list":
		return runInventoryList(path, env)
	}
	return fmt.Errorf("%w: inventory %s", ErrUnknownCommand, args[0])
}

// runInventoryAdd upserts the product described by flags.
func runInventoryAdd(path string, flags *inventoryFlags, env *Environment) error {
	p := sheet.Product{
		Name:      strings.TrimSpace(flags.name),
		Category:  flags.category,
		Stock:     flags.stock,
		Min:       flags.min,
		UnitCost:  flags.cost,
		Supplier:  flags.supplier,
		ImageName: flags.image,
	}
	added, err := sheet.Upsert(path, p)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		verb := "Updated"
		if added {
			verb = "Added"
		}
		fmt.Fprintf(env.Stdout, "%s %s in %s\n", verb, p.Name, path)
	}
	return nil
}

// runInventoryList prints the workbook as aligned rows.
func runInventoryList(path string, env *Environment) error {
	products, err := sheet.Read(path)
	if err != nil {
		return err
	}
	for _, p := range products {
		fmt.Fprintf(env.Stdout, "%-24s %-12s %4d / %-4d AED %.2f  %s\n",
			p.Name, p.Category, p.Stock, p.Min, p.UnitCost, p.Supplier)
	}
	return nil
}
