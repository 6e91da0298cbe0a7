package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/pvhao2002/smart-health-sub000/internal/model"
)

func runMedicines(ctx context.Context, d *deps, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := flag.NewFlagSet("medicines list", flag.ContinueOnError)
		page := fs.Int("page", 0, "page number")
		size := fs.Int("size", 20, "page size")
		keyword := fs.String("keyword", "", "search keyword")
		category := fs.Int64("category", 0, "category id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		res, err := d.catalogSvc.List(ctx, *page, *size, *keyword, *category)
		if err != nil {
			return err
		}
		printMedicines(res.Content)
		fmt.Printf("page %d/%d (%d total)\n", res.Page+1, res.TotalPages, res.TotalElements)
		return nil

	case "all":
		meds, err := d.catalogSvc.ListAll(ctx, 50)
		if err != nil {
			return err
		}
		printMedicines(meds)
		return nil

	case "newest", "trending", "flash":
		var meds []model.Medicine
		var err error
		switch sub {
		case "newest":
			meds, err = d.catalogSvc.Newest(ctx)
		case "trending":
			meds, err = d.catalogSvc.Trending(ctx)
		default:
			meds, err = d.catalogSvc.FlashSale(ctx)
		}
		if err != nil {
			return err
		}
		printMedicines(meds)
		return nil

	case "show":
		if len(rest) == 0 {
			return fmt.Errorf("usage: medicines show <id>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid medicine id: %s", rest[0])
		}
		med, err := d.catalogSvc.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("#%d %s - %.0f (stock %d)\n", med.ID, med.Name, med.Price, med.Stock)
		if med.Description != "" {
			fmt.Println(med.Description)
		}
		return nil

	default:
		return fmt.Errorf("unknown medicines subcommand: %s", sub)
	}
}

func runCategories(ctx context.Context, d *deps) error {
	cats, err := d.catalogSvc.Categories(ctx)
	if err != nil {
		return err
	}
	for _, c := range cats {
		fmt.Printf("#%d %s\n", c.ID, c.Name)
	}
	return nil
}

func printMedicines(meds []model.Medicine) {
	for _, m := range meds {
		fmt.Printf("#%d %-30s %10.0f  stock %d\n", m.ID, m.Name, m.Price, m.Stock)
	}
}
