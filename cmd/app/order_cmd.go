package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
)

func runOrders(ctx context.Context, d *deps, args []string) error {
	if len(args) == 0 {
		args = []string{"history"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "history":
		fs := flag.NewFlagSet("orders history", flag.ContinueOnError)
		status := fs.String("status", "", "filter by status")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		orders, err := d.orderSvc.HistoryByStatus(ctx, *status)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("no orders")
			return nil
		}
		for _, o := range orders {
			fmt.Printf("#%d %-12s %-8s %10.0f\n", o.ID, o.Status, o.PaymentMethod, o.Total)
		}
		return nil

	case "show":
		if len(rest) == 0 {
			return fmt.Errorf("usage: orders show <id>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id: %s", rest[0])
		}
		o, err := d.orderSvc.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("order #%d  %s  %s  total %.0f\n", o.ID, o.Status, o.PaymentMethod, o.Total)
		for _, it := range o.Items {
			fmt.Printf("  #%d %s x%d\n", it.MedicineID, it.Name, it.Quantity)
		}
		if o.ShippingAddress != "" {
			fmt.Println("ship to:", o.ShippingAddress, o.Phone)
		}
		return nil

	default:
		return fmt.Errorf("unknown orders subcommand: %s", sub)
	}
}
