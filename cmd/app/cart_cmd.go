package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pvhao2002/smart-health-sub000/internal/model"
)

func runCart(ctx context.Context, d *deps, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "show":
		items := d.cart.Items()
		if len(items) == 0 {
			fmt.Println("cart is empty")
			return nil
		}
		for _, it := range items {
			fmt.Printf("#%d %-30s x%d  %10.0f\n", it.MedicineID, it.Name, it.Quantity, it.Subtotal())
		}
		fmt.Printf("%d items, total %.0f\n", d.cart.TotalQuantity(), d.cart.TotalPrice())
		return nil

	case "add":
		if len(rest) == 0 {
			return fmt.Errorf("usage: cart add <medicineId> [qty]")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid medicine id: %s", rest[0])
		}
		qty := 1
		if len(rest) > 1 {
			qty, err = strconv.Atoi(rest[1])
			if err != nil {
				return fmt.Errorf("invalid quantity: %s", rest[1])
			}
		}

		// Stock is validated here, before the store is touched.
		med, err := d.catalogSvc.EnsureInStock(ctx, id, qty)
		if err != nil {
			return err
		}
		d.cart.AddItem(model.CartItem{
			MedicineID: med.ID,
			Name:       med.Name,
			Price:      med.Price,
			Image:      med.Image,
			Quantity:   qty,
		})
		fmt.Printf("added %s x%d\n", med.Name, qty)
		return nil

	case "qty":
		if len(rest) < 2 {
			return fmt.Errorf("usage: cart qty <medicineId> <delta>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid medicine id: %s", rest[0])
		}
		delta, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("invalid delta: %s", rest[1])
		}
		d.cart.UpdateQuantity(id, delta)
		fmt.Println("updated")
		return nil

	case "remove":
		if len(rest) == 0 {
			return fmt.Errorf("usage: cart remove <medicineId>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid medicine id: %s", rest[0])
		}
		d.cart.RemoveItem(id)
		fmt.Println("removed")
		return nil

	case "clear":
		d.cart.ClearCart()
		fmt.Println("cleared")
		return nil

	default:
		return fmt.Errorf("unknown cart subcommand: %s", sub)
	}
}
