package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/pvhao2002/smart-health-sub000/internal/checkout"
	"github.com/pvhao2002/smart-health-sub000/internal/model"
)

func runCheckout(ctx context.Context, d *deps, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	address := fs.String("address", "", "shipping address (defaults to profile)")
	phone := fs.String("phone", "", "contact phone (defaults to profile)")
	method := fs.String("method", model.PaymentMethodCOD, "payment method: COD or VNPAY")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Prefill from the profile like the checkout screen does.
	if *address == "" || *phone == "" {
		user, err := d.authSvc.Profile(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if *address == "" {
			*address = user.Address
		}
		if *phone == "" {
			*phone = user.Phone
		}
	}

	if *method == model.PaymentMethodVNPay {
		d.listener.Start()
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = d.listener.Shutdown(sctx)
		}()
	}

	res, err := d.flow.Submit(ctx, checkout.Request{
		ShippingAddress: *address,
		Phone:           *phone,
		PaymentMethod:   *method,
	})
	if err != nil {
		return err
	}

	switch res.Target {
	case checkout.TargetOrderHistory:
		fmt.Printf("order #%d placed, see `orders history`\n", res.OrderID)
	case checkout.TargetPaymentResult:
		fmt.Printf("order #%d payment result: %s\n", res.OrderID, res.PaymentStatus)
		if res.PaymentStatus == checkout.PaymentStatusFail {
			fmt.Println("your cart was kept so you can retry")
		}
	}
	return nil
}
