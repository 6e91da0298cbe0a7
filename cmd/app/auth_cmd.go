package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/pvhao2002/smart-health-sub000/internal/model"
)

func runLogin(ctx context.Context, d *deps, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := d.authSvc.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s <%s>\n", user.Name, user.Email)

	if exp, ok := d.auth.ExpiresAt(); ok {
		fmt.Printf("session valid until %s\n", exp.Format(time.RFC1123))
	}
	return nil
}

func runRegister(ctx context.Context, d *deps, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := d.authSvc.Register(ctx, *name, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("registered %s <%s>\n", user.Name, user.Email)
	return nil
}

func runLogout(d *deps) error {
	d.authSvc.Logout()
	fmt.Println("logged out")
	return nil
}

func runProfile(ctx context.Context, d *deps, args []string) error {
	if len(args) > 0 && args[0] == "update" {
		return runProfileUpdate(ctx, d, args[1:])
	}

	user, err := d.authSvc.Profile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	if user.Phone != "" {
		fmt.Println("phone:  ", user.Phone)
	}
	if user.Address != "" {
		fmt.Println("address:", user.Address)
	}
	if user.HeightCm != nil {
		fmt.Printf("height:  %.0f cm\n", *user.HeightCm)
	}
	return nil
}

func runProfileUpdate(ctx context.Context, d *deps, args []string) error {
	fs := flag.NewFlagSet("profile update", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	phone := fs.String("phone", "", "phone number")
	address := fs.String("address", "", "shipping address")
	height := fs.Float64("height", 0, "height in cm")
	goal := fs.String("goal", "", "LOSE_WEIGHT|GAIN_WEIGHT|MAINTAIN")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Unset flags keep the current values.
	current, err := d.authSvc.Profile(ctx)
	if err != nil {
		return err
	}
	req := model.UpdateProfileRequest{
		Name:     current.Name,
		Phone:    current.Phone,
		Address:  current.Address,
		HeightCm: current.HeightCm,
	}
	if *name != "" {
		req.Name = *name
	}
	if *phone != "" {
		req.Phone = *phone
	}
	if *address != "" {
		req.Address = *address
	}
	if *height > 0 {
		req.HeightCm = height
	}
	if *goal != "" {
		req.Goal = *goal
	}

	user, err := d.authSvc.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("profile saved for %s\n", user.Name)
	return nil
}
