package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pvhao2002/smart-health-sub000/internal/api"
	"github.com/pvhao2002/smart-health-sub000/internal/callback"
	"github.com/pvhao2002/smart-health-sub000/internal/checkout"
	"github.com/pvhao2002/smart-health-sub000/internal/config"
	"github.com/pvhao2002/smart-health-sub000/internal/services"
	"github.com/pvhao2002/smart-health-sub000/internal/store"
	"github.com/pvhao2002/smart-health-sub000/pkg/logger"
)

type deps struct {
	cfg config.Config
	log *slog.Logger

	cart *store.CartStore
	auth *store.AuthStore

	authSvc    *services.AuthService
	catalogSvc *services.CatalogService
	orderSvc   *services.OrderService
	paymentSvc *services.PaymentService
	healthSvc  *services.HealthService
	adminSvc   *services.AdminService

	listener *callback.Listener
	flow     *checkout.Flow
}

func main() {
	configPath := flag.String("config", "client.yaml", "path to config file")
	flag.Parse()

	// ======================
	// CONFIG + LOGGER
	// ======================
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		Service: "mediclient",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	// ======================
	// STORAGE + STORES
	// ======================
	storage, err := store.NewFileStorage(cfg.StorageDir)
	if err != nil {
		log.Error("init storage", "err", err)
		os.Exit(1)
	}
	cartStore := store.NewCartStore(storage, log)
	authStore := store.NewAuthStore(storage, log)

	// ======================
	// API CLIENT
	// ======================
	client := api.New(cfg.BaseURL, cfg.RequestTimeout(), log)
	client.SetTokenSource(authStore.Token)
	client.OnSessionExpired(func() {
		authStore.Logout()
		log.Warn("logged out, please login again")
	})

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(client, authStore)
	catalogSvc := services.NewCatalogService(client)
	orderSvc := services.NewOrderService(client)
	paymentSvc := services.NewPaymentService(client, log)
	healthSvc := services.NewHealthService(client)
	adminSvc := services.NewAdminService(client)

	// ======================
	// CHECKOUT
	// ======================
	listener := callback.New(cfg.CallbackPort, log)
	flow := checkout.NewFlow(cartStore, orderSvc, paymentSvc, listener, log)
	flow.WaitTimeout = cfg.PaymentWait()

	d := &deps{
		cfg:        cfg,
		log:        log,
		cart:       cartStore,
		auth:       authStore,
		authSvc:    authSvc,
		catalogSvc: catalogSvc,
		orderSvc:   orderSvc,
		paymentSvc: paymentSvc,
		healthSvc:  healthSvc,
		adminSvc:   adminSvc,
		listener:   listener,
		flow:       flow,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dispatch(ctx, d, flag.Args()); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(os.Stderr, "session expired, please login again")
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, d *deps, args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return runLogin(ctx, d, rest)
	case "register":
		return runRegister(ctx, d, rest)
	case "logout":
		return runLogout(d)
	case "profile":
		return runProfile(ctx, d, rest)
	case "medicines":
		return runMedicines(ctx, d, rest)
	case "categories":
		return runCategories(ctx, d)
	case "cart":
		return runCart(ctx, d, rest)
	case "checkout":
		return runCheckout(ctx, d, rest)
	case "orders":
		return runOrders(ctx, d, rest)
	case "health":
		return runHealth(ctx, d, rest)
	case "admin":
		return runAdmin(ctx, d, rest)
	case "help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func usage() {
	fmt.Println(`mediclient <command>

  login | register | logout | profile [update]
  medicines  list | all | newest | trending | flash | show <id>
  categories
  cart       show | add <id> [qty] | qty <id> <delta> | remove <id> | clear
  checkout   [-address ...] [-phone ...] [-method COD|VNPAY]
  orders     history [-status S] | show <id>
  health     records | add-record | meals | log-meal | plan | bmi
  admin      dashboard | products | categories | orders | users | plans | ...`)
}
