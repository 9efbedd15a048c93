package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AkilCDE/urban-trends-apparel/config"
	"github.com/AkilCDE/urban-trends-apparel/internal/adminapi"
	"github.com/AkilCDE/urban-trends-apparel/internal/app"
	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
	"github.com/AkilCDE/urban-trends-apparel/internal/webapi"
	"github.com/AkilCDE/urban-trends-apparel/internal/webserver"
)

var (
	h        = flag.Bool("h", false, "help usage")
	showVer  = flag.Bool("v", false, "show version")
	conffile = flag.String("c", "", "config yaml file")
	initdb   = flag.Bool("initdb", false, "drop and initialize the database")
)

var (
	BuildVersion string
	ReleaseDate  string
)

func printVersion() {
	fmt.Printf("urbantrends version %s (%s)\n", BuildVersion, ReleaseDate)
}

func main() {
	flag.Parse()

	if *h {
		flag.Usage()
		os.Exit(0)
	}
	if *showVer {
		printVersion()
		os.Exit(0)
	}

	cfg := config.LoadConfig(*conffile)

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.L().Info("database initialized")
		os.Exit(0)
	}

	// Wire repositories and services
	db := application.DB()
	productRepo := shop.NewGormProductRepository(db)
	wishlistRepo := shop.NewGormWishlistRepository(db)
	orderRepo := shop.NewGormOrderRepository(db)
	userRepo := shop.NewGormUserRepository(db)

	authSvc := shop.NewAuthService(userRepo)
	catalogSvc := shop.NewCatalogService(productRepo)
	cartSvc := shop.NewCartService(productRepo)
	wishlistSvc := shop.NewWishlistService(wishlistRepo, productRepo)
	profileSvc := shop.NewProfileService(userRepo, orderRepo, wishlistRepo)
	adminSvc := shop.NewAdminService(productRepo, orderRepo, userRepo,
		application.Bus(), application.LowStockThreshold)

	webserver.Init(cfg, application.SessionStore())

	webapi.Init(webapi.Deps{
		Config:   cfg,
		Sessions: application.SessionStore(),
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Wishlist: wishlistSvc,
		Profile:  profileSvc,
		Auth:     authSvc,
	})

	adminapi.Init(adminapi.Deps{
		Config:   cfg,
		DB:       db,
		Admin:    adminSvc,
		Auth:     authSvc,
		Runner:   application,
		Settings: application.ConfigMgr(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application.StartBackgroundJobs(ctx)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return webserver.Listen()
	})
	g.Go(func() error {
		<-ctx.Done()
		return webserver.Shutdown()
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("server exited", zap.Error(err))
	}
}
