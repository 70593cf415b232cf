package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	botpkg "github.com/bassel-dev/crypto-dashboard/internal/bot"
	"github.com/bassel-dev/crypto-dashboard/internal/bot/adapter"
	"github.com/bassel-dev/crypto-dashboard/internal/config"
	"github.com/bassel-dev/crypto-dashboard/internal/infra/coingecko"
	"github.com/bassel-dev/crypto-dashboard/internal/pkg/cache"
	"github.com/bassel-dev/crypto-dashboard/internal/scheduler"
	marketsvc "github.com/bassel-dev/crypto-dashboard/internal/service/market"
	viewsvc "github.com/bassel-dev/crypto-dashboard/internal/service/view"
	"github.com/bassel-dev/crypto-dashboard/internal/transport/httptransport"
	"github.com/labstack/echo/v4"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	e    *echo.Echo
	serv *http.Server

	store *cache.Cache

	market marketsvc.Service
	views  viewsvc.Service

	warmer *scheduler.Scheduler

	bot *botpkg.Bot
}

func NewApp(cfg config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	app.store = cache.New()

	e := echo.New()
	e.HideBanner = true
	app.e = e

	provider := coingecko.NewClient(coingecko.Config{
		BaseURL:   cfg.CoinGecko.BaseURL,
		Currency:  cfg.CoinGecko.Currency,
		Timeout:   cfg.CoinGecko.Timeout,
		UserAgent: cfg.CoinGecko.UserAgent,
	})

	app.market = marketsvc.NewService(provider, app.store, marketsvc.Config{
		PageSize:   cfg.CoinGecko.PageSize,
		Page:       cfg.CoinGecko.Page,
		MarketsTTL: cfg.Cache.MarketsTTL,
		HistoryTTL: cfg.Cache.HistoryTTL,
		GlobalTTL:  cfg.Cache.GlobalTTL,
	}, log)
	app.views = viewsvc.NewService(app.market, cfg.CoinGecko.Currency, log)

	dh := httptransport.NewDashboardHandler(log, app.views, cfg.Server.RequestTimeout)
	dh.RegisterRoutes(e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	if cfg.Warmer.Enabled {
		app.warmer = scheduler.NewScheduler(app.market, cfg.Warmer.Interval, log)
	}

	if cfg.Telegram.Enabled {
		// Если бот включён, отсутствие токена — ошибка конфигурации
		token := strings.TrimSpace(cfg.Telegram.Token)
		if token == "" {
			log.Error("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
			return nil, errors.New("telegram token is empty")
		}

		botApp, err := botpkg.New(
			botpkg.Config{Token: token, LongPollTimeout: 10 * time.Second},
			adapter.NewMarketReader(app.views),
			log,
		)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			return nil, err
		}
		app.bot = botApp
	}
	log.Info("app initialized",
		slog.Bool("telegram_enabled", cfg.Telegram.Enabled),
		slog.Bool("warmer_enabled", cfg.Warmer.Enabled),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.warmer != nil {
		a.log.Info("starting cache warmer")
		go a.warmer.Start(ctx)
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		go a.bot.Start(ctx)
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
		}
	}()
	<-ctx.Done()
	return a.Shutdown(context.Background())
}

func (a *App) Shutdown(ctx context.Context) error {
	shCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	a.log.Info("application stopped")
	return nil
}
