package httptransport

import (
	"context"
	"log"
	"net/http"
	"time"

	"log/slog"

	"github.com/bassel-dev/crypto-dashboard/internal/ports/errcode"
	"github.com/bassel-dev/crypto-dashboard/internal/service/view"
	"github.com/labstack/echo/v4"
)

// ViewService — абстракция для сборки представлений дашборда.
type ViewService interface {
	Options(ctx context.Context) (view.Options, error)
	Overview(ctx context.Context) (view.Overview, error)
	CoinDetail(ctx context.Context, name, windowLabel string) (view.CoinDetail, error)
}

// DashboardHandler — HTTP‑handler дашборда. Презентационный слой
// в браузере забирает отсюда готовые таблицы, метрики и ряды.
type DashboardHandler struct {
	logger  *slog.Logger
	svc     ViewService
	timeout time.Duration
}

func NewDashboardHandler(logger *slog.Logger, svc ViewService, timeout time.Duration) *DashboardHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	// Запас поверх таймаута upstream-клиента (10s)
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &DashboardHandler{
		logger:  logger,
		svc:     svc,
		timeout: timeout,
	}
}

func (h *DashboardHandler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	// Регистрируем маршруты
	r.GET("/dashboard", h.GetDashboard)
	r.GET("/dashboard/options", h.GetOptions)
	r.GET("/dashboard/overview", h.GetOverview)
	r.GET("/dashboard/coins/:name", h.GetCoinDetail)
}

// GetDashboard — точка входа по текущему выбору пользователя:
// сторожевой пункт списка даёт обзор, любое другое значение — карточку монеты.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	selection := c.QueryParam("selection")
	if selection == "" || view.IsGlobalOverview(selection) {
		return h.GetOverview(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	detail, err := h.svc.CoinDetail(ctx, selection, c.QueryParam("window"))
	if err != nil {
		return h.translateError(c, err, selection)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *DashboardHandler) GetOptions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	opts, err := h.svc.Options(ctx)
	if err != nil {
		return h.translateError(c, err, "")
	}
	return c.JSON(http.StatusOK, opts)
}

func (h *DashboardHandler) GetOverview(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	overview, err := h.svc.Overview(ctx)
	if err != nil {
		return h.translateError(c, err, "")
	}
	return c.JSON(http.StatusOK, overview)
}

func (h *DashboardHandler) GetCoinDetail(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "coin_name_required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	detail, err := h.svc.CoinDetail(ctx, name, c.QueryParam("window"))
	if err != nil {
		return h.translateError(c, err, name)
	}
	return c.JSON(http.StatusOK, detail)
}

// translateError — сервисные ошибки в HTTP-статусы и JSON.
func (h *DashboardHandler) translateError(c echo.Context, err error, name string) error {
	code := FromServiceError(err)
	switch code {
	case errcode.NotFoundCoin:
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "coin_not_found",
			"name":  name,
		})
	case errcode.MarketsUnavailable, errcode.GlobalUnavailable:
		// Upstream недоступен — дашборд показывает "could not load data"
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error": "could_not_load_data",
		})
	case errcode.BadRequest:
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "bad_request",
		})
	default:
		h.logger.Error("dashboard request failed",
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "internal_server_error",
		})
	}
}
