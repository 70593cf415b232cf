package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bassel-dev/crypto-dashboard/internal/domain"
)

// Клиент публичного API CoinGecko. Ошибки транспорта, неуспешные
// статусы и битые тела отдаются наверх как есть — в сигналы-заглушки
// их переводит сервисный слой.

type Config struct {
	BaseURL   string
	Currency  string
	Timeout   time.Duration
	UserAgent string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

// marketChartResponse — сырой ответ /coins/{id}/market_chart:
// три массива пар [epoch_ms, value].
type marketChartResponse struct {
	Prices       [][2]float64 `json:"prices"`
	MarketCaps   [][2]float64 `json:"market_caps"`
	TotalVolumes [][2]float64 `json:"total_volumes"`
}

// globalResponse — ответ /global завёрнут в объект "data".
type globalResponse struct {
	Data domain.GlobalStats `json:"data"`
}

// NewClient - Создаёт нового клиента для работы с API CoinGecko.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListMarkets — страница рынка, отсортированная по капитализации.
func (c *Client) ListMarkets(ctx context.Context, perPage, page int) ([]domain.CoinSummary, error) {
	u, err := c.endpoint("coins", "markets")
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("vs_currency", strings.ToLower(c.cfg.Currency))
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	var coins []domain.CoinSummary
	if err := c.getJSON(ctx, u, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// MarketChart — история цены, капитализации и объёма монеты за окно в днях.
func (c *Client) MarketChart(ctx context.Context, coinID string, days int) (domain.HistorySeries, error) {
	u, err := c.endpoint("coins", coinID, "market_chart")
	if err != nil {
		return domain.HistorySeries{}, err
	}

	q := u.Query()
	q.Set("vs_currency", strings.ToLower(c.cfg.Currency))
	q.Set("days", strconv.Itoa(days))
	u.RawQuery = q.Encode()

	var raw marketChartResponse
	if err := c.getJSON(ctx, u, &raw); err != nil {
		return domain.HistorySeries{}, err
	}

	return domain.HistorySeries{
		Prices:     toPoints(raw.Prices),
		MarketCaps: toPoints(raw.MarketCaps),
		Volumes:    toPoints(raw.TotalVolumes),
	}, nil
}

// Global — общий снимок рынка: капитализация, объём, доли активов.
func (c *Client) Global(ctx context.Context) (*domain.GlobalStats, error) {
	u, err := c.endpoint("global")
	if err != nil {
		return nil, err
	}

	var raw globalResponse
	if err := c.getJSON(ctx, u, &raw); err != nil {
		return nil, err
	}
	return &raw.Data, nil
}

func (c *Client) endpoint(parts ...string) (*url.URL, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path, _ = url.JoinPath(u.Path, parts...)
	return u, nil
}

func (c *Client) getJSON(ctx context.Context, u *url.URL, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	ua := c.cfg.UserAgent
	if ua == "" {
		ua = "crypto-dashboard/1.0"
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// toPoints — пары [epoch_ms, value] в точки ряда со временем в UTC.
func toPoints(pairs [][2]float64) []domain.PricePoint {
	points := make([]domain.PricePoint, 0, len(pairs))
	for _, p := range pairs {
		points = append(points, domain.PricePoint{
			Timestamp: time.UnixMilli(int64(p[0])).UTC(),
			Value:     p[1],
		})
	}
	return points
}
