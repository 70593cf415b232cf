package domain

import "time"

// CoinSummary — одна строка рынка из /coins/markets.
// Неизменяема в рамках одного обновления, идентифицируется по ID.
type CoinSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"current_price"`
	Change24hPct float64 `json:"price_change_percentage_24h"`
	MarketCap    float64 `json:"market_cap"`
	High24h      float64 `json:"high_24h"`
	ImageURL     string  `json:"image"`
}

// GlobalStats — снимок рынка целиком. Карты ключуются валютой ("eur")
// либо символом актива ("btc"); отсутствие ключа означает отсутствие данных.
type GlobalStats struct {
	TotalMarketCap      map[string]float64 `json:"total_market_cap"`
	TotalVolume         map[string]float64 `json:"total_volume"`
	MarketCapPercentage map[string]float64 `json:"market_cap_percentage"`
}

// PricePoint — точка временного ряда (время в UTC).
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// HistorySeries — три параллельных ряда истории монеты,
// отсортированы по времени по возрастанию.
type HistorySeries struct {
	Prices     []PricePoint `json:"prices"`
	MarketCaps []PricePoint `json:"market_caps"`
	Volumes    []PricePoint `json:"volumes"`
}
