package types

import (
	"strconv"

	json "github.com/goccy/go-json"
)

// SymbolInfo describes one tradeable pair from the exchange metadata.
// Only the fields this system reads are declared; everything else in the
// upstream payload is ignored for forward compatibility.
type SymbolInfo struct {
	Symbol     string `json:"symbol"`
	Status     string `json:"status"`
	BaseAsset  string `json:"baseAsset"`
	QuoteAsset string `json:"quoteAsset"`
}

// ExchangeInfo is the exchange metadata response.
type ExchangeInfo struct {
	Symbols []SymbolInfo `json:"symbols"`
}

// Ticker24h is one row of the 24-hour ticker statistics. The upstream row
// carries a few dozen statistics and which one matters is chosen at runtime
// by name, so the row keeps its raw field set alongside the symbol.
type Ticker24h struct {
	Symbol string
	fields map[string]json.RawMessage
}

// UnmarshalJSON decodes a ticker row keeping every field available for
// FieldFloat lookups.
func (t *Ticker24h) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	err := json.Unmarshal(data, &fields)
	if err != nil {
		return err
	}

	t.fields = fields

	if raw, ok := fields["symbol"]; ok {
		// Symbol is always a plain string; a decode failure leaves it empty.
		_ = json.Unmarshal(raw, &t.Symbol)
	}

	return nil
}

// FieldFloat returns the named statistic as a float64. Binance encodes most
// numbers as quoted strings, so both quoted and bare numbers are accepted.
// Returns false for a missing or non-numeric field.
func (t *Ticker24h) FieldFloat(name string) (float64, bool) {
	raw, ok := t.fields[name]
	if !ok {
		return 0, false
	}

	return parseNumber(raw)
}

// PriceTicker is the latest traded price for a symbol.
type PriceTicker struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// BookTicker is the best bid/ask for a symbol.
type BookTicker struct {
	Symbol   string `json:"symbol"`
	BidPrice string `json:"bidPrice"`
	BidQty   string `json:"bidQty"`
	AskPrice string `json:"askPrice"`
	AskQty   string `json:"askQty"`
}

// DepthLevel is one order-book level. The upstream encodes a level as a JSON
// array whose first two elements are price and quantity; older API versions
// appended metadata elements, so the level decodes as a raw array and only
// the leading elements are interpreted.
type DepthLevel []json.RawMessage

// PriceQty returns the level's price and quantity. ok is false when the
// level is malformed (fewer than two elements or non-numeric values); such
// levels must be excluded from aggregation, not treated as zero.
func (l DepthLevel) PriceQty() (price, qty float64, ok bool) {
	if len(l) < 2 {
		return 0, 0, false
	}

	price, ok = parseNumber(l[0])
	if !ok {
		return 0, 0, false
	}

	qty, ok = parseNumber(l[1])
	if !ok {
		return 0, 0, false
	}

	return price, qty, true
}

// Depth is an order-book snapshot truncated to the requested level count.
type Depth struct {
	LastUpdateID int64        `json:"lastUpdateId"`
	Bids         []DepthLevel `json:"bids"`
	Asks         []DepthLevel `json:"asks"`
}

// NotionalValue is the summed price*quantity over the top levels of each
// side of one symbol's order book.
type NotionalValue struct {
	TotalAsks float64 `json:"total_notional_asks"`
	TotalBids float64 `json:"total_notional_bids"`
}

// Spread is the distance between the last traded price and the best quote
// on each side of the book. Either side may be negative.
type Spread struct {
	Ask float64 `json:"price_spread_askPrice"`
	Bid float64 `json:"price_spread_bidPrice"`
}

// SpreadSnapshot maps each sampled symbol to its spread at one point in
// time. A snapshot is immutable once returned by the sampler.
type SpreadSnapshot map[string]Spread

// Delta is the absolute spread movement per side between two snapshots.
// Values are always >= 0.
type Delta struct {
	Ask float64 `json:"absolute_delta_askPrice"`
	Bid float64 `json:"absolute_delta_bidPrice"`
}

// DeltaRecord maps each symbol to its spread movement between two snapshots
// taken one sampling interval apart.
type DeltaRecord map[string]Delta

// parseNumber accepts both encodings Binance uses for numbers: a quoted
// decimal string and a bare JSON number.
func parseNumber(raw json.RawMessage) (float64, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}

	return 0, false
}
