package types

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestTicker24h_FieldFloat(t *testing.T) {
	payload := []byte(`{
		"symbol": "BTCUSDT",
		"volume": "12345.67",
		"count": 987654,
		"priceChangePercent": "-1.25",
		"firstId": null,
		"weightedAvgPrice": "not-a-number"
	}`)

	var ticker Ticker24h
	if err := json.Unmarshal(payload, &ticker); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if ticker.Symbol != "BTCUSDT" {
		t.Errorf("expected symbol BTCUSDT, got %q", ticker.Symbol)
	}

	tests := []struct {
		field string
		want  float64
		ok    bool
	}{
		{"volume", 12345.67, true},
		{"count", 987654, true},
		{"priceChangePercent", -1.25, true},
		{"weightedAvgPrice", 0, false},
		{"firstId", 0, false},
		{"missing", 0, false},
	}

	for _, tt := range tests {
		got, ok := ticker.FieldFloat(tt.field)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FieldFloat(%q) = (%v, %v), want (%v, %v)", tt.field, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDepthLevel_PriceQty(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantPrice float64
		wantQty   float64
		wantOK    bool
	}{
		{"plain_level", `["0.00379200","48.000000"]`, 0.00379200, 48.0, true},
		{"padded_level", `["0.1","2.5",[]]`, 0.1, 2.5, true},
		{"bare_numbers", `[0.5, 3]`, 0.5, 3, true},
		{"too_short", `["0.5"]`, 0, 0, false},
		{"bad_price", `["abc","1.0"]`, 0, 0, false},
		{"bad_qty", `["1.0",{}]`, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var level DepthLevel
			if err := json.Unmarshal([]byte(tt.raw), &level); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			price, qty, ok := level.PriceQty()
			if ok != tt.wantOK || price != tt.wantPrice || qty != tt.wantQty {
				t.Errorf("PriceQty() = (%v, %v, %v), want (%v, %v, %v)",
					price, qty, ok, tt.wantPrice, tt.wantQty, tt.wantOK)
			}
		})
	}
}

func TestDepth_Unmarshal_IgnoresUnknownFields(t *testing.T) {
	payload := []byte(`{
		"lastUpdateId": 1027024,
		"E": 1589436922972,
		"bids": [["4.00000000","431.00000000"]],
		"asks": [["4.00000200","12.00000000"]]
	}`)

	var depth Depth
	if err := json.Unmarshal(payload, &depth); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if depth.LastUpdateID != 1027024 {
		t.Errorf("expected lastUpdateId 1027024, got %d", depth.LastUpdateID)
	}
	if len(depth.Bids) != 1 || len(depth.Asks) != 1 {
		t.Fatalf("expected one level per side, got %d bids %d asks", len(depth.Bids), len(depth.Asks))
	}
}
