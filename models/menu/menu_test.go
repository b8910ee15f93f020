package menu

import (
	"testing"
	"time"
)

func TestOfferWindow(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	hour := time.Hour
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}
	price := 9.5

	cases := []struct {
		name    string
		item    Item
		expired bool
		active  bool
	}{
		{"no offer", Item{}, false, false},
		{"running", Item{OfferPrice: &price, OfferStartTime: at(-hour), OfferEndTime: at(hour)}, false, true},
		{"not started", Item{OfferPrice: &price, OfferStartTime: at(hour), OfferEndTime: at(2 * hour)}, false, false},
		{"ended", Item{OfferPrice: &price, OfferStartTime: at(-2 * hour), OfferEndTime: at(-hour)}, true, false},
		{"start after end", Item{OfferPrice: &price, OfferStartTime: at(3 * hour), OfferEndTime: at(2 * hour)}, true, false},
		{"end only", Item{OfferPrice: &price, OfferEndTime: at(hour)}, false, true},
		{"start only", Item{OfferPrice: &price, OfferStartTime: at(-hour)}, false, false},
	}
	for _, tc := range cases {
		if got := tc.item.OfferExpired(now); got != tc.expired {
			t.Errorf("%s: OfferExpired = %v, want %v", tc.name, got, tc.expired)
		}
		if got := tc.item.OfferActive(now); got != tc.active {
			t.Errorf("%s: OfferActive = %v, want %v", tc.name, got, tc.active)
		}
	}
}
