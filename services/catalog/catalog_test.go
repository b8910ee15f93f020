package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-pos/models/menu"
	"restaurant-pos/types/apperror"
	menuTypes "restaurant-pos/types/menu"

	"gorm.io/datatypes"
)

func TestRouteForFallsBackToItemKitchen(t *testing.T) {
	item := &menu.Item{
		Kitchen: "Grill",
		Addons: datatypes.NewJSONType([]menu.Option{
			{Name: "Cheese"},
			{Name: "Fries", Kitchen: "Fryer"},
		}),
		Combos: datatypes.NewJSONType([]menu.Option{{Name: "Cola", Kitchen: "Bar"}}),
	}

	route := RouteFor(item)
	if route.Kitchen != "Grill" {
		t.Fatalf("unexpected item kitchen %s", route.Kitchen)
	}
	if route.Addons["Cheese"] != "Grill" || route.Addons["Fries"] != "Fryer" {
		t.Fatalf("unexpected addon routes %v", route.Addons)
	}
	if route.Combos["Cola"] != "Bar" {
		t.Fatalf("unexpected combo routes %v", route.Combos)
	}
}

func TestRouteForEmptyOptions(t *testing.T) {
	route := RouteFor(&menu.Item{Kitchen: "Bar"})
	if len(route.Addons) != 0 || len(route.Combos) != 0 {
		t.Fatalf("expected no option routes, got %+v", route)
	}
}

func TestApplyItemRequestTrimsAndDefaultsOptions(t *testing.T) {
	item := &menu.Item{}
	applyItemRequest(item, &menuTypes.ItemRequest{
		ItemName:  " Paneer Tikka ",
		ItemCode:  "PT-01 ",
		ItemGroup: "Starters",
		Kitchen:   " Tandoor",
	})
	if item.ItemName != "Paneer Tikka" || item.ItemCode != "PT-01" || item.Kitchen != "Tandoor" {
		t.Fatalf("fields not trimmed: %+v", item)
	}
	if item.Addons.Data() == nil || item.Combos.Data() == nil {
		t.Fatal("options should default to empty lists")
	}
}

func TestSetOfferRejectsBadWindow(t *testing.T) {
	s := &Service{now: time.Now}
	price := 9.5
	start := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	cases := map[string]*menuTypes.OfferRequest{
		"missing price":    {OfferStartTime: &start, OfferEndTime: &end},
		"end before start": {OfferPrice: &price, OfferStartTime: &start, OfferEndTime: &end},
		"empty window":     {OfferPrice: &price, OfferStartTime: &start, OfferEndTime: &start},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.SetOffer(context.Background(), 1, req)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
