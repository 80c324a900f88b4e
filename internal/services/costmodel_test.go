package services

import (
	"math"
	"testing"

	"fuel-route-service/internal/domain"
)

const eps = 1e-9

func TestGallonsNeeded(t *testing.T) {
	got, err := GallonsNeeded(650, 6.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-100) > eps {
		t.Fatalf("gallons = %v, want 100", got)
	}
}

func TestGallonsNeededRejectsNonPositiveMpg(t *testing.T) {
	// mpg=0 must be a validation failure, never a silent Inf/NaN.
	if _, err := GallonsNeeded(650, 0); err == nil {
		t.Fatal("expected error for mpg=0")
	}
	if _, err := GallonsNeeded(650, -7); err == nil {
		t.Fatal("expected error for negative mpg")
	}
	if _, err := GallonsNeeded(-1, 6.5); err == nil {
		t.Fatal("expected error for negative distance")
	}
}

func TestCO2Kg(t *testing.T) {
	if got := CO2Kg(100); math.Abs(got-1021) > eps {
		t.Fatalf("co2 = %v, want 1021", got)
	}
}

func TestCostPerMile(t *testing.T) {
	got, err := CostPerMile(400, 925)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-400.0/925.0) > eps {
		t.Fatalf("cost per mile = %v", got)
	}

	if _, err := CostPerMile(400, 0); err == nil {
		t.Fatal("expected error for zero distance")
	}
}

func TestNetSavingsCheaperStop(t *testing.T) {
	// Reference 4.00, stop 3.80, 200 gal tank at 50%, 6 min detour:
	// 0.20 * 100 - 3.00 = 17.00.
	stop := domain.FuelStopCandidate{PricePerGal: 3.80, DetourMinutes: 6}
	tank := domain.TankState{TankSizeGal: 200, CurrentFuelPct: 50}

	got := NetSavings(stop, 4.00, tank, DefaultTimeValuePerHour)
	if math.Abs(got-17.0) > eps {
		t.Fatalf("net savings = %v, want 17.0", got)
	}
}

func TestNetSavingsMoreExpensiveStop(t *testing.T) {
	// A stop priced above the reference clamps savings to zero; the
	// score is exactly the negated detour penalty.
	stop := domain.FuelStopCandidate{PricePerGal: 4.20, DetourMinutes: 6}
	tank := domain.TankState{TankSizeGal: 200, CurrentFuelPct: 50}

	got := NetSavings(stop, 4.00, tank, DefaultTimeValuePerHour)
	want := -(6.0 / 60) * DefaultTimeValuePerHour
	if math.Abs(got-want) > eps {
		t.Fatalf("net savings = %v, want %v", got, want)
	}
	if got > 0 {
		t.Fatal("expected non-positive savings for a pricier stop")
	}
}

func TestNetSavingsMonotonicInDetour(t *testing.T) {
	tank := domain.TankState{TankSizeGal: 150, CurrentFuelPct: 25}

	prev := math.Inf(1)
	for detour := 0.0; detour <= 60; detour += 5 {
		stop := domain.FuelStopCandidate{PricePerGal: 3.90, DetourMinutes: detour}
		got := NetSavings(stop, 4.10, tank, DefaultTimeValuePerHour)
		if got > prev {
			t.Fatalf("net savings increased with detour at %v minutes", detour)
		}
		prev = got
	}
}

func TestNetSavingsMonotonicInPriceGap(t *testing.T) {
	tank := domain.TankState{TankSizeGal: 150, CurrentFuelPct: 25}

	prev := math.Inf(-1)
	for price := 4.50; price >= 3.00; price -= 0.10 {
		stop := domain.FuelStopCandidate{PricePerGal: price, DetourMinutes: 8}
		got := NetSavings(stop, 4.10, tank, DefaultTimeValuePerHour)
		if got < prev {
			t.Fatalf("net savings decreased as stop price dropped to %v", price)
		}
		prev = got
	}
}

func TestNetSavingsFullTankBuysNothing(t *testing.T) {
	stop := domain.FuelStopCandidate{PricePerGal: 3.50, DetourMinutes: 0}
	tank := domain.TankState{TankSizeGal: 200, CurrentFuelPct: 100}

	if got := NetSavings(stop, 4.00, tank, DefaultTimeValuePerHour); math.Abs(got) > eps {
		t.Fatalf("net savings = %v, want 0 for a full tank", got)
	}
}

func TestRankStopsOrdersByNetSavingsDescending(t *testing.T) {
	tank := domain.TankState{TankSizeGal: 200, CurrentFuelPct: 50}
	stops := []domain.FuelStopCandidate{
		{Name: "pricey", PricePerGal: 4.20, DetourMinutes: 4},
		{Name: "best", PricePerGal: 3.70, DetourMinutes: 2},
		{Name: "middle", PricePerGal: 3.90, DetourMinutes: 6},
	}

	ranked := RankStops(stops, 4.00, tank, DefaultTimeValuePerHour)

	if len(ranked) != 3 {
		t.Fatalf("ranked %d stops, want 3", len(ranked))
	}
	if ranked[0].Name != "best" || ranked[1].Name != "middle" || ranked[2].Name != "pricey" {
		t.Fatalf("order = %s, %s, %s", ranked[0].Name, ranked[1].Name, ranked[2].Name)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].NetSavings > ranked[i-1].NetSavings {
			t.Fatal("ranking is not descending")
		}
	}
}

func TestRankStopsStableOnTies(t *testing.T) {
	// Identical candidates tie exactly; input order must be preserved.
	tank := domain.TankState{TankSizeGal: 200, CurrentFuelPct: 50}
	stops := []domain.FuelStopCandidate{
		{Name: "first", PricePerGal: 3.90, DetourMinutes: 5},
		{Name: "second", PricePerGal: 3.90, DetourMinutes: 5},
		{Name: "third", PricePerGal: 3.90, DetourMinutes: 5},
	}

	ranked := RankStops(stops, 4.00, tank, DefaultTimeValuePerHour)

	if ranked[0].Name != "first" || ranked[1].Name != "second" || ranked[2].Name != "third" {
		t.Fatalf("tie order not preserved: %s, %s, %s", ranked[0].Name, ranked[1].Name, ranked[2].Name)
	}
}
