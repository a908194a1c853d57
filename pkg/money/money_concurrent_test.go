package money

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

// TestRounding_ConcurrentUse shares one Rounding value across goroutines.
// Rounding is an immutable value type, so every goroutine must observe the
// same results and the shared context must be left unchanged.
func TestRounding_ConcurrentUse(t *testing.T) {
	ctx := MustRounding(HalfUp, 2, 5)
	value := decimal.RequireFromString("-1931.995")
	rate := decimal.RequireFromString("0.018449")

	const goroutines = 100

	type result struct {
		money decimal.Decimal
		rate  decimal.Decimal
		pow   decimal.Decimal
	}

	results := make([]result, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()

			r := &results[idx]
			r.money = ctx.Money(value)
			r.rate = ctx.Rate(rate)
			r.pow = ctx.PowInt(decimal.RequireFromString("1.001"), 120)
		}(i)
	}

	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if !results[i].money.Equal(results[0].money) {
			t.Errorf("goroutine %d: Money = %s, want %s", i, results[i].money, results[0].money)
		}
		if !results[i].rate.Equal(results[0].rate) {
			t.Errorf("goroutine %d: Rate = %s, want %s", i, results[i].rate, results[0].rate)
		}
		if !results[i].pow.Equal(results[0].pow) {
			t.Errorf("goroutine %d: PowInt = %s, want %s", i, results[i].pow, results[0].pow)
		}
	}

	if !results[0].money.Equal(decimal.RequireFromString("-1932")) {
		t.Errorf("Money(-1931.995) = %s, want -1932", results[0].money)
	}
	if ctx.Mode() != HalfUp || ctx.MoneyPlaces() != 2 {
		t.Error("shared Rounding was modified")
	}
}
