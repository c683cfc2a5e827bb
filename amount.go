package drip

import "github.com/shopspring/decimal"

// ReconciliationThreshold is the smallest mismatch between actual funds and
// total buckets that needs reconciliation.
var ReconciliationThreshold = decimal.New(1, -2)

// DefaultDailyAllowance is the allowance of a fresh snapshot.
var DefaultDailyAllowance = decimal.RequireFromString("88.41")

// D is a convenient factory for decimal.Decimal
func D[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | string | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case string:
		return decimal.RequireFromString(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// sum adds up amount(x) for every x in xs.
func sum[T any](xs []T, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, x := range xs {
		total = total.Add(amount(x))
	}
	return total
}
