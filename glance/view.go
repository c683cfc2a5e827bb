package glance

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/drip"
	"github.com/etnz/drip/date"
	"github.com/shopspring/decimal"
)

// View is what a glance shows for one day.
type View struct {
	Available          bool            `json:"available"`
	On                 date.Date       `json:"on"`
	RemainingAllowance decimal.Decimal `json:"remainingAllowance"`
	MainSavings        decimal.Decimal `json:"mainSavings"`
}

// NoData is the view shown when nothing could be read.
func NoData(on date.Date) View { return View{On: on} }

// Decode extracts the view of day on from a published snapshot. Any failure
// gives NoData.
func Decode(data []byte, on date.Date) View {
	v, err := decode(data, on)
	if err != nil {
		return NoData(on)
	}
	return v
}

func decode(data []byte, on date.Date) (View, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return View{}, fmt.Errorf("invalid snapshot: %w", err)
	}
	if _, ok := doc.(map[string]any); !ok {
		return View{}, fmt.Errorf("invalid snapshot: not an object")
	}

	mainSavings, err := number(doc, "$.mainSavings")
	if err != nil {
		return View{}, err
	}
	allowance := drip.DefaultDailyAllowance
	if v, err := jsonpath.Get("$.dailyAllowance", doc); err == nil && v != nil {
		if allowance, err = toDecimal(v); err != nil {
			return View{}, fmt.Errorf("error parsing %q: %w", "$.dailyAllowance", err)
		}
	}

	path := fmt.Sprintf(`$.dailyLogs[?(@.date == %q)].items[*]`, on.String())
	items, err := jsonpath.Get(path, doc)
	if err != nil {
		// no matching day is not an error for the view
		items = nil
	}
	spent := decimal.Zero
	for _, it := range flatten(items) {
		item, ok := it.(map[string]any)
		if !ok {
			return View{}, fmt.Errorf("error parsing %q: item is not an object", path)
		}
		if source, ok := item["source"]; ok && source != drip.SourceBank.String() {
			continue
		}
		amount, err := toDecimal(item["amount"])
		if err != nil {
			return View{}, fmt.Errorf("error parsing %q: %w", path, err)
		}
		spent = spent.Add(amount)
	}

	return View{
		Available:          true,
		On:                 on,
		RemainingAllowance: allowance.Sub(spent),
		MainSavings:        mainSavings,
	}, nil
}

// number evaluates a path that must hold a number.
func number(doc any, path string) (decimal.Decimal, error) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %q: %w", path, err)
	}
	d, err := toDecimal(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %q: %w", path, err)
	}
	return d, nil
}

// flatten unnests the lists jsonpath returns for ambiguous paths.
func flatten(v any) []any {
	list, ok := v.([]any)
	if !ok {
		if v == nil {
			return nil
		}
		return []any{v}
	}
	var out []any
	for _, x := range list {
		out = append(out, flatten(x)...)
	}
	return out
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		return decimal.NewFromString(n)
	}
	return decimal.Zero, fmt.Errorf("not a number: %v", v)
}
