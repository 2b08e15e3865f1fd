package api

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"startupsim/domain/market"
	"startupsim/internal/errors"
	"startupsim/models"
)

// ParseBusinessModel extracts the fields a simulation reads from a free-form
// business model document. Unknown fields are ignored and a missing or
// non-array "hypotheses" field yields no hypotheses.
func ParseBusinessModel(body []byte) (models.BusinessModel, error) {
	var bm models.BusinessModel

	if !gjson.ValidBytes(body) {
		return bm, errors.InvalidInput("business model is not valid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return bm, errors.InvalidInput("business model must be a JSON object")
	}

	bm.ValueProposition = root.Get("value_proposition").String()
	bm.CustomerSegments = stringArray(root.Get("customer_segments"))
	bm.Hypotheses = stringArray(root.Get("hypotheses"))

	if md := root.Get("market_data"); md.IsObject() {
		var analysis market.Analysis
		if err := json.Unmarshal([]byte(md.Raw), &analysis); err != nil {
			return bm, errors.WithCode(errors.CodeInvalidInput, errors.Wrap(err, "market_data has the wrong shape"))
		}
		bm.MarketData = &analysis
	}

	if seed := root.Get("seed"); seed.Type == gjson.Number {
		bm.Seed = seed.Int()
	}

	return bm, nil
}

// stringArray keeps the string elements of an array result, in order
func stringArray(r gjson.Result) []string {
	out := []string{}
	if !r.IsArray() {
		return out
	}
	r.ForEach(func(_, value gjson.Result) bool {
		if value.Type == gjson.String {
			out = append(out, value.String())
		}
		return true
	})
	return out
}
