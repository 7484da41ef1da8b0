// Package serialize converts an interval tree to and from its JSON artifact
// form: a JSON array, ordered by ascending start, of
// {start, end, fn: {ps, qs}, err} objects with all numbers encoded as
// decimal strings.
package serialize

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/gud-cdf/remez/bignum"
	"github.com/gud-cdf/remez/interval"
)

// rationalJSON mirrors the "fn" object of the artifact contract.
type rationalJSON struct {
	Ps []string `json:"ps"`
	Qs []string `json:"qs"`
}

// fitJSON mirrors one element of the artifact array.
type fitJSON struct {
	Start string       `json:"start"`
	End   string       `json:"end"`
	Fn    rationalJSON `json:"fn"`
	Err   string       `json:"err"`
}

// Encode renders fits as the JSON artifact, decimal strings exact to the
// shortest representation that round-trips to the original bits — the
// precision of every coefficient is carried by the *big.Float values
// themselves, not by this function.
func Encode(fits []interval.Fit) ([]byte, error) {
	out := make([]fitJSON, len(fits))
	for i, f := range fits {
		out[i] = fitJSON{
			Start: floatText(&f.Start),
			End:   floatText(&f.End),
			Fn: rationalJSON{
				Ps: floatTexts(f.Fn.Ps),
				Qs: floatTexts(f.Fn.Qs),
			},
			Err: floatText(&f.Err),
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// Decode parses the JSON artifact back into Fits, reconstructing every
// coefficient at the given bit precision.
func Decode(data []byte, prec uint) ([]interval.Fit, error) {
	var raw []fitJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("serialize.Decode: %w", err)
	}

	fits := make([]interval.Fit, len(raw))
	for i, r := range raw {
		start, err := parseFloat(r.Start, prec)
		if err != nil {
			return nil, fmt.Errorf("serialize.Decode: element %d start: %w", i, err)
		}
		end, err := parseFloat(r.End, prec)
		if err != nil {
			return nil, fmt.Errorf("serialize.Decode: element %d end: %w", i, err)
		}
		errVal, err := parseFloat(r.Err, prec)
		if err != nil {
			return nil, fmt.Errorf("serialize.Decode: element %d err: %w", i, err)
		}
		ps, err := parseFloats(r.Fn.Ps, prec)
		if err != nil {
			return nil, fmt.Errorf("serialize.Decode: element %d fn.ps: %w", i, err)
		}
		qs, err := parseFloats(r.Fn.Qs, prec)
		if err != nil {
			return nil, fmt.Errorf("serialize.Decode: element %d fn.qs: %w", i, err)
		}

		fits[i] = interval.Fit{
			Start: *start,
			End:   *end,
			Fn:    bignum.Rational{Ps: ps, Qs: qs},
			Err:   *errVal,
		}
	}

	return fits, nil
}

func floatText(x *big.Float) string {
	return x.Text('g', -1)
}

func floatTexts(xs []big.Float) []string {
	out := make([]string, len(xs))
	for i := range xs {
		out[i] = floatText(&xs[i])
	}
	return out
}

func parseFloat(s string, prec uint) (*big.Float, error) {
	f, _, err := big.ParseFloat(s, 10, prec, big.ToNearestEven)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func parseFloats(ss []string, prec uint) ([]big.Float, error) {
	out := make([]big.Float, len(ss))
	for i, s := range ss {
		f, err := parseFloat(s, prec)
		if err != nil {
			return nil, err
		}
		out[i] = *f
	}
	return out, nil
}
