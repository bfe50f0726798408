// Package persona composes the system prompt that drives the voice agent's
// negotiation behavior. Prompt construction is pure: the same context always
// yields the same prompt.
package persona

import "strings"

// Strategy selects one of the fixed persona templates.
type Strategy string

const (
	StrategyStandard Strategy = "standard"
	StrategyRagebait Strategy = "ragebait"
)

// DefaultBuyerName stands in when the caller did not give a first name.
const DefaultBuyerName = "a potential buyer"

// ParseStrategy maps free-form input onto a known strategy. Unknown or empty
// input falls back to the cooperative persona.
func ParseStrategy(raw string) Strategy {
	switch Strategy(strings.ToLower(strings.TrimSpace(raw))) {
	case StrategyRagebait:
		return StrategyRagebait
	default:
		return StrategyStandard
	}
}

// Context carries everything a persona template interpolates. ListingReport
// and Availability are opaque strings produced upstream.
type Context struct {
	BuyerName     string
	ListingReport string
	Availability  string
	Strategy      Strategy
}

// Build renders the persona template for ctx.Strategy. The result is handed
// verbatim to the call dispatcher.
func Build(ctx Context) string {
	name := strings.TrimSpace(ctx.BuyerName)
	if name == "" {
		name = DefaultBuyerName
	}
	replacer := strings.NewReplacer(
		"{{buyerName}}", name,
		"{{listingReport}}", ctx.ListingReport,
		"{{availability}}", ctx.Availability,
	)
	switch ctx.Strategy {
	case StrategyRagebait:
		return replacer.Replace(ragebaitTemplate)
	default:
		return replacer.Replace(standardTemplate)
	}
}
