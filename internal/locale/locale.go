// Package locale renders price quotes in the supported market languages.
// Templates are compiled into the binary; this is interpolation, not translation.
package locale

import (
	"fmt"
	"sort"
)

// DefaultLanguage is used for any code without a template set.
const DefaultLanguage = "en"

// Template holds fmt patterns: PriceRange takes low and high, NegotiationTip
// takes the suggested opening offer.
type Template struct {
	PriceRange     string
	NegotiationTip string
}

// Phrases is a rendered quote.
type Phrases struct {
	Language       string
	PriceRange     string
	NegotiationTip string
}

var templates = map[string]Template{
	"en": {
		PriceRange:     "₹%d–₹%d per kg",
		NegotiationTip: "Start negotiation near ₹%d for a fair deal.",
	},
	"hi": {
		PriceRange:     "₹%d–₹%d प्रति किलो",
		NegotiationTip: "₹%d से बातचीत शुरू करें।",
	},
	"pa": {
		PriceRange:     "₹%d–₹%d ਪ੍ਰਤੀ ਕਿੱਲੋ",
		NegotiationTip: "₹%d ਤੋਂ ਗੱਲਬਾਤ ਸ਼ੁਰੂ ਕਰੋ।",
	},
	"ta": {
		PriceRange:     "₹%d–₹%d ஒரு கிலோ",
		NegotiationTip: "₹%d முதல் பேச தொடங்குங்கள்.",
	},
	"bn": {
		PriceRange:     "₹%d–₹%d প্রতি কেজি",
		NegotiationTip: "₹%d থেকে দর কষাকষি শুরু করুন।",
	},
}

// Resolve returns lang when it has a template set and DefaultLanguage otherwise.
// Matching is exact.
func Resolve(lang string) string {
	if _, ok := templates[lang]; ok {
		return lang
	}
	return DefaultLanguage
}

// Supported lists the language codes in sorted order.
func Supported() []string {
	codes := make([]string, 0, len(templates))
	for code := range templates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// OpeningOffer is the suggested first bid for a band starting at low.
func OpeningOffer(low int) int { return low + 1 }

// Format renders the band and the negotiation tip in lang.
func Format(low, high int, lang string) Phrases {
	code := Resolve(lang)
	tpl := templates[code]
	return Phrases{
		Language:       code,
		PriceRange:     fmt.Sprintf(tpl.PriceRange, low, high),
		NegotiationTip: fmt.Sprintf(tpl.NegotiationTip, OpeningOffer(low)),
	}
}
