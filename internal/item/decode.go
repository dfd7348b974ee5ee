package item

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/itemforge/internal/domain"
)

// attrs reads typed attributes out of a raw record. Absent, null, zero,
// empty and false values take the supplied default, which is how content
// files leave attributes out. The first type mismatch is kept in err and
// later reads keep returning defaults.
type attrs struct {
	rec domain.Record
	err error
}

func newAttrs(rec domain.Record) *attrs {
	if rec == nil {
		rec = domain.Record{}
	}
	return &attrs{rec: rec}
}

func (a *attrs) fail(key, want string, v any) {
	if a.err == nil {
		a.err = fmt.Errorf(ErrFmtBadAttribute, domain.ErrMalformedRecord, key, want, v)
	}
}

// truthy mirrors the content format's notion of a set value.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	if f, ok := domain.Number(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// text returns an identity attribute verbatim, "" when absent.
func (a *attrs) text(key string) string {
	v := a.rec[key]
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	if f, ok := domain.Number(v); ok {
		return domain.FormatNumber(f)
	}
	a.fail(key, "a string", v)
	return ""
}

func (a *attrs) str(key, def string) string {
	if !truthy(a.rec[key]) {
		return def
	}
	return a.text(key)
}

// nullable reads an attribute that exports as null when unset.
func (a *attrs) nullable(key string) string {
	return a.str(key, "")
}

// parseNumber accepts finite numbers and numeric strings.
func (a *attrs) parseNumber(key string, v any) (float64, bool) {
	f, ok := domain.Number(v)
	if !ok {
		if s, isStr := v.(string); isStr {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			f, ok = parsed, err == nil
		}
	}
	if ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f, true
	}
	a.fail(key, "a finite number", v)
	return 0, false
}

func (a *attrs) num(key string, def float64) float64 {
	v := a.rec[key]
	if !truthy(v) {
		return def
	}
	if f, ok := a.parseNumber(key, v); ok {
		return f
	}
	return def
}

// integer reads a whole count of at least 1. Smaller values take def.
func (a *attrs) integer(key string, def int) int {
	n := int(a.num(key, float64(def)))
	if n < 1 {
		return def
	}
	return n
}

// stateNum reads persisted state where zero is meaningful (durability,
// stack counts). Only an absent or null value takes the default.
func (a *attrs) stateNum(key string, def float64) float64 {
	v := a.rec[key]
	if v == nil {
		return def
	}
	if f, ok := a.parseNumber(key, v); ok {
		return f
	}
	return def
}

func (a *attrs) flag(key string, def bool) bool {
	if !truthy(a.rec[key]) {
		return def
	}
	return true
}

func (a *attrs) stateFlag(key string, def bool) bool {
	v := a.rec[key]
	if v == nil {
		return def
	}
	return truthy(v)
}

func (a *attrs) strList(key string) []string {
	v := a.rec[key]
	if !truthy(v) {
		return []string{}
	}
	switch t := v.(type) {
	case []string:
		return append([]string{}, t...)
	case []any:
		out := make([]string, 0, len(t))
		for _, raw := range t {
			switch raw.(type) {
			case map[string]any, []any, domain.Record:
				a.fail(key, "a list of strings", raw)
				return []string{}
			}
			out = append(out, domain.Text(raw))
		}
		return out
	}
	a.fail(key, "a list", v)
	return []string{}
}

// list reads an opaque list kept verbatim for export.
func (a *attrs) list(key string) []any {
	v := a.rec[key]
	if !truthy(v) {
		return []any{}
	}
	switch t := v.(type) {
	case []any:
		return append([]any{}, t...)
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = m
		}
		return out
	}
	a.fail(key, "a list", v)
	return []any{}
}

func (a *attrs) effects(key string) []domain.Effect {
	v := a.rec[key]
	if !truthy(v) {
		return []domain.Effect{}
	}
	effects, err := domain.ParseEffects(v)
	if err != nil {
		if a.err == nil {
			a.err = fmt.Errorf(ErrFmtBadEffects, key, err)
		}
		return []domain.Effect{}
	}
	return effects
}

// timestamp accepts RFC 3339 text or epoch milliseconds.
func (a *attrs) timestamp(key string) *time.Time {
	v := a.rec[key]
	if !truthy(v) {
		return nil
	}
	if s, ok := v.(string); ok {
		ts, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			a.fail(key, "an RFC 3339 timestamp", v)
			return nil
		}
		return &ts
	}
	if f, ok := domain.Number(v); ok {
		ts := time.UnixMilli(int64(f)).UTC()
		return &ts
	}
	a.fail(key, "a timestamp", v)
	return nil
}

// baseDefaults are the per-variant fallbacks for the common attributes.
type baseDefaults struct {
	category    domain.Category
	typ         string
	weight      float64
	sellPrice   float64
	buyFactor   float64
	stackSize   int
	rarity      string
	description string
	color       string
	iconFrame   string
}

func (a *attrs) base(d baseDefaults) Base {
	b := Base{
		ID:          a.text("id"),
		Name:        a.text("name"),
		Filename:    a.text("filename"),
		Category:    strings.ToLower(a.str("category", d.category.String())),
		Type:        a.str("type", d.typ),
		Weight:      a.num("weight", d.weight),
		SellPrice:   a.num("sellPrice", d.sellPrice),
		Level:       a.integer("level", DefaultLevel),
		Rarity:      a.str("rarity", d.rarity),
		StackSize:   a.integer("stackSize", d.stackSize),
		Description: a.str("description", d.description),
		Effects:     a.effects("effects"),
		Color:       a.str("color", d.color),
		IconFrame:   a.str("iconFrame", d.iconFrame),
	}
	b.BuyPrice = a.num("buyPrice", b.SellPrice*d.buyFactor)
	b.imagePath = domain.ImagePath(b.Category, b.Filename)
	return b
}
