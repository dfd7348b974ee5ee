package item

import (
	"cmp"
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/itemforge/internal/domain"
)

// Sort keys accepted by CompareItems
const (
	SortByName   = "name"
	SortByLevel  = "level"
	SortByRarity = "rarity"
	SortByValue  = "value"
	SortByWeight = "weight"
)

// SortKeys lists the accepted sort keys.
var SortKeys = []string{SortByName, SortByLevel, SortByRarity, SortByValue, SortByWeight}

// collatorPool holds name collators; a Collator is not safe for concurrent use.
var collatorPool = sync.Pool{
	New: func() interface{} {
		return collate.New(language.Und)
	},
}

func compareNames(a, b string) int {
	c := collatorPool.Get().(*collate.Collator)
	defer collatorPool.Put(c)
	return c.CompareString(a, b)
}

// CompareItems orders a before b (negative), after b (positive) or neither (0)
// by the given key. Unknown keys compare equal, which leaves order unchanged.
// Rarities outside the known ranks sort before common.
func CompareItems(a, b Item, sortBy string) int {
	x, y := a.Core(), b.Core()
	switch sortBy {
	case SortByName:
		return compareNames(x.Name, y.Name)
	case SortByLevel:
		return cmp.Compare(x.Level, y.Level)
	case SortByRarity:
		return cmp.Compare(domain.RarityRank(x.Rarity), domain.RarityRank(y.Rarity))
	case SortByValue:
		return cmp.Compare(x.SellPrice, y.SellPrice)
	case SortByWeight:
		return cmp.Compare(x.Weight, y.Weight)
	default:
		return 0
	}
}

// SortItems sorts items in place by sortBy, keeping the input order of ties.
func SortItems(items []Item, sortBy string) {
	slices.SortStableFunc(items, func(a, b Item) int {
		return CompareItems(a, b, sortBy)
	})
}
