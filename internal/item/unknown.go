package item

import (
	"fmt"

	"github.com/osse101/itemforge/internal/domain"
)

// ImagePathKey is the export key of the derived image path on pass-through items.
const ImagePathKey = "imagePath"

// Unknown is the pass-through variant for categories outside the known set.
// It keeps every input attribute verbatim; Core offers a lenient typed view.
type Unknown struct {
	Base

	attrs domain.Record
}

// NewUnknown copies rec and derives the image path from its raw category.
func NewUnknown(rec domain.Record) *Unknown {
	attrs := rec.Clone()
	if attrs == nil {
		attrs = domain.Record{}
	}
	u := &Unknown{attrs: attrs}
	u.ID = domain.Text(attrs["id"])
	u.Name = domain.Text(attrs["name"])
	u.Filename = domain.Text(attrs["filename"])
	u.Category = domain.Text(attrs["category"])
	u.Type = domain.Text(attrs["type"])
	u.Rarity = domain.Text(attrs["rarity"])
	u.Description = domain.Text(attrs["description"])
	u.Color = domain.Text(attrs["color"])
	u.IconFrame = domain.Text(attrs["iconFrame"])
	u.Weight, _ = domain.Number(attrs["weight"])
	u.SellPrice, _ = domain.Number(attrs["sellPrice"])
	u.BuyPrice, _ = domain.Number(attrs["buyPrice"])
	if lvl, ok := domain.Number(attrs["level"]); ok {
		u.Level = int(lvl)
	}
	if size, ok := domain.Number(attrs["stackSize"]); ok {
		u.StackSize = int(size)
	}
	u.Effects, _ = domain.ParseEffects(attrs["effects"])

	u.imagePath = domain.ImagePath(u.Category, u.Filename)
	u.attrs[ImagePathKey] = u.imagePath
	return u
}

func (u *Unknown) Kind() Kind { return KindUnknown }

// Attr returns one raw attribute.
func (u *Unknown) Attr(key string) (any, bool) {
	v, ok := u.attrs[key]
	return v, ok
}

// Attrs returns a copy of every attribute, including the derived image path.
func (u *Unknown) Attrs() domain.Record {
	return u.attrs.Clone()
}

func (u *Unknown) TooltipText() string {
	level := u.Level
	if level == 0 {
		level = DefaultLevel
	}
	description := u.Description
	if description == "" {
		description = GenericNoDescription
	}
	return fmt.Sprintf("%s\nCategory: %s\nLevel: %d\n\n%s", u.Name, u.Category, level, description)
}

// ToJSON returns every attribute verbatim.
func (u *Unknown) ToJSON() any {
	return u.attrs.Clone()
}
