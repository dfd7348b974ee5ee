package item

import "math"

// durability is the depletable integrity shared by weapons and armor.
// The current value always stays within [0, max].
type durability struct {
	current float64
	max     float64
}

// A non-positive ceiling takes DefaultDurability.
func newDurability(current, ceiling float64) durability {
	if ceiling <= 0 {
		ceiling = DefaultDurability
	}
	return durability{current: clamp(current, 0, ceiling), max: ceiling}
}

// Durability returns the current durability.
func (d *durability) Durability() float64 { return d.current }

// MaxDurability returns the durability ceiling.
func (d *durability) MaxDurability() float64 { return d.max }

// DurabilityPercentage returns current durability as a percentage of the ceiling.
func (d *durability) DurabilityPercentage() float64 {
	if d.max == 0 {
		return 0
	}
	return d.current / d.max * 100
}

func (d *durability) IsDamaged() bool { return d.current < d.max }

func (d *durability) IsBroken() bool { return d.current <= 0 }

// Repair restores durability to the ceiling.
func (d *durability) Repair() {
	d.current = d.max
}

// RepairBy adds amount, clamped to [0, max]. Negative amounts wear the item.
// A NaN amount is ignored.
func (d *durability) RepairBy(amount float64) {
	if math.IsNaN(amount) {
		return
	}
	d.current = clamp(d.current+amount, 0, d.max)
}

// TakeDamage removes amount, clamped to [0, max]. A NaN amount is ignored.
func (d *durability) TakeDamage(amount float64) {
	if math.IsNaN(amount) {
		return
	}
	d.current = clamp(d.current-amount, 0, d.max)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

func clampStack(n, size int) int {
	return max(0, min(size, n))
}
