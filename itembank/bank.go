package itembank

import "sort"

// Bank is the process-wide, read-only, validated table of 24 items plus a
// precomputed per-trait index. A Bank never changes shape after
// construction; no per-session copy is needed.
type Bank struct {
	byNumber map[int]Item
	byTrait  map[Trait][]Item
}

// New validates each item's row-level rules and the bank's partition
// constraint, then builds a Bank. Items are copied into trait buckets
// sorted by item number so iteration order (and therefore selector
// tie-breaks) is deterministic.
func New(items []Item) (*Bank, error) {
	for _, it := range items {
		if err := validateItem(it); err != nil {
			return nil, err
		}
	}
	if err := validatePartition(items); err != nil {
		return nil, err
	}

	b := &Bank{
		byNumber: make(map[int]Item, len(items)),
		byTrait:  make(map[Trait][]Item, len(CanonicalOrder)),
	}
	for _, it := range items {
		b.byNumber[it.Number] = it
		b.byTrait[it.Trait] = append(b.byTrait[it.Trait], it)
	}
	for _, tr := range CanonicalOrder {
		bucket := b.byTrait[tr]
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].Number < bucket[j].Number })
	}

	return b, nil
}

// Item returns the item with the given number and whether it exists.
func (b *Bank) Item(number int) (Item, bool) {
	it, ok := b.byNumber[number]

	return it, ok
}

// ItemsForTrait returns the four-item subset belonging to a trait, ordered
// by ascending item number. The returned slice is shared; callers must not
// mutate it.
func (b *Bank) ItemsForTrait(tr Trait) []Item {
	return b.byTrait[tr]
}

// Size returns the total number of items in the bank.
func (b *Bank) Size() int {
	return len(b.byNumber)
}
