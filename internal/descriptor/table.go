// Package descriptor assigns numeric identifiers to its elements, like a
// POSIX file descriptor table.
package descriptor

import (
	"math"
	"math/bits"
)

// Table is a data structure mapping 32 bit descriptors to items.
//
// # Negative keys are invalid.
//
// Negative keys (e.g. -1) are invalid inputs and return a corresponding
// not-found value. This matches POSIX behavior of file descriptors.
// See https://pubs.opengroup.org/onlinepubs/9699919799/functions/dup.html#tag_16_093
//
// # Data structure design
//
// The table is a pair of slices growing in lockstep: len(items) is always
// 64*len(masks), so every bit in masks addresses a valid index in items.
// Lookups are a bounds check and a bit test; insertion scans the masks for
// the lowest zero bit, which keeps key assignment POSIX-like (the lowest
// free descriptor is reused first). Items are accessed far more often than
// they are inserted, so the scan at insertion time is a good trade.
type Table[Key ~int32 | ~uint32, Item any] struct {
	masks []uint64
	items []Item
}

// Len returns the number of items stored in the table.
func (t *Table[Key, Item]) Len() (n int) {
	for _, mask := range t.masks {
		n += bits.OnesCount64(mask)
	}
	return n
}

// grow ensures the table can hold item indexes up to n-1.
func (t *Table[Key, Item]) grow(n int) {
	words := (n + 63) / 64
	if words <= len(t.masks) {
		return
	}

	masks := make([]uint64, words)
	copy(masks, t.masks)

	items := make([]Item, words*64)
	copy(items, t.items)

	t.masks = masks
	t.items = items
}

// Insert inserts the given item to the table, returning the key that it was
// assigned or false if there was no room left in the table.
func (t *Table[Key, Item]) Insert(item Item) (key Key, ok bool) {
	for index, mask := range t.masks {
		if ^mask != 0 { // not full?
			shift := bits.TrailingZeros64(^mask)
			n := index*64 + shift
			t.items[n] = item
			t.masks[index] = mask | 1<<shift
			return Key(n), true
		}
	}

	// No free slot: the next key is one past the current capacity.
	n := len(t.items)
	if n > math.MaxInt32 {
		return 0, false
	}

	t.grow(n + 1)
	t.items[n] = item
	t.masks[n/64] |= 1 << (n % 64)
	return Key(n), true
}

// Lookup returns the item associated with the given key (may be nil).
func (t *Table[Key, Item]) Lookup(key Key) (item Item, found bool) {
	if key < 0 { // invalid key
		return
	}
	if i := int(key); i < len(t.items) {
		if (t.masks[i/64] & (1 << (i % 64))) != 0 {
			item, found = t.items[i], true
		}
	}
	return
}

// InsertAt inserts the given item at the given key, growing the table as
// needed. Any item previously stored at the key is replaced.
func (t *Table[Key, Item]) InsertAt(item Item, key Key) bool {
	if key < 0 { // invalid key
		return false
	}
	i := int(key)
	t.grow(i + 1)
	t.masks[i/64] |= 1 << (i % 64)
	t.items[i] = item
	return true
}

// Delete deletes the item stored at the given key from the table.
func (t *Table[Key, Item]) Delete(key Key) {
	if key < 0 { // invalid key
		return
	}
	if i := int(key); i < len(t.items) {
		if mask := t.masks[i/64]; (mask & (1 << (i % 64))) != 0 {
			var zero Item
			t.items[i] = zero
			t.masks[i/64] = mask &^ (1 << (i % 64))
		}
	}
}

// Range calls f for each item and its associated key in the table. The
// function f might return false to interrupt the iteration.
func (t *Table[Key, Item]) Range(f func(Key, Item) bool) {
	for index, mask := range t.masks {
		if mask == 0 {
			continue
		}
		for shift := 0; shift < 64; shift++ {
			if (mask & (1 << shift)) == 0 {
				continue
			}
			n := index*64 + shift
			if !f(Key(n), t.items[n]) {
				return
			}
		}
	}
}

// Reset clears the content of the table, retaining its capacity.
func (t *Table[Key, Item]) Reset() {
	for i := range t.masks {
		t.masks[i] = 0
	}
	var zero Item
	for i := range t.items {
		t.items[i] = zero
	}
}
