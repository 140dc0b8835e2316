package model

import (
	"time"

	"schedule-interpreter/pkg/datemath"
)

// Item is one line of the schedule. Start and End are inclusive calendar
// dates at UTC midnight and End is never before Start.
type Item struct {
	ID          string
	Label       string
	Start       time.Time
	End         time.Time
	Assignee    string
	Description string
}

// Span is End - Start in days; an item that starts and ends on the same day has span 0.
func (i Item) Span() int {
	return datemath.DiffDays(i.Start, i.End)
}

// Duration is the inclusive day count of the item.
func (i Item) Duration() int {
	return i.Span() + 1
}

// Document is an immutable snapshot of the schedule. Every mutation builds a
// new Document; callers must not modify Items in place.
type Document struct {
	Items      []Item
	ModifiedAt time.Time
	Version    int
}

// Find returns the index of the item with the given id, or -1.
func (d Document) Find(id string) int {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Item returns the item with the given id.
func (d Document) Item(id string) (Item, bool) {
	idx := d.Find(id)
	if idx < 0 {
		return Item{}, false
	}
	return d.Items[idx], true
}

// Clone returns a deep copy whose Items slice can be modified freely.
func (d Document) Clone() Document {
	items := make([]Item, len(d.Items))
	copy(items, d.Items)
	return Document{Items: items, ModifiedAt: d.ModifiedAt, Version: d.Version}
}

// Patch is the minimal change pushed to persistence after a confirmed mutation.
type Patch struct {
	ItemID string
	Start  time.Time
	End    time.Time
}

// Diff lists the items whose dates differ between before and after.
func Diff(before, after Document) []Patch {
	var patches []Patch
	for _, it := range after.Items {
		prev, ok := before.Item(it.ID)
		if ok && prev.Start.Equal(it.Start) && prev.End.Equal(it.End) {
			continue
		}
		patches = append(patches, Patch{ItemID: it.ID, Start: it.Start, End: it.End})
	}
	return patches
}
