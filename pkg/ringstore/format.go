package ringstore

import (
	"fmt"
	"strings"
)

// freeSlot marks an unoccupied slot in String output.
const freeSlot = "_"

// String renders the physical layout of the store: one entry per slot in
// storage order, occupied slots formatted with fmt.Sprint and free slots as "_".
// A capacity-4 store holding 7, 8 after wrapping past the end prints "[8,_,_,7]".
func (r *RingStore[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < r.capacity; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		if r.occupied(i) {
			sb.WriteString(fmt.Sprint(r.items[i]))
		} else {
			sb.WriteString(freeSlot)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// occupied reports whether physical slot i holds a live element.
func (r *RingStore[T]) occupied(i int) bool {
	// distance from the read cursor, walking forward with wrap
	offset := (i - r.head + r.capacity) % r.capacity
	return offset < r.count
}
