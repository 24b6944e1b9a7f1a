package ringstore

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/c360/ringstore/errors"
)

// Sentinel errors. Operations return them wrapped as classified errors;
// compare with errors.Is.
var (
	// ErrFull is returned when there is not enough free capacity for a write.
	ErrFull = stderrors.New("ring store full")

	// ErrEmpty is returned when there are not enough stored elements for a read or peek.
	ErrEmpty = stderrors.New("ring store empty")

	// ErrInvalidCapacity is returned by New for a capacity below one.
	ErrInvalidCapacity = stderrors.New("capacity must be positive")

	// ErrInvalidCount is returned by ReadMany and PeekMany for a negative count.
	ErrInvalidCount = stderrors.New("count must not be negative")
)

// RingStore is a fixed-capacity FIFO backed by one contiguous slice indexed
// circularly. It never overwrites unread data: writes into a full store fail
// with ErrFull.
//
// A RingStore is not safe for concurrent use. Callers sharing one between
// goroutines must serialize access themselves.
type RingStore[T any] struct {
	items    []T
	capacity int
	head     int // next slot to read, meaningful while count > 0
	count    int

	stats   *Statistics
	metrics *storeMetrics
	logger  *slog.Logger
	opts    *storeOptions
}

// New creates a RingStore holding at most capacity elements.
// A capacity below one is rejected with ErrInvalidCapacity.
// Metrics registration failures keep the registry's error class.
func New[T any](capacity int, options ...Option) (*RingStore[T], error) {
	opts := applyOptions(options...)

	if capacity <= 0 {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity),
			"RingStore", "New", "validate capacity")
	}

	var metrics *storeMetrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newStoreMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.Wrap(err, "RingStore", "New", "metrics registration")
		}
	}

	rs := &RingStore[T]{
		items:    make([]T, capacity),
		capacity: capacity,
		stats:    NewStatistics(),
		metrics:  metrics,
		logger:   opts.logger,
		opts:     opts,
	}

	rs.logger.Debug("ring store created",
		"component", opts.name,
		"capacity", capacity,
		"metrics", metrics != nil)

	return rs, nil
}

// tail is the write cursor. It is derived, never stored.
func (r *RingStore[T]) tail() int {
	return (r.head + r.count) % r.capacity
}

// Write stores value at the write cursor.
// It fails with ErrFull when the store is full, leaving the store unchanged.
func (r *RingStore[T]) Write(value T) error {
	if r.count == r.capacity {
		r.rejectWrite(1)
		return errors.WrapTransient(ErrFull, "RingStore", "Write", "store value")
	}

	r.items[r.tail()] = value
	r.count++

	r.stats.Write(1)
	r.stats.UpdateSize(r.count)
	if r.metrics != nil {
		r.metrics.recordWrites(1, r.count, r.capacity)
	}

	return nil
}

// WriteMany appends values in order. It is all-or-nothing: if the values do not
// all fit, nothing is written and ErrFull is returned.
func (r *RingStore[T]) WriteMany(values []T) error {
	n := len(values)
	if n > r.capacity-r.count {
		r.rejectWrite(n)
		return errors.WrapTransient(ErrFull, "RingStore", "WriteMany",
			fmt.Sprintf("store %d values", n))
	}
	if n == 0 {
		return nil
	}

	// At most two contiguous runs: up to the physical end, then from index 0.
	start := r.tail()
	copied := copy(r.items[start:], values)
	copy(r.items, values[copied:])
	r.count += n

	r.stats.Write(n)
	r.stats.UpdateSize(r.count)
	if r.metrics != nil {
		r.metrics.recordWrites(n, r.count, r.capacity)
	}

	return nil
}

// Read removes and returns the oldest element.
// It fails with ErrEmpty when the store is empty.
func (r *RingStore[T]) Read() (T, error) {
	var zero T

	if r.count == 0 {
		r.rejectRead("Read", 1)
		return zero, errors.WrapTransient(ErrEmpty, "RingStore", "Read", "take value")
	}

	value := r.items[r.head]
	r.items[r.head] = zero // release for GC
	r.head = (r.head + 1) % r.capacity
	r.count--

	r.stats.Read(1)
	r.stats.UpdateSize(r.count)
	if r.metrics != nil {
		r.metrics.recordReads(1, r.count, r.capacity)
	}

	return value, nil
}

// ReadMany removes and returns the n oldest elements in FIFO order.
// It is all-or-nothing: when fewer than n elements are stored, nothing is
// removed and ErrEmpty is returned. ReadMany(0) returns an empty slice.
func (r *RingStore[T]) ReadMany(n int) ([]T, error) {
	if err := r.checkCount("ReadMany", n); err != nil {
		return nil, err
	}

	result := r.collect(n)
	if n == 0 {
		return result, nil
	}

	var zero T
	for i := 0; i < n; i++ {
		r.items[(r.head+i)%r.capacity] = zero
	}
	r.head = (r.head + n) % r.capacity
	r.count -= n

	r.stats.Read(n)
	r.stats.UpdateSize(r.count)
	if r.metrics != nil {
		r.metrics.recordReads(n, r.count, r.capacity)
	}

	return result, nil
}

// Peek returns the oldest element without removing it.
// It fails with ErrEmpty when the store is empty.
func (r *RingStore[T]) Peek() (T, error) {
	if r.count == 0 {
		var zero T
		r.rejectRead("Peek", 1)
		return zero, errors.WrapTransient(ErrEmpty, "RingStore", "Peek", "inspect value")
	}

	r.stats.Peek(1)
	if r.metrics != nil {
		r.metrics.recordPeeks(1)
	}

	return r.items[r.head], nil
}

// PeekMany returns the n oldest elements in FIFO order without removing them.
// The result is a new slice; later writes and reads do not affect it. Elements
// are copied by assignment, so pointer and reference types still share their
// referents with the store.
func (r *RingStore[T]) PeekMany(n int) ([]T, error) {
	if err := r.checkCount("PeekMany", n); err != nil {
		return nil, err
	}

	result := r.collect(n)
	if n > 0 {
		r.stats.Peek(n)
		if r.metrics != nil {
			r.metrics.recordPeeks(n)
		}
	}

	return result, nil
}

// IsEmpty reports whether the store holds no elements.
func (r *RingStore[T]) IsEmpty() bool {
	return r.count == 0
}

// IsFull reports whether the store is at capacity.
func (r *RingStore[T]) IsFull() bool {
	return r.count == r.capacity
}

// Size returns the number of stored elements.
func (r *RingStore[T]) Size() int {
	return r.count
}

// Capacity returns the fixed maximum number of elements.
func (r *RingStore[T]) Capacity() int {
	return r.capacity
}

// Clear discards all elements and resets the cursors. Storage is left as is;
// stale values are unreachable and get overwritten by later writes. With
// WithReleaseOnClear the occupied slots are zeroed first.
func (r *RingStore[T]) Clear() {
	if r.opts.releaseOnClear {
		var zero T
		for i := 0; i < r.count; i++ {
			r.items[(r.head+i)%r.capacity] = zero
		}
	}

	dropped := r.count
	r.head = 0
	r.count = 0

	r.stats.Clear()
	r.stats.UpdateSize(0)
	if r.metrics != nil {
		r.metrics.recordClear(r.capacity)
	}

	r.logger.Debug("ring store cleared", "component", r.opts.name, "dropped", dropped)
}

// Stats returns the store's statistics (always collected).
func (r *RingStore[T]) Stats() *Statistics {
	return r.stats
}

// Close unregisters the store's Prometheus metrics, if any. The store remains
// usable afterwards. Calling Close more than once is a no-op.
func (r *RingStore[T]) Close() error {
	if r.metrics == nil {
		return nil
	}
	r.metrics.unregister()
	r.metrics = nil
	return nil
}

// collect copies the n oldest elements into a new slice. n must be valid.
func (r *RingStore[T]) collect(n int) []T {
	result := make([]T, n)
	if n == 0 {
		return result
	}
	copied := copy(result, r.items[r.head:min(r.head+n, r.capacity)])
	copy(result[copied:], r.items[:n-copied])
	return result
}

// checkCount validates a bulk read/peek count against the stored elements.
func (r *RingStore[T]) checkCount(method string, n int) error {
	if n < 0 {
		return errors.WrapInvalid(fmt.Errorf("%w: got %d", ErrInvalidCount, n),
			"RingStore", method, "validate count")
	}
	if n > r.count {
		r.rejectRead(method, n)
		return errors.WrapTransient(ErrEmpty, "RingStore", method,
			fmt.Sprintf("take %d values", n))
	}
	return nil
}

func (r *RingStore[T]) rejectWrite(requested int) {
	r.stats.RejectWrite()
	if r.metrics != nil {
		r.metrics.recordRejectedWrite()
	}
	r.logger.Debug("ring store full",
		"component", r.opts.name,
		"requested", requested,
		"free", r.capacity-r.count)
}

func (r *RingStore[T]) rejectRead(method string, requested int) {
	r.stats.EmptyRead()
	if r.metrics != nil {
		r.metrics.recordEmptyRead()
	}
	r.logger.Debug("ring store empty",
		"component", r.opts.name,
		"op", method,
		"requested", requested,
		"stored", r.count)
}
