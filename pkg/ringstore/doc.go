// Package ringstore provides a fixed-capacity generic FIFO backed by a single
// circularly indexed slice, with always-on statistics and optional Prometheus
// metrics.
//
// # Overview
//
// A RingStore allocates its storage once. Elements are never shifted or copied
// inside the store as they come and go; the read cursor and element count move
// instead, wrapping at the physical end of the slice. Unlike a classic circular
// buffer it never overwrites unread data: once full, writes fail with ErrFull.
//
// # Quick Start
//
//	store, err := ringstore.New[int](3)
//	if err != nil {
//		return err
//	}
//
//	_ = store.WriteMany([]int{1, 2, 3})
//	err = store.Write(4) // errors.Is(err, ringstore.ErrFull)
//
//	v, _ := store.Read()            // 1
//	_ = store.Write(4)              // fits again
//	rest, _ := store.ReadMany(3)    // [2 3 4]
//	_, err = store.Read()           // errors.Is(err, ringstore.ErrEmpty)
//
// # All-or-Nothing Bulk Operations
//
// WriteMany, ReadMany and PeekMany either complete in full or leave the store
// untouched. WriteMany with more values than free slots writes none of them;
// ReadMany(n) with fewer than n stored elements removes none. A count of zero
// succeeds with an empty result; a negative count fails with ErrInvalidCount.
//
// # Errors
//
// Failures are returned as classified errors from the errors package:
//
//   - ErrFull, ErrEmpty: transient. The store is unchanged and the call can be
//     retried once the other side has made progress.
//   - ErrInvalidCapacity, ErrInvalidCount, invalid Config: invalid.
//
// Compare with errors.Is. After any failed call the store is in the same state
// as before it.
//
// # Capacity Zero
//
// New rejects a capacity below one with ErrInvalidCapacity. There is no
// degenerate always-full, always-empty store.
//
// # Peek Semantics
//
// Peek returns the oldest element by value. PeekMany returns a new slice, so
// later writes cannot change what the caller holds. Elements are copied by
// assignment: if T is a pointer, map or slice, the referent is still shared
// with whoever reads the element later.
//
// # Concurrency
//
// A RingStore is not safe for concurrent use. It holds no locks and uses no
// atomic operations; Statistics follows the same contract. Guard a shared store
// with a mutex owned by the caller. No operation blocks.
//
// # Observability
//
// Statistics are always collected and available via Stats(). Prometheus metrics
// are enabled with WithMetrics and removed with Close:
//
//	registry := metric.NewMetricsRegistry()
//	store, err := ringstore.New[[]byte](4096,
//		ringstore.WithMetrics(registry, "udp_input"),
//		ringstore.WithLogger(logger),
//	)
//	defer store.Close()
//
// Rejected writes, empty reads and clears are logged at debug level.
//
// # Configuration
//
// Config carries capacity, name and clear behaviour for stores built from files:
//
//	cfg, err := ringstore.ParseConfig([]byte("capacity: 512\nname: events\n"))
//	store, err := ringstore.NewFromConfig[*Event](cfg)
//
// # Performance Characteristics
//
//   - Write, Read, Peek, Size, IsFull, IsEmpty: O(1)
//   - WriteMany, ReadMany, PeekMany: O(n) in the number of elements moved
//   - Clear: O(1), or O(size) with WithReleaseOnClear
//   - Memory: capacity * sizeof(T), allocated once in New
package ringstore
