package ringstore

import "time"

// Statistics tracks store operations. It is updated by the owning RingStore and
// shares its concurrency contract: not safe for concurrent use.
//
// Bulk operations count once per element moved; failed calls count once.
type Statistics struct {
	writes         int64
	reads          int64
	peeks          int64
	rejectedWrites int64
	emptyReads     int64
	clears         int64

	startTime   time.Time
	currentSize int64
	maxSize     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Write records n stored elements.
func (s *Statistics) Write(n int) {
	s.writes += int64(n)
}

// Read records n removed elements.
func (s *Statistics) Read(n int) {
	s.reads += int64(n)
}

// Peek records n inspected elements.
func (s *Statistics) Peek(n int) {
	s.peeks += int64(n)
}

// RejectWrite records a write that failed with ErrFull.
func (s *Statistics) RejectWrite() {
	s.rejectedWrites++
}

// EmptyRead records a read or peek that failed with ErrEmpty.
func (s *Statistics) EmptyRead() {
	s.emptyReads++
}

// Clear records a Clear call.
func (s *Statistics) Clear() {
	s.clears++
}

// UpdateSize records the current number of stored elements.
func (s *Statistics) UpdateSize(size int) {
	s.currentSize = int64(size)
	if s.currentSize > s.maxSize {
		s.maxSize = s.currentSize
	}
}

// Writes returns the total number of stored elements.
func (s *Statistics) Writes() int64 { return s.writes }

// Reads returns the total number of removed elements.
func (s *Statistics) Reads() int64 { return s.reads }

// Peeks returns the total number of inspected elements.
func (s *Statistics) Peeks() int64 { return s.peeks }

// RejectedWrites returns how many writes failed because the store was full.
func (s *Statistics) RejectedWrites() int64 { return s.rejectedWrites }

// EmptyReads returns how many reads or peeks failed for lack of elements.
func (s *Statistics) EmptyReads() int64 { return s.emptyReads }

// Clears returns how many times the store was cleared.
func (s *Statistics) Clears() int64 { return s.clears }

// CurrentSize returns the current number of stored elements.
func (s *Statistics) CurrentSize() int64 { return s.currentSize }

// MaxSize returns the high-water mark of stored elements.
func (s *Statistics) MaxSize() int64 { return s.maxSize }

// Throughput returns the average number of stored elements per second.
func (s *Statistics) Throughput() float64 {
	elapsed := time.Since(s.startTime)
	if elapsed <= 0 {
		return 0.0
	}
	return float64(s.writes) / elapsed.Seconds()
}

// RejectRate returns rejected writes as a fraction of all write attempts (0.0 to 1.0).
func (s *Statistics) RejectRate() float64 {
	attempts := s.writes + s.rejectedWrites
	if attempts == 0 {
		return 0.0
	}
	return float64(s.rejectedWrites) / float64(attempts)
}

// Utilization returns current size relative to capacity (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}
	return float64(s.currentSize) / float64(capacity)
}

// Uptime returns how long statistics have been collected.
func (s *Statistics) Uptime() time.Duration {
	return time.Since(s.startTime)
}

// Reset zeroes all counters and restarts the clock. The current size is kept
// and becomes the new high-water mark.
func (s *Statistics) Reset() {
	size := s.currentSize
	*s = Statistics{
		startTime:   time.Now(),
		currentSize: size,
		maxSize:     size,
	}
}

// StatsSummary is a point-in-time snapshot of Statistics.
type StatsSummary struct {
	Writes         int64         `json:"writes"`
	Reads          int64         `json:"reads"`
	Peeks          int64         `json:"peeks"`
	RejectedWrites int64         `json:"rejected_writes"`
	EmptyReads     int64         `json:"empty_reads"`
	Clears         int64         `json:"clears"`
	CurrentSize    int64         `json:"current_size"`
	MaxSize        int64         `json:"max_size"`
	Throughput     float64       `json:"throughput"`
	RejectRate     float64       `json:"reject_rate"`
	Uptime         time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Writes:         s.writes,
		Reads:          s.reads,
		Peeks:          s.peeks,
		RejectedWrites: s.rejectedWrites,
		EmptyReads:     s.emptyReads,
		Clears:         s.clears,
		CurrentSize:    s.currentSize,
		MaxSize:        s.maxSize,
		Throughput:     s.Throughput(),
		RejectRate:     s.RejectRate(),
		Uptime:         s.Uptime(),
	}
}
