package otpledger

import (
	"hash/fnv"
	"sync"
	"time"
)

// Result is the typed outcome of a ledger mutation. None of these are errors;
// callers translate them into caller-facing rejections.
type Result int

const (
	// ResultNotFound means no challenge lives under the key.
	ResultNotFound Result = iota
	// ResultExpired means the challenge was past its TTL and has been removed.
	ResultExpired
	// ResultMismatch means the submitted code did not match.
	ResultMismatch
	// ResultNotVerified means the challenge exists but was never verified.
	ResultNotVerified
	// ResultSuccess means the operation succeeded.
	ResultSuccess
)

// String returns the string representation of the result.
func (r Result) String() string {
	switch r {
	case ResultNotFound:
		return "NotFound"
	case ResultExpired:
		return "Expired"
	case ResultMismatch:
		return "Mismatch"
	case ResultNotVerified:
		return "NotVerified"
	case ResultSuccess:
		return "Success"
	default:
		return "Unknown"
	}
}

// Challenge is a single-use, time-bounded passcode record.
//
// CodeHash holds the HMAC of the plaintext code; the ledger never sees
// plaintext codes. Verified flips to true exactly once via
// CompareAndMarkVerified and is never reset except by overwrite.
type Challenge struct {
	CodeHash  []byte
	IssuedAt  time.Time
	ExpiresAt time.Time
	Verified  bool
}

func (c Challenge) expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// matcher compares a stored hash against a submitted plaintext code.
type matcher interface {
	Verify(hashed, plaintext string) bool
}

const shardCount = 32

type shard struct {
	mu      sync.Mutex
	entries map[string]Challenge
}

// Ledger is a concurrency-safe keyed store of one-time-passcode challenges.
//
// Keys are sharded so unrelated subjects never contend on the same lock; all
// read-modify-write operations on a single key are atomic within its shard.
// At most one live challenge exists per key: Put overwrites (latest wins).
// Expiry is enforced by wall-clock comparison at access time, so no background
// sweeper is required for correctness; Sweep exists for memory hygiene only.
type Ledger struct {
	shards  [shardCount]shard
	matcher matcher
}

// New constructs an empty Ledger using m to compare submitted codes against
// stored hashes.
func New(m matcher) *Ledger {
	l := &Ledger{matcher: m}
	for i := range l.shards {
		l.shards[i].entries = make(map[string]Challenge)
	}

	return l
}

func (l *Ledger) shardFor(key string) *shard {
	h := fnv.New32a()
	h.Write([]byte(key)) //nolint:errcheck // fnv never fails
	return &l.shards[h.Sum32()%shardCount]
}

// Put stores a challenge under key, silently replacing any previous one.
func (l *Ledger) Put(key string, ch Challenge) {
	s := l.shardFor(key)
	s.mu.Lock()
	s.entries[key] = ch
	s.mu.Unlock()
}

// Get returns the challenge stored under key, if any.
func (l *Ledger) Get(key string) (Challenge, bool) {
	s := l.shardFor(key)
	s.mu.Lock()
	ch, ok := s.entries[key]
	s.mu.Unlock()

	return ch, ok
}

// Remove deletes the challenge stored under key, if any.
func (l *Ledger) Remove(key string) {
	s := l.shardFor(key)
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// CompareAndMarkVerified atomically validates a submitted code against the
// challenge under key.
//
// Exactly one of N concurrent callers with the correct code observes
// ResultSuccess; the entry is then retained with Verified=true for later
// consumption. An expired entry is removed as a side effect.
func (l *Ledger) CompareAndMarkVerified(key, submittedCode string, now time.Time) Result {
	s := l.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.entries[key]
	if !ok {
		return ResultNotFound
	}

	if ch.expired(now) {
		delete(s.entries, key)
		return ResultExpired
	}

	if !l.matcher.Verify(string(ch.CodeHash), submittedCode) {
		return ResultMismatch
	}

	if ch.Verified {
		// Single-use: a code that already produced a verification cannot
		// produce a second one.
		return ResultMismatch
	}

	ch.Verified = true
	s.entries[key] = ch

	return ResultSuccess
}

// ConsumeVerified atomically checks that the challenge under key is verified
// and still live, then removes it.
//
// Expiry dominates prior verification: a challenge that was verified in time
// but consumed after ExpiresAt fails with ResultExpired (and is removed).
func (l *Ledger) ConsumeVerified(key string, now time.Time) Result {
	s := l.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.entries[key]
	if !ok {
		return ResultNotFound
	}

	if ch.expired(now) {
		delete(s.entries, key)
		return ResultExpired
	}

	if !ch.Verified {
		return ResultNotVerified
	}

	delete(s.entries, key)

	return ResultSuccess
}

// Sweep removes every expired entry and reports how many were dropped.
func (l *Ledger) Sweep(now time.Time) int {
	removed := 0
	for i := range l.shards {
		s := &l.shards[i]
		s.mu.Lock()
		for key, ch := range s.entries {
			if ch.expired(now) {
				delete(s.entries, key)
				removed++
			}
		}
		s.mu.Unlock()
	}

	return removed
}

// Len reports the number of live entries across all shards.
func (l *Ledger) Len() int {
	n := 0
	for i := range l.shards {
		s := &l.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}

	return n
}
