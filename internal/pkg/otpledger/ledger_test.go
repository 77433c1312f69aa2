package otpledger

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

type plainMatcher struct{}

func (plainMatcher) Verify(hashed, plaintext string) bool {
	return hashed == plaintext
}

func newTestLedger() *Ledger {
	return New(plainMatcher{})
}

func challengeAt(code string, issued time.Time, ttl time.Duration) Challenge {
	return Challenge{
		CodeHash:  []byte(code),
		IssuedAt:  issued,
		ExpiresAt: issued.Add(ttl),
	}
}

func TestLedgerPutOverwrites(t *testing.T) {
	// Arrange
	l := newTestLedger()
	now := time.Now()
	l.Put("key", challengeAt("111111", now, time.Minute))
	l.Put("key", challengeAt("222222", now, time.Minute))

	// Act
	first := l.CompareAndMarkVerified("key", "111111", now)
	second := l.CompareAndMarkVerified("key", "222222", now)

	// Assert
	if first != ResultMismatch {
		t.Fatalf("superseded code should mismatch, got %s", first)
	}
	if second != ResultSuccess {
		t.Fatalf("latest code should verify, got %s", second)
	}
}

func TestLedgerCompareAndMarkVerified(t *testing.T) {
	t.Run("UnknownKey", func(t *testing.T) {
		l := newTestLedger()

		if got := l.CompareAndMarkVerified("missing", "111111", time.Now()); got != ResultNotFound {
			t.Fatalf("expected NotFound, got %s", got)
		}
	})

	t.Run("ExpiredIsRemoved", func(t *testing.T) {
		// Arrange
		l := newTestLedger()
		now := time.Now()
		l.Put("key", challengeAt("111111", now, time.Minute))

		// Act
		got := l.CompareAndMarkVerified("key", "111111", now.Add(2*time.Minute))

		// Assert
		if got != ResultExpired {
			t.Fatalf("expected Expired, got %s", got)
		}
		if _, ok := l.Get("key"); ok {
			t.Fatalf("expired challenge should be removed on access")
		}
	})

	t.Run("SecondVerifyOfSameCodeFails", func(t *testing.T) {
		// Arrange
		l := newTestLedger()
		now := time.Now()
		l.Put("key", challengeAt("111111", now, time.Minute))

		// Act
		first := l.CompareAndMarkVerified("key", "111111", now)
		second := l.CompareAndMarkVerified("key", "111111", now)

		// Assert
		if first != ResultSuccess {
			t.Fatalf("first verify should succeed, got %s", first)
		}
		if second != ResultMismatch {
			t.Fatalf("already-verified code should mismatch, got %s", second)
		}
	})

	t.Run("ConcurrentVerifyHasOneWinner", func(t *testing.T) {
		// Arrange
		l := newTestLedger()
		now := time.Now()
		l.Put("key", challengeAt("111111", now, time.Minute))

		const callers = 32
		results := make([]Result, callers)
		var wg sync.WaitGroup

		// Act
		for i := range callers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = l.CompareAndMarkVerified("key", "111111", now)
			}(i)
		}
		wg.Wait()

		// Assert
		wins := 0
		for _, r := range results {
			if r == ResultSuccess {
				wins++
			}
		}
		if wins != 1 {
			t.Fatalf("expected exactly one winner, got %d", wins)
		}
	})
}

func TestLedgerConsumeVerified(t *testing.T) {
	t.Run("NotVerified", func(t *testing.T) {
		l := newTestLedger()
		now := time.Now()
		l.Put("key", challengeAt("111111", now, time.Minute))

		if got := l.ConsumeVerified("key", now); got != ResultNotVerified {
			t.Fatalf("expected NotVerified, got %s", got)
		}
	})

	t.Run("ExpiryDominatesVerification", func(t *testing.T) {
		// Arrange
		l := newTestLedger()
		now := time.Now()
		l.Put("key", challengeAt("111111", now, time.Minute))
		if got := l.CompareAndMarkVerified("key", "111111", now); got != ResultSuccess {
			t.Fatalf("setup verify failed: %s", got)
		}

		// Act
		got := l.ConsumeVerified("key", now.Add(2*time.Minute))

		// Assert
		if got != ResultExpired {
			t.Fatalf("verified but expired challenge must report Expired, got %s", got)
		}
		if _, ok := l.Get("key"); ok {
			t.Fatalf("expired challenge should be removed")
		}
	})

	t.Run("ConsumesExactlyOnce", func(t *testing.T) {
		// Arrange
		l := newTestLedger()
		now := time.Now()
		l.Put("key", challengeAt("111111", now, time.Minute))
		if got := l.CompareAndMarkVerified("key", "111111", now); got != ResultSuccess {
			t.Fatalf("setup verify failed: %s", got)
		}

		const callers = 32
		results := make([]Result, callers)
		var wg sync.WaitGroup

		// Act
		for i := range callers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = l.ConsumeVerified("key", now)
			}(i)
		}
		wg.Wait()

		// Assert
		wins := 0
		for _, r := range results {
			if r == ResultSuccess {
				wins++
			}
		}
		if wins != 1 {
			t.Fatalf("expected exactly one consumption, got %d", wins)
		}
		if got := l.ConsumeVerified("key", now); got != ResultNotFound {
			t.Fatalf("consumed challenge should be gone, got %s", got)
		}
	})
}

func TestLedgerSweep(t *testing.T) {
	// Arrange
	l := newTestLedger()
	now := time.Now()
	for i := range 10 {
		l.Put("live"+strconv.Itoa(i), challengeAt("111111", now, time.Hour))
	}
	for i := range 7 {
		l.Put("dead"+strconv.Itoa(i), challengeAt("111111", now.Add(-time.Hour), time.Minute))
	}

	// Act
	removed := l.Sweep(now)

	// Assert
	if removed != 7 {
		t.Fatalf("expected 7 removed, got %d", removed)
	}
	if l.Len() != 10 {
		t.Fatalf("expected 10 live entries, got %d", l.Len())
	}
}
