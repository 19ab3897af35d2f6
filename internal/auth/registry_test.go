package auth

import (
	"strings"
	"sync"
	"testing"
)

func TestIssueValidateRoundTrip(t *testing.T) {
	r := NewRegistry(10)

	tok := r.Issue(42)
	if len(tok) != TokenLength {
		t.Fatalf("token length = %d, want %d", len(tok), TokenLength)
	}
	for _, ch := range tok {
		if !strings.ContainsRune(tokenAlphabet, ch) {
			t.Fatalf("token contains %q outside the alphabet", ch)
		}
	}

	id, ok := r.Validate(tok)
	if !ok || id != 42 {
		t.Fatalf("Validate = (%d, %v), want (42, true)", id, ok)
	}
}

func TestValidateUnknownToken(t *testing.T) {
	r := NewRegistry(10)
	r.Issue(1)

	if _, ok := r.Validate(strings.Repeat("x", TokenLength)); ok {
		t.Fatal("unknown token validated")
	}
	if _, ok := r.Validate(""); ok {
		t.Fatal("empty token validated")
	}
}

func TestIssueEvictsOldestAtCapacity(t *testing.T) {
	const capacity = 5
	r := NewRegistry(capacity)

	tokens := make([]string, 0, capacity+1)
	for i := 0; i < capacity; i++ {
		tokens = append(tokens, r.Issue(int64(i)))
	}
	if r.Len() != capacity {
		t.Fatalf("Len = %d, want %d", r.Len(), capacity)
	}

	// One more issue evicts the first token; everything else survives.
	tokens = append(tokens, r.Issue(100))
	if r.Len() != capacity {
		t.Fatalf("Len after overflow = %d, want %d", r.Len(), capacity)
	}
	if _, ok := r.Validate(tokens[0]); ok {
		t.Fatal("oldest token still valid after eviction")
	}
	for i := 1; i < len(tokens); i++ {
		if _, ok := r.Validate(tokens[i]); !ok {
			t.Fatalf("token %d unexpectedly evicted", i)
		}
	}
}

func TestDefaultCapacity(t *testing.T) {
	r := NewRegistry(0)
	for i := 0; i < DefaultTokenCapacity; i++ {
		r.Issue(int64(i))
	}
	if r.Len() != DefaultTokenCapacity {
		t.Fatalf("Len = %d, want %d", r.Len(), DefaultTokenCapacity)
	}
	r.Issue(999)
	if r.Len() != DefaultTokenCapacity {
		t.Fatalf("Len after overflow = %d, want %d", r.Len(), DefaultTokenCapacity)
	}
}

func TestRegistryConcurrentUse(t *testing.T) {
	r := NewRegistry(50)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			tok := r.Issue(id)
			r.Validate(tok)
			r.Len()
		}(int64(i))
	}
	wg.Wait()

	if r.Len() != 20 {
		t.Fatalf("Len = %d, want 20", r.Len())
	}
}
