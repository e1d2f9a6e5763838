package orders

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemAllocatorSequenceAndWrap(t *testing.T) {
	a := &MemAllocator{}
	ctx := context.Background()

	for want := 1; want <= 999; want++ {
		got, err := a.NextTableNumber(ctx)
		if err != nil {
			t.Fatalf("call %d: %v", want, err)
		}
		if exp := fmt.Sprintf("%03d", want); got != exp {
			t.Fatalf("call %d: expected %s, got %s", want, exp, got)
		}
	}

	// call 1000 wraps back to the start
	got, err := a.NextTableNumber(ctx)
	if err != nil {
		t.Fatalf("wrap call: %v", err)
	}
	if got != "001" {
		t.Fatalf("expected wrap to 001, got %s", got)
	}
}

func TestMemAllocatorConcurrentCallsAreDistinct(t *testing.T) {
	a := &MemAllocator{}
	ctx := context.Background()

	const callers = 500
	results := make(chan string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := a.NextTableNumber(ctx)
			if err != nil {
				t.Errorf("allocate: %v", err)
				return
			}
			results <- n
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, callers)
	for n := range results {
		if seen[n] {
			t.Fatalf("table number %s issued twice", n)
		}
		seen[n] = true
	}
	if len(seen) != callers {
		t.Fatalf("expected %d distinct numbers, got %d", callers, len(seen))
	}
}

func TestFormatTableNumber(t *testing.T) {
	cases := map[int]string{1: "001", 7: "007", 42: "042", 999: "999"}
	for in, want := range cases {
		if got := FormatTableNumber(in); got != want {
			t.Errorf("FormatTableNumber(%d) = %s, want %s", in, got, want)
		}
	}
}
