package ordernum

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

var numberPattern = regexp.MustCompile(`^ORD-\d{6}-\d{5}$`)

func TestNextFormat(t *testing.T) {
	gen := NewWithSeed(1)
	at := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)

	number := gen.Next(at)
	if !numberPattern.MatchString(number) {
		t.Fatalf("unexpected format: %s", number)
	}
	if !strings.HasPrefix(number, "ORD-260830-") {
		t.Fatalf("expected date segment 260830, got %s", number)
	}
}

func TestNextSuffixRange(t *testing.T) {
	gen := NewWithSeed(42)
	at := time.Now()
	for i := 0; i < 10000; i++ {
		number := gen.Next(at)
		suffix, err := strconv.Atoi(number[len(number)-5:])
		if err != nil {
			t.Fatalf("non-numeric suffix in %s: %v", number, err)
		}
		if suffix < 10000 || suffix > 99999 {
			t.Fatalf("suffix %d out of range in %s", suffix, number)
		}
	}
}

func TestNextConcurrentUse(t *testing.T) {
	gen := New()
	at := time.Now()

	const workers = 8
	const perWorker = 500

	var wg sync.WaitGroup
	results := make(chan string, workers*perWorker)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				results <- gen.Next(at)
			}
		}()
	}
	wg.Wait()
	close(results)

	for number := range results {
		if !numberPattern.MatchString(number) {
			t.Fatalf("unexpected format under concurrency: %s", number)
		}
	}
}
