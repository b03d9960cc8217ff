package bstset

import (
	"sync"
	"testing"
)

func TestSpinLock(t *testing.T) {
	for _, limit := range []int{1, DefaultSpinLimit, 1024} {
		m := NewSpinLock(limit)
		const n = 100
		var wg sync.WaitGroup
		wg.Add(n)
		var counter int64
		for range n {
			go func() {
				defer wg.Done()
				for range 100 {
					m.Lock()
					counter++
					m.Unlock()
				}
			}()
		}
		wg.Wait()
		if counter != n*100 {
			t.Fatalf("limit=%d: counter = %d, want %d", limit, counter, n*100)
		}
	}
}

func TestSpinLock_ZeroValue(t *testing.T) {
	var m SpinLock
	m.Lock()
	if m.TryLock() {
		t.Fatal("TryLock succeeded while locked")
	}
	m.Unlock()
	if !m.TryLock() {
		t.Fatal("TryLock failed on unlocked lock")
	}
	m.Unlock()
}

func TestSpinLock_Limit(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-1, DefaultSpinLimit},
		{0, DefaultSpinLimit},
		{1, 1},
		{58, 58},
		{1000, 1000},
	}
	for _, c := range cases {
		if got := int(NewSpinLock(c.in).limit); got != c.want {
			t.Fatalf("NewSpinLock(%d).limit = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSpinLock_Locker(t *testing.T) {
	var l sync.Locker = NewSpinLock(0)
	done := make(chan struct{})
	l.Lock()
	go func() {
		l.Lock()
		l.Unlock()
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("second Lock returned while lock was held")
	default:
	}
	l.Unlock()
	<-done
}

func TestSpinLock_UnlockOfUnlocked(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Unlock of unlocked SpinLock did not panic")
		}
	}()
	var m SpinLock
	m.Unlock()
}
