package clock

import (
	"sync"
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManual(start)

	if !m.Now().Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, m.Now())
	}

	m.Advance(50 * time.Millisecond)
	m.Advance(50 * time.Millisecond)
	if want := start.Add(100 * time.Millisecond); !m.Now().Equal(want) {
		t.Errorf("Expected %v after advances, got %v", want, m.Now())
	}

	later := start.Add(time.Hour)
	m.Set(later)
	if !m.Now().Equal(later) {
		t.Errorf("Expected %v after Set, got %v", later, m.Now())
	}
}

func TestManualClockConcurrentAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManual(start)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				m.Advance(time.Millisecond)
				_ = m.Now()
			}
		}()
	}
	wg.Wait()

	if want := start.Add(100 * time.Millisecond); !m.Now().Equal(want) {
		t.Errorf("Expected %v, got %v", want, m.Now())
	}
}

func TestSystemClockMovesForward(t *testing.T) {
	var c Clock = System{}
	t1 := c.Now()
	time.Sleep(2 * time.Millisecond)
	if !c.Now().After(t1) {
		t.Error("Expected system clock to move forward")
	}
}
