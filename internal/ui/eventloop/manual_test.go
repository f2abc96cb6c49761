package eventloop

import (
	"testing"
	"time"
)

func TestManualFiresTimersInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var order []string
	m.AfterFunc(300*time.Millisecond, func() { order = append(order, "late") })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, "early") })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, "early-second") })

	m.Advance(99 * time.Millisecond)
	if len(order) != 0 {
		t.Fatalf("nothing should fire before its deadline, got %v", order)
	}
	m.Advance(time.Second)

	want := []string{"early", "early-second", "late"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
	if m.Pending() != 0 {
		t.Fatalf("one-shot timers should be gone, %d pending", m.Pending())
	}
}

func TestManualEveryAndStop(t *testing.T) {
	m := NewManual()
	count := 0
	timer := m.Every(4*time.Second, func() { count++ })

	m.Advance(12 * time.Second)
	if count != 3 {
		t.Fatalf("expected 3 ticks, got %d", count)
	}
	if !timer.Stop() {
		t.Fatalf("expected active timer")
	}
	if timer.Stop() {
		t.Fatalf("second Stop should report inactive")
	}
	m.Advance(12 * time.Second)
	if count != 3 {
		t.Fatalf("stopped ticker fired, count %d", count)
	}
	if m.Now() != 24*time.Second {
		t.Fatalf("unexpected virtual time %s", m.Now())
	}
}

func TestManualCallbackCanReschedule(t *testing.T) {
	m := NewManual()
	fired := 0
	var again func()
	again = func() {
		fired++
		if fired < 3 {
			m.AfterFunc(time.Second, again)
		}
	}
	m.AfterFunc(time.Second, again)
	m.Advance(10 * time.Second)
	if fired != 3 {
		t.Fatalf("expected chained timers to fire 3 times, got %d", fired)
	}
}

func TestManualPostedTasks(t *testing.T) {
	m := NewManual()
	go m.Post(func() {})
	if !m.RunNext(time.Second) {
		t.Fatalf("expected posted task to run")
	}
	if m.RunNext(10 * time.Millisecond) {
		t.Fatalf("no task should be waiting")
	}
	m.Post(func() {})
	m.Post(func() {})
	if ran := m.RunPosted(); ran != 2 {
		t.Fatalf("expected 2 tasks, ran %d", ran)
	}
}
