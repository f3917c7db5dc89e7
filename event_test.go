package hover

import "testing"

func TestEventQueue_DeliversInOrder(t *testing.T) {
	var q EventQueue
	var got []HoverEvent
	q.Subscribe(func(e HoverEvent) { got = append(got, e) })

	q.Publish(HoverEvent{Entering: false, Target: 1})
	q.Publish(HoverEvent{Entering: true, Target: 2})
	if len(got) != 0 {
		t.Fatal("Publish must not deliver")
	}
	if n := q.Pending(); n != 2 {
		t.Fatalf("Pending = %d, want 2", n)
	}

	if n := q.Flush(); n != 2 {
		t.Errorf("Flush = %d, want 2", n)
	}
	want := []HoverEvent{{Entering: false, Target: 1}, {Entering: true, Target: 2}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
	if q.Pending() != 0 {
		t.Error("queue should be empty after Flush")
	}
	if q.Flush() != 0 {
		t.Error("second Flush should deliver nothing")
	}
}

func TestEventQueue_SubscribersInterleave(t *testing.T) {
	var q EventQueue
	var log []string
	q.Subscribe(func(e HoverEvent) {
		if e.Entering {
			log = append(log, "a+")
		} else {
			log = append(log, "a-")
		}
	})
	q.Subscribe(func(e HoverEvent) {
		if e.Entering {
			log = append(log, "b+")
		} else {
			log = append(log, "b-")
		}
	})

	q.Publish(HoverEvent{Entering: false, Target: 1})
	q.Publish(HoverEvent{Entering: true, Target: 2})
	q.Flush()

	// Each event reaches every subscriber before the next event.
	want := []string{"a-", "b-", "a+", "b+"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %s, want %s", i, log[i], want[i])
		}
	}
}

func TestEventQueue_Remove(t *testing.T) {
	var q EventQueue
	var a, b int
	ha := q.Subscribe(func(HoverEvent) { a++ })
	q.Subscribe(func(HoverEvent) { b++ })

	q.Publish(HoverEvent{Entering: true, Target: 1})
	q.Flush()

	ha.Remove()
	ha.Remove() // second call is a no-op
	CallbackHandle{}.Remove()

	q.Publish(HoverEvent{Entering: false, Target: 1})
	q.Flush()

	if a != 1 || b != 2 {
		t.Errorf("a = %d, b = %d, want 1, 2", a, b)
	}
}

func TestEventQueue_PublishDuringFlush(t *testing.T) {
	var q EventQueue
	var got []HoverEvent
	q.Subscribe(func(e HoverEvent) {
		got = append(got, e)
		if e.Target == 1 {
			q.Publish(HoverEvent{Entering: true, Target: 99})
		}
	})

	q.Publish(HoverEvent{Entering: true, Target: 1})
	if n := q.Flush(); n != 1 {
		t.Errorf("Flush = %d, want 1", n)
	}
	if len(got) != 1 {
		t.Fatalf("re-entrant publish delivered in the same Flush: %v", got)
	}
	if q.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", q.Pending())
	}
	q.Flush()
	if len(got) != 2 || got[1].Target != 99 {
		t.Errorf("got %v, want second event for 99", got)
	}
}

func TestEventQueue_NoSubscribers(t *testing.T) {
	var q EventQueue
	q.Publish(HoverEvent{Entering: true, Target: 3})
	if n := q.Flush(); n != 1 {
		t.Errorf("Flush = %d, want 1", n)
	}
}
