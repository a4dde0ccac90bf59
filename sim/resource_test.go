package sim

import "testing"

func TestResource_Acquire_GrantsImmediatelyWhenFree(t *testing.T) {
	// GIVEN a free resource of capacity 1
	r := NewResource(1)

	// WHEN a slot is requested
	granted := false
	r.Acquire(func() { granted = true })

	// THEN the grant runs immediately
	if !granted {
		t.Fatal("expected immediate grant on a free resource")
	}
	if r.InUse() != 1 {
		t.Errorf("InUse: got %d, want 1", r.InUse())
	}
	if r.QueueLen() != 0 {
		t.Errorf("QueueLen: got %d, want 0", r.QueueLen())
	}
}

func TestResource_Acquire_QueuesWhenFull(t *testing.T) {
	// GIVEN a held capacity-1 resource
	r := NewResource(1)
	r.Acquire(func() {})

	// WHEN a second entity requests it
	granted := false
	r.Acquire(func() { granted = true })

	// THEN the request waits and holders never exceed capacity
	if granted {
		t.Fatal("second acquire must not be granted while the slot is held")
	}
	if r.InUse() != 1 {
		t.Errorf("InUse: got %d, want 1", r.InUse())
	}
	if r.QueueLen() != 1 {
		t.Errorf("QueueLen: got %d, want 1", r.QueueLen())
	}

	// WHEN the holder releases
	r.Release()

	// THEN the waiter is granted in the same step
	if !granted {
		t.Fatal("waiter must be granted on release")
	}
	if r.InUse() != 1 {
		t.Errorf("InUse after handoff: got %d, want 1", r.InUse())
	}
	if r.QueueLen() != 0 {
		t.Errorf("QueueLen after handoff: got %d, want 0", r.QueueLen())
	}
}

func TestResource_Release_GrantsInFIFOOrder(t *testing.T) {
	// GIVEN three waiters behind a held capacity-1 resource
	r := NewResource(1)
	r.Acquire(func() {})
	var got []string
	for _, id := range []string{"A", "B", "C"} {
		id := id
		r.Acquire(func() { got = append(got, id) })
	}

	// WHEN slots are released one by one
	r.Release()
	r.Release()
	r.Release()

	// THEN waiters are granted in arrival order
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("granted %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("grant order[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestResource_BoundedConcurrency(t *testing.T) {
	// GIVEN a capacity-3 pool (the restocker pool shape)
	r := NewResource(3)

	// WHEN five entities request slots
	granted := 0
	for i := 0; i < 5; i++ {
		r.Acquire(func() { granted++ })
	}

	// THEN only capacity-many grants happen up front
	if granted != 3 {
		t.Errorf("immediate grants: got %d, want 3", granted)
	}
	if r.InUse() != 3 {
		t.Errorf("InUse: got %d, want 3", r.InUse())
	}
	if r.QueueLen() != 2 {
		t.Errorf("QueueLen: got %d, want 2", r.QueueLen())
	}

	// AND releases drain the queue without exceeding capacity
	r.Release()
	r.Release()
	if granted != 5 {
		t.Errorf("grants after releases: got %d, want 5", granted)
	}
	if r.InUse() != 3 {
		t.Errorf("InUse after handoffs: got %d, want 3", r.InUse())
	}

	// AND further releases free the slots
	r.Release()
	r.Release()
	r.Release()
	if r.InUse() != 0 {
		t.Errorf("InUse after draining: got %d, want 0", r.InUse())
	}
}

func TestResource_QueueLen_HasNoSideEffects(t *testing.T) {
	r := NewResource(1)
	r.Acquire(func() {})
	r.Acquire(func() {})

	for i := 0; i < 3; i++ {
		if r.QueueLen() != 1 {
			t.Fatalf("QueueLen read %d changed state: got %d, want 1", i, r.QueueLen())
		}
	}
	if r.InUse() != 1 {
		t.Errorf("InUse after reads: got %d, want 1", r.InUse())
	}
}

func TestResource_BlockedProcessResumesOnlyAfterRelease(t *testing.T) {
	// GIVEN a product holding a station resource while a second requests it,
	// with unrelated events firing in between
	s := NewSimulator(100, 1)
	r := NewResource(1)

	var trace []string
	r.Acquire(func() {
		trace = append(trace, "first-acquired")
		s.ScheduleAfter(10, func() {
			trace = append(trace, "first-releasing")
			r.Release()
		})
	})
	r.Acquire(func() { trace = append(trace, "second-acquired") })
	s.Schedule(&testEvent{time: 5, fn: func() { trace = append(trace, "unrelated") }})

	// WHEN the simulation runs
	s.Run()

	// THEN the second continuation does not resume until the first releases
	want := []string{"first-acquired", "unrelated", "first-releasing", "second-acquired"}
	if len(trace) != len(want) {
		t.Fatalf("trace %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d]: got %s, want %s", i, trace[i], want[i])
		}
	}
}
