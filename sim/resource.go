package sim

// Resource is a bounded-concurrency mutual-exclusion primitive with a FIFO
// wait queue. Stations use capacity 1 (one product in process at a time);
// the shared restocker pool uses capacity 3. There is no real parallelism,
// so no locking: grants and releases happen inside the single running
// continuation.
type Resource struct {
	capacity int
	inUse    int
	waiters  []func()
}

// NewResource creates a resource with the given positive capacity.
func NewResource(capacity int) *Resource {
	return &Resource{capacity: capacity}
}

// Acquire requests a slot. If one is free the grant continuation runs
// immediately; otherwise it joins the tail of the FIFO wait queue and runs
// when a holder releases. Queue order is the grant order.
func (r *Resource) Acquire(grant func()) {
	if r.inUse < r.capacity {
		r.inUse++
		grant()
		return
	}
	r.waiters = append(r.waiters, grant)
}

// Release returns a held slot. If waiters exist the slot is handed to the
// head of the wait queue in the same step, so no intervening event can jump
// the queue.
func (r *Resource) Release() {
	if len(r.waiters) > 0 {
		next := r.waiters[0]
		r.waiters = r.waiters[1:]
		next()
		return
	}
	if r.inUse > 0 {
		r.inUse--
	}
}

// QueueLen reports the current wait-queue length without side effects.
// Product routing reads this to load-balance between stations 4 and 5.
func (r *Resource) QueueLen() int {
	return len(r.waiters)
}

// InUse reports the number of entities currently holding a slot.
func (r *Resource) InUse() int {
	return r.inUse
}

// Capacity reports the resource's fixed capacity.
func (r *Resource) Capacity() int {
	return r.capacity
}
