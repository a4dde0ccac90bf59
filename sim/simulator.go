// sim/simulator.go
package sim

import (
	"container/heap"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// scheduledEvent pairs an Event with the sequence number assigned when it
// was scheduled. Two events at the same timestamp fire in scheduling order,
// which makes a run fully reproducible under a fixed seed.
type scheduledEvent struct {
	ev  Event
	seq uint64
}

// EventQueue implements heap.Interface and orders events by timestamp,
// ties broken by sequence number.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []scheduledEvent

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	if eq[i].ev.Timestamp() != eq[j].ev.Timestamp() {
		return eq[i].ev.Timestamp() < eq[j].ev.Timestamp()
	}
	return eq[i].seq < eq[j].seq
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(scheduledEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator is the core object that holds simulation time, the event loop,
// and the replication's random stream. Execution is single-threaded and
// cooperative: exactly one continuation runs at a time, driven by the queue.
type Simulator struct {
	Clock   float64
	Horizon float64
	Rand    *rand.Rand

	eventQueue EventQueue
	nextSeq    uint64
}

// NewSimulator creates a simulator for one replication. Each replication
// gets its own random stream, so replications are fully independent.
func NewSimulator(horizon float64, seed int64) *Simulator {
	return &Simulator{
		Clock:      0,
		Horizon:    horizon,
		Rand:       rand.New(rand.NewSource(seed)),
		eventQueue: make(EventQueue, 0),
	}
}

// Schedule pushes an event into the simulator's event queue.
func (sim *Simulator) Schedule(ev Event) {
	heap.Push(&sim.eventQueue, scheduledEvent{ev: ev, seq: sim.nextSeq})
	sim.nextSeq++
}

// ScheduleAfter suspends the calling process for delay time units by
// scheduling a TimerEvent that invokes resume. Negative delays are
// clamped to zero; the event still goes through the queue so that
// zero-delay resumptions keep their deterministic order.
func (sim *Simulator) ScheduleAfter(delay float64, resume func()) {
	if delay < 0 {
		delay = 0
	}
	sim.Schedule(&TimerEvent{time: sim.Clock + delay, resume: resume})
}

// Pending reports the number of events still in the queue.
func (sim *Simulator) Pending() int {
	return len(sim.eventQueue)
}

// Run pops events in non-decreasing time order, advances the clock to each
// popped event's time, and invokes its continuation, until no event remains
// with time <= Horizon. Continuations may schedule further events, including
// at the current time. Processes still suspended when the horizon is reached
// are simply abandoned; that is normal termination, not an error.
func (sim *Simulator) Run() {
	for len(sim.eventQueue) > 0 {
		// peek before popping: an event past the horizon must not execute
		if sim.eventQueue[0].ev.Timestamp() > sim.Horizon {
			break
		}
		item := heap.Pop(&sim.eventQueue).(scheduledEvent)
		// advance the clock
		sim.Clock = item.ev.Timestamp()
		logrus.Debugf("[t=%010.3f] Executing %T", sim.Clock, item.ev)
		// process the event
		item.ev.Execute(sim)
	}
	if sim.Clock < sim.Horizon {
		sim.Clock = sim.Horizon
	}
	logrus.Debugf("[t=%010.3f] Simulation ended", sim.Clock)
}
