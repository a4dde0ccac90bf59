package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event must have a Timestamp (in simulated time units) and an
// Execute method that advances simulation state when invoked.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// ArrivalEvent represents the arrival of a new product at the plant.
type ArrivalEvent struct {
	time  float64
	Plant *Plant
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute creates the arriving product, starts its process, and schedules
// the next arrival.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Arrival at t=%.3f", e.time)
	e.Plant.arrive()
}

// TimerEvent resumes a suspended process after a timed delay. The
// continuation closes over whatever state the process needs; processing,
// repair, and restock delays all come through here.
type TimerEvent struct {
	time   float64
	resume func()
}

// Timestamp returns the scheduled time of the TimerEvent.
func (e *TimerEvent) Timestamp() float64 {
	return e.time
}

// Execute resumes the suspended process.
func (e *TimerEvent) Execute(sim *Simulator) {
	e.resume()
}
