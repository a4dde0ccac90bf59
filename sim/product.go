package sim

import "github.com/sirupsen/logrus"

// branchStage is the stage index at which routing becomes dynamic: the
// product has passed stations 0-3 and must still visit both of 4 and 5,
// in load-dependent order.
const branchStage = 4

// Product walks through the six stations: 0-3 sequentially, then 4 and 5
// in the order decided by their current queue lengths.
type Product struct {
	id    int
	plant *Plant

	stage          int
	completed      [NumStations]bool
	completedCount int
}

func newProduct(id int, plant *Plant) *Product {
	return &Product{id: id, plant: plant}
}

// ID returns the product's identity.
func (p *Product) ID() int {
	return p.id
}

// Stage returns the product's progress index.
func (p *Product) Stage() int {
	return p.stage
}

// Completed reports whether the product has visited the given station.
func (p *Product) Completed(stationID int) bool {
	return p.completed[stationID]
}

// start registers the product's process with the kernel. Each step requests
// processing at the next station and continues when that station is done
// with the unit.
func (p *Product) start() {
	p.step()
}

func (p *Product) step() {
	if p.completedCount == NumStations {
		p.finish()
		return
	}
	station := p.route()
	station.Process(func() {
		p.completed[station.id] = true
		p.completedCount++
		if p.stage < branchStage {
			p.stage++
		}
		p.step()
	})
}

// route picks the next station. Stages 0-3 are fixed; at the branch stage
// the product goes to whichever of stations 4 and 5 has the shorter wait
// queue (ties favor 4), and the remaining one afterwards.
func (p *Product) route() *WorkStation {
	if p.stage < branchStage {
		return p.plant.Stations[p.stage]
	}
	switch {
	case !p.completed[4] && !p.completed[5]:
		q4 := p.plant.Stations[4].resource.QueueLen()
		q5 := p.plant.Stations[5].resource.QueueLen()
		if q4 <= q5 {
			return p.plant.Stations[4]
		}
		return p.plant.Stations[5]
	case !p.completed[4]:
		return p.plant.Stations[4]
	default:
		return p.plant.Stations[5]
	}
}

// finish runs the final inspection exactly once: with the configured
// rejection probability the product is counted as a defect, otherwise as
// completed.
func (p *Product) finish() {
	if Bernoulli(p.plant.sim.Rand, p.plant.params.RejectionProbability) {
		p.plant.Stats.Rejected++
		logrus.Debugf("product %d rejected at t=%.3f", p.id, p.plant.sim.Clock)
		return
	}
	p.plant.Stats.Completed++
	logrus.Debugf("product %d completed at t=%.3f", p.id, p.plant.sim.Clock)
}
