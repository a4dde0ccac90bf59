package sim

import "github.com/sirupsen/logrus"

// FailureProbabilities is the fixed per-station failure probability table,
// indexed by station id.
var FailureProbabilities = [NumStations]float64{0.02, 0.01, 0.05, 0.15, 0.07, 0.06}

// WorkStation is one station on the line. It owns its raw-material
// inventory, its failure/repair model, and an exclusive resource so that
// only one product is in process at a time.
type WorkStation struct {
	id  int
	sim *Simulator

	resource   *Resource // capacity 1, strict exclusivity
	restockers *Resource // shared pool, capacity per Params.Restockers

	rawMaterial     int
	initialMaterial int
	processedCount  int

	failureProb  float64
	failureEvery int

	procTime    NormalSampler
	repairTime  ExponentialSampler
	restockTime NormalSampler

	stats *PlantStatistics
}

func newWorkStation(sim *Simulator, id int, params Params, restockers *Resource, stats *PlantStatistics) *WorkStation {
	return &WorkStation{
		id:              id,
		sim:             sim,
		resource:        NewResource(1),
		restockers:      restockers,
		rawMaterial:     params.InitialMaterial,
		initialMaterial: params.InitialMaterial,
		failureProb:     params.FailureProbabilities[id],
		failureEvery:    params.FailureCheckEvery,
		procTime:        NormalSampler{Mean: params.ProcessMean, StdDev: params.ProcessStdDev},
		repairTime:      ExponentialSampler{Mean: params.RepairMean},
		restockTime:     NormalSampler{Mean: params.RestockMean, StdDev: params.RestockStdDev},
		stats:           stats,
	}
}

// ID returns the station's identity (0-5).
func (w *WorkStation) ID() int {
	return w.id
}

// RawMaterial returns the current raw-material inventory.
func (w *WorkStation) RawMaterial() int {
	return w.rawMaterial
}

// ProcessedCount returns the number of units this station has processed.
func (w *WorkStation) ProcessedCount() int {
	return w.processedCount
}

// Resource exposes the station's exclusive resource, read for routing and
// invariant checks.
func (w *WorkStation) Resource() *Resource {
	return w.resource
}

// Process runs one unit through the station and calls done when the unit
// leaves. The station resource is acquired first and released on every exit
// path, including the failure/repair path.
func (w *WorkStation) Process(done func()) {
	w.resource.Acquire(func() {
		w.ensureMaterial(func() {
			w.processUnit(done)
		})
	})
}

// ensureMaterial re-checks inventory after each completed restock cycle
// until a unit of raw material is available.
func (w *WorkStation) ensureMaterial(then func()) {
	if w.rawMaterial > 0 {
		then()
		return
	}
	w.stats.ResupplyWaits[w.id]++
	logrus.Debugf("station %d out of material at t=%.3f, restocking", w.id, w.sim.Clock)
	w.restock(func() {
		w.ensureMaterial(then)
	})
}

func (w *WorkStation) processUnit(done func()) {
	w.rawMaterial--
	d := w.procTime.Sample(w.sim.Rand)
	w.sim.ScheduleAfter(d, func() {
		// busy time counts only work that actually finished; a unit cut
		// off by the horizon contributes nothing
		w.stats.BusyTime[w.id] += d
		w.processedCount++
		if w.failureEvery > 0 && w.processedCount%w.failureEvery == 0 && Bernoulli(w.sim.Rand, w.failureProb) {
			w.stats.Failures[w.id]++
			repair := w.repairTime.Sample(w.sim.Rand)
			w.stats.RepairTimes = append(w.stats.RepairTimes, repair)
			logrus.Debugf("station %d failed at t=%.3f, repair %.3f", w.id, w.sim.Clock, repair)
			w.sim.ScheduleAfter(repair, func() {
				w.resource.Release()
				done()
			})
			return
		}
		w.resource.Release()
		done()
	})
}

// restock acquires a slot from the shared restocker pool, runs the restock
// delay, and resets the inventory to its initial level. Up to the pool's
// capacity of restock operations may be in flight across stations.
func (w *WorkStation) restock(done func()) {
	w.restockers.Acquire(func() {
		d := w.restockTime.Sample(w.sim.Rand)
		w.stats.RestockerBusyTime += d
		w.sim.ScheduleAfter(d, func() {
			w.rawMaterial = w.initialMaterial
			w.restockers.Release()
			done()
		})
	})
}
