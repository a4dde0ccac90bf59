package sim

import "fmt"

// Params holds every numeric parameter of one replication. The defaults
// reproduce the fixed run configuration of the study; tests override
// individual fields.
type Params struct {
	Horizon              float64
	ArrivalMean          float64
	ProcessMean          float64
	ProcessStdDev        float64
	RepairMean           float64
	RestockMean          float64
	RestockStdDev        float64
	Restockers           int
	InitialMaterial      int
	FailureCheckEvery    int
	RejectionProbability float64
	FailureProbabilities []float64
}

// DefaultParams returns the fixed study parameters: horizon 5000, arrivals
// Exp(3), processing N(4,1), repair Exp(3), restock N(2,0.5) with a pool of
// 3 restockers, 25 units of initial material, failure checks every 5th unit,
// 5% final rejection.
func DefaultParams() Params {
	return Params{
		Horizon:              5000,
		ArrivalMean:          3,
		ProcessMean:          4,
		ProcessStdDev:        1,
		RepairMean:           3,
		RestockMean:          2,
		RestockStdDev:        0.5,
		Restockers:           3,
		InitialMaterial:      25,
		FailureCheckEvery:    5,
		RejectionProbability: 0.05,
		FailureProbabilities: FailureProbabilities[:],
	}
}

// Validate checks that the parameters describe a runnable replication.
func (p Params) Validate() error {
	if p.Horizon < 0 {
		return fmt.Errorf("horizon must be >= 0, got %v", p.Horizon)
	}
	if p.ArrivalMean <= 0 {
		return fmt.Errorf("arrival mean must be positive, got %v", p.ArrivalMean)
	}
	if p.ProcessMean <= 0 {
		return fmt.Errorf("process mean must be positive, got %v", p.ProcessMean)
	}
	if p.ProcessStdDev < 0 {
		return fmt.Errorf("process std dev must be >= 0, got %v", p.ProcessStdDev)
	}
	if p.RepairMean <= 0 {
		return fmt.Errorf("repair mean must be positive, got %v", p.RepairMean)
	}
	if p.RestockMean <= 0 {
		return fmt.Errorf("restock mean must be positive, got %v", p.RestockMean)
	}
	if p.RestockStdDev < 0 {
		return fmt.Errorf("restock std dev must be >= 0, got %v", p.RestockStdDev)
	}
	if p.Restockers < 1 {
		return fmt.Errorf("restocker pool capacity must be >= 1, got %d", p.Restockers)
	}
	if p.InitialMaterial < 1 {
		return fmt.Errorf("initial material must be >= 1, got %d", p.InitialMaterial)
	}
	if p.FailureCheckEvery < 1 {
		return fmt.Errorf("failure check interval must be >= 1, got %d", p.FailureCheckEvery)
	}
	if p.RejectionProbability < 0 || p.RejectionProbability > 1 {
		return fmt.Errorf("rejection probability must be in [0,1], got %v", p.RejectionProbability)
	}
	if len(p.FailureProbabilities) != NumStations {
		return fmt.Errorf("failure probability table must have exactly %d entries, got %d", NumStations, len(p.FailureProbabilities))
	}
	for i, fp := range p.FailureProbabilities {
		if fp < 0 || fp > 1 {
			return fmt.Errorf("failure probability for station %d must be in [0,1], got %v", i, fp)
		}
	}
	return nil
}

// Plant owns the six work stations, the shared restocker pool, and the
// replication's statistics, and generates product arrivals. Everything is
// created fresh per replication and discarded afterwards.
type Plant struct {
	sim    *Simulator
	params Params

	Stations   [NumStations]*WorkStation
	Restockers *Resource
	Stats      *PlantStatistics

	productCount int
	arrivalTime  ExponentialSampler
}

// NewPlant builds the plant for one replication and schedules the first
// product arrival.
func NewPlant(sim *Simulator, params Params) *Plant {
	p := &Plant{
		sim:         sim,
		params:      params,
		Restockers:  NewResource(params.Restockers),
		Stats:       &PlantStatistics{},
		arrivalTime: ExponentialSampler{Mean: params.ArrivalMean},
	}
	for i := range p.Stations {
		p.Stations[i] = newWorkStation(sim, i, params, p.Restockers, p.Stats)
	}
	p.scheduleNextArrival()
	return p
}

// ProductCount returns the number of products generated so far.
func (p *Plant) ProductCount() int {
	return p.productCount
}

func (p *Plant) scheduleNextArrival() {
	delay := p.arrivalTime.Sample(p.sim.Rand)
	p.sim.Schedule(&ArrivalEvent{time: p.sim.Clock + delay, Plant: p})
}

// arrive instantiates the next product, starts its process, and keeps the
// arrival stream going. Arrivals are unbounded; the horizon is the only
// thing that stops them.
func (p *Plant) arrive() {
	p.productCount++
	newProduct(p.productCount, p).start()
	p.scheduleNextArrival()
}

// RunReplication runs one complete replication with its own simulator and
// random stream and returns the derived report record.
func RunReplication(params Params, seed int64) ReportRecord {
	s := NewSimulator(params.Horizon, seed)
	plant := NewPlant(s, params)
	s.Run()
	return plant.Stats.Report(params.Horizon)
}
