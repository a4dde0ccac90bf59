// Tracks per-replication statistics for the manufacturing line.

package sim

// NumStations is the number of work stations on the line.
const NumStations = 6

// PlantStatistics aggregates the counters of one replication. It is owned
// by one Plant, mutated only by the single active continuation, and
// discarded after being read into a ReportRecord.
type PlantStatistics struct {
	Completed         int                  // Products finished and accepted
	Rejected          int                  // Products finished but failing final inspection
	BusyTime          [NumStations]float64 // Per-station processing time accumulated
	Failures          [NumStations]int     // Per-station failure events
	ResupplyWaits     [NumStations]int     // Per-station waits on exhausted raw material
	RepairTimes       []float64            // Duration of every repair across the run
	RestockerBusyTime float64              // Cumulative busy time of the restocking device
}

// ReportRecord is the per-replication output record, one CSV row.
type ReportRecord struct {
	Completed            int
	Utilization          [NumStations]float64 // busy time / horizon
	IdleTime             [NumStations]float64 // horizon - busy time
	TotalRepairTime      float64
	RestockerUtilization float64
	MeanRepairTime       float64 // 0 if no failures occurred
	MeanResupplyDelay    float64 // 0 if no resupply waits occurred
	DefectRate           float64 // rejected / completed, 0 if none completed
}

// Report derives the output record from the raw counters. The three mean
// metrics are defined as 0 when their denominator is 0.
func (st *PlantStatistics) Report(horizon float64) ReportRecord {
	rec := ReportRecord{Completed: st.Completed}

	for i := 0; i < NumStations; i++ {
		if horizon > 0 {
			rec.Utilization[i] = st.BusyTime[i] / horizon
		}
		rec.IdleTime[i] = horizon - st.BusyTime[i]
	}

	for _, r := range st.RepairTimes {
		rec.TotalRepairTime += r
	}
	if len(st.RepairTimes) > 0 {
		rec.MeanRepairTime = rec.TotalRepairTime / float64(len(st.RepairTimes))
	}

	if horizon > 0 {
		rec.RestockerUtilization = st.RestockerBusyTime / horizon
	}

	totalWaits := 0
	for _, w := range st.ResupplyWaits {
		totalWaits += w
	}
	if totalWaits > 0 {
		rec.MeanResupplyDelay = st.RestockerBusyTime / float64(totalWaits)
	}

	if st.Completed > 0 {
		rec.DefectRate = float64(st.Rejected) / float64(st.Completed)
	}

	return rec
}
