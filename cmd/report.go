package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Migue0802/SG2-Team2/sim"
)

// reportHeader lists the output columns, one row per replication.
var reportHeader = []string{
	"completed",
	"utilization_0", "utilization_1", "utilization_2", "utilization_3", "utilization_4", "utilization_5",
	"idle_0", "idle_1", "idle_2", "idle_3", "idle_4", "idle_5",
	"total_repair_time",
	"restocker_utilization",
	"mean_repair_time",
	"mean_resupply_delay",
	"defect_rate",
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func recordRow(rec sim.ReportRecord) []string {
	row := make([]string, 0, len(reportHeader))
	row = append(row, strconv.Itoa(rec.Completed))
	for i := 0; i < sim.NumStations; i++ {
		row = append(row, formatFloat(rec.Utilization[i]))
	}
	for i := 0; i < sim.NumStations; i++ {
		row = append(row, formatFloat(rec.IdleTime[i]))
	}
	row = append(row,
		formatFloat(rec.TotalRepairTime),
		formatFloat(rec.RestockerUtilization),
		formatFloat(rec.MeanRepairTime),
		formatFloat(rec.MeanResupplyDelay),
		formatFloat(rec.DefectRate),
	)
	return row
}

// WriteCSV writes the per-replication records to path, header first.
func WriteCSV(path string, records []sim.ReportRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(reportHeader); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(recordRow(rec)); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

// Summary holds means across replications for the console report.
type Summary struct {
	Replications      int
	MeanCompleted     float64
	MeanUtilization   [sim.NumStations]float64
	MeanRepairTime    float64
	MeanResupplyDelay float64
	MeanDefectRate    float64
	MeanRestockerUtil float64
}

// Summarize averages the per-replication records.
func Summarize(records []sim.ReportRecord) Summary {
	s := Summary{Replications: len(records)}
	if len(records) == 0 {
		return s
	}
	n := float64(len(records))
	for _, rec := range records {
		s.MeanCompleted += float64(rec.Completed)
		for i := 0; i < sim.NumStations; i++ {
			s.MeanUtilization[i] += rec.Utilization[i]
		}
		s.MeanRepairTime += rec.MeanRepairTime
		s.MeanResupplyDelay += rec.MeanResupplyDelay
		s.MeanDefectRate += rec.DefectRate
		s.MeanRestockerUtil += rec.RestockerUtilization
	}
	s.MeanCompleted /= n
	for i := 0; i < sim.NumStations; i++ {
		s.MeanUtilization[i] /= n
	}
	s.MeanRepairTime /= n
	s.MeanResupplyDelay /= n
	s.MeanDefectRate /= n
	s.MeanRestockerUtil /= n
	return s
}

// Print displays the aggregated summary at the end of the run.
func (s Summary) Print() {
	fmt.Println("=== Simulation Summary ===")
	fmt.Printf("Replications           : %d\n", s.Replications)
	fmt.Printf("Mean completed products: %.2f\n", s.MeanCompleted)
	for i := 0; i < sim.NumStations; i++ {
		fmt.Printf("Mean utilization st. %d : %.4f\n", i, s.MeanUtilization[i])
	}
	fmt.Printf("Mean repair time       : %.4f\n", s.MeanRepairTime)
	fmt.Printf("Mean resupply delay    : %.4f\n", s.MeanResupplyDelay)
	fmt.Printf("Restocker utilization  : %.4f\n", s.MeanRestockerUtil)
	fmt.Printf("Mean defect rate       : %.4f\n", s.MeanDefectRate)
}
