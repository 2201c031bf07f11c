package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/freefall/internal/config"
	"github.com/san-kum/freefall/internal/export"
	"github.com/san-kum/freefall/internal/storage"
)

func newStore(cfg *config.Config) *storage.Store {
	return storage.New(cfg.DataDir)
}

// storeFor opens the run store of the resolved configuration, so a data_dir
// set in a config file is honored the same way drop --save honors it.
func storeFor(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return newStore(cfg), nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := storeFor(cmd)
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tBODY\tHEIGHT\tDURATION\tFRAMES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fm\t%.4fs\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Body,
			run.InitialHeight,
			run.FallDuration,
			run.Frames,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := storeFor(cmd)
	if err != nil {
		return err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	records, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(records) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("drop: %.1f m on %s (g = %.2f)\n", meta.InitialHeight, meta.Body, meta.Gravity)
	fmt.Printf("samples: %d\n\n", len(records))

	heights := make([]float64, len(records))
	velocities := make([]float64, len(records))
	for i, r := range records {
		heights[i] = r.Height
		velocities[i] = r.Velocity
	}

	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{heights, "height (m) vs frame"},
		{velocities, "velocity (m/s) vs frame"},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func chartRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := storeFor(cmd)
	if err != nil {
		return err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	records, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	s := export.Series{Title: fmt.Sprintf("Free fall from %.1f m (%s)", meta.InitialHeight, meta.Body)}
	for _, r := range records {
		s.Times = append(s.Times, r.Time)
		s.Heights = append(s.Heights, r.Height)
		s.Velocities = append(s.Velocities, r.Velocity)
	}

	path := outPath
	if path == "" {
		path = filepath.Join(st.Dir(), runID, "chart.png")
	}
	if err := export.SaveChartPNG(s, 8, 6, path); err != nil {
		return err
	}
	logger.Info("chart written", "path", path)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st, err := storeFor(cmd)
	if err != nil {
		return err
	}
	return st.ExportCSV(os.Stdout, args[0])
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st, err := storeFor(cmd)
	if err != nil {
		return err
	}
	return st.ExportJSON(os.Stdout, args[0])
}
