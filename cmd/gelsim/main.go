package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gelsim/internal/analysis"
	"github.com/san-kum/gelsim/internal/config"
	"github.com/san-kum/gelsim/internal/gel"
	"github.com/san-kum/gelsim/internal/storage"
	"github.com/san-kum/gelsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	presetName string
	voltage    int
	simTime    float64
	fps        int
)

// main registers commands and flags; with no subcommand the interactive
// TUI is launched. The process exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "gelsim",
		Short: "educational gel electrophoresis simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gelsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a timed gel headlessly and save the result",
		RunE:  runGel,
	}
	runCmd.Flags().StringVar(&presetName, "preset", "100bp", "sample preset")
	runCmd.Flags().IntVar(&voltage, "voltage", 0, "applied voltage (0 = config default)")
	runCmd.Flags().Float64Var(&simTime, "time", 10.0, "run duration in simulated seconds")
	runCmd.Flags().IntVar(&fps, "fps", 60, "motion updates per simulated second")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot band migration over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "estimate band sizes from final migration distance",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export band positions to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list sample presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLANES\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%s\n", p.Name, len(p.Lanes), p.Description)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// runGel drives the controller through a fixed-step frame loop, sampling
// band positions once per simulated second.
func runGel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if voltage != 0 {
		cfg.Voltage = voltage
	}
	if fps <= 0 {
		fps = 60
	}

	lanes := cfg.Lanes
	if len(lanes) == 0 {
		preset := config.GetPreset(presetName)
		if preset == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
		lanes = preset.Lanes
	}

	reg := gel.NewRegistry(cfg.Gel.WellOffset)
	ctrl := gel.NewController(reg, gel.Params{
		TravelLimit: cfg.TravelLimit(),
		Voltage:     cfg.Voltage,
		MinVoltage:  cfg.MinVoltage,
		MaxVoltage:  cfg.MaxVoltage,
	})
	ctrl.LoadLanes(viz.LaneDefs(lanes))

	if err := ctrl.Start(); err != nil {
		return err
	}

	snapshot := func(t float64) storage.Sample {
		frags := ctrl.Fragments()
		positions := make([]float64, len(frags))
		for i, f := range frags {
			positions[i] = f.Position
		}
		return storage.Sample{Time: t, Positions: positions}
	}

	dt := 1.0 / float64(fps)
	samples := []storage.Sample{snapshot(0)}
	steps := int(simTime * float64(fps))
	for i := 1; i <= steps; i++ {
		ctrl.Advance(dt)
		if i%fps == 0 {
			ctrl.TickSecond()
			samples = append(samples, snapshot(float64(i)*dt))
		}
	}
	ctrl.Pause()

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(presetName, ctrl.Voltage(), simTime, ctrl.Fragments(), samples)
	if err != nil {
		return err
	}

	fmt.Printf("ran %s gel for %s at %dV\n", presetName, gel.FormatClock(ctrl.Elapsed()), ctrl.Voltage())
	fmt.Printf("run id: %s\n\n", runID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LANE\tSIZE\tDISTANCE\tRF\tDONE")
	for _, f := range ctrl.Fragments() {
		travel := f.Position - cfg.Gel.WellOffset
		rf := travel / (cfg.TravelLimit() - cfg.Gel.WellOffset)
		done := ""
		if f.Finished {
			done = "yes"
		}
		fmt.Fprintf(w, "%d\t%d bp\t%.1f\t%.2f\t%s\n", f.Lane, f.SizeBP, travel, rf, done)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tDURATION\tVOLTAGE\tBANDS\tDONE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fs\t%dV\t%d\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Voltage,
			run.Fragments,
			run.Finished,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	ids, samples, err := st.LoadBands(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s, %dV\n", meta.Preset, meta.Voltage)
	fmt.Printf("samples: %d\n\n", len(samples))

	maxPlots := 6
	numBands := len(ids)
	if numBands > maxPlots {
		numBands = maxPlots
	}

	for band := 0; band < numBands; band++ {
		data := make([]float64, len(samples))
		for i := range samples {
			if band < len(samples[i].Positions) {
				data[i] = samples[i].Positions[band]
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption(ids[band]+" position vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	ids, samples, err := st.LoadBands(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	final := samples[len(samples)-1]
	fmt.Printf("size estimates: %s (%dV, %.1fs)\n\n", meta.ID, meta.Voltage, meta.Duration)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BAND\tDISTANCE\tEST SIZE")
	for i, id := range ids {
		if i >= len(final.Positions) {
			break
		}
		travel := final.Positions[i] - cfg.Gel.WellOffset
		size, err := analysis.EstimateSize(travel, meta.Voltage, final.Time)
		if err != nil {
			fmt.Fprintf(w, "%s\t%.1f\t-\n", id, travel)
			continue
		}
		fmt.Fprintf(w, "%s\t%.1f\t%.0f bp\n", id, travel, size)
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	ids, samples, err := st.LoadBands(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := append([]string{"time"}, ids...)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, sample := range samples {
		row := []string{strconv.FormatFloat(sample.Time, 'f', 2, 64)}
		for _, pos := range sample.Positions {
			row = append(row, strconv.FormatFloat(pos, 'f', 4, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	ids, samples, err := st.LoadBands(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, ids, samples)
}
