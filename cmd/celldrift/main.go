package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/kvat/celldrift/internal/config"
	"github.com/kvat/celldrift/internal/metrics"
	"github.com/kvat/celldrift/internal/run"
	"github.com/kvat/celldrift/internal/store"
	"github.com/kvat/celldrift/internal/viz"
)

var (
	dataDir     string
	dt          float64
	duration    float64
	count       int
	seed        int64
	sampleEvery int
	configFile  string
	particleIdx int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "celldrift",
		Short: "cell-based particle physics lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".celldrift", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().IntVar(&count, "count", config.DefaultCount, "number of particles")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().IntVar(&sampleEvery, "sample", 1, "record every n-th step")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot one particle's trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index to plot")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the stepping loop",
		RunE:  benchStep,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run a scenario with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	liveCmd.Flags().IntVar(&count, "count", config.DefaultCount, "number of particles")
	liveCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, benchCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	preset := ""
	if len(args) > 0 {
		preset = args[0]
	}

	cfg, scenario, err := applyConfig(preset, configFile)
	if err != nil {
		return err
	}

	// CLI flags override preset and config file values
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("count") {
		cfg.Particles.Count = count
	}
	if cmd.Flags().Changed("sample") {
		cfg.SampleEvery = sampleEvery
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sim, _, err := buildScene(cfg, seed)
	if err != nil {
		return err
	}

	runner := run.New(sim)
	runner.AddMetric(metrics.NewKineticEnergy())
	runner.AddMetric(metrics.NewMaxSpeed())
	runner.AddMetric(metrics.NewSpread())

	rcfg := run.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		Seed:          seed,
		SampleEvery:   cfg.SampleEvery,
		ValidateState: true,
	}

	fmt.Printf("running %s scenario (%d particles)...\n", scenario, sim.Len())
	start := time.Now()

	result, err := runner.Run(context.Background(), rcfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	for _, runErr := range result.Errors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", runErr)
	}

	runID, err := st.Save(scenario, rcfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d (moved %d, blocked %d)\n",
		result.StepsTaken, result.Moved, result.Blocked)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT\tPARTICLES\tBLOCKED")

	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\t%d\n",
			r.ID,
			r.Scenario,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Duration,
			r.Dt,
			r.Particles,
			r.Blocked,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	rows, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	if particleIdx < 0 || particleIdx >= meta.Particles {
		return fmt.Errorf("particle index %d out of range [0,%d)", particleIdx, meta.Particles)
	}

	var height, speed []float64
	for _, row := range rows {
		if row.Particle != particleIdx {
			continue
		}
		height = append(height, row.Z)
		speed = append(speed, math.Sqrt(row.VX*row.VX+row.VY*row.VY+row.VZ*row.VZ))
	}

	if len(height) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("particle: %d, samples: %d\n\n", particleIdx, len(height))

	fmt.Println(asciigraph.Plot(height,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("z (height)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(speed,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("speed"),
	))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "trajectory: %s\n", st.TrajectoryPath(runID))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func benchStep(cmd *cobra.Command, args []string) error {
	counts := []int{10, 100, 1000, 5000}
	const (
		steps  = 500
		trials = 5
	)

	fmt.Printf("benchmarking stepping loop (%d steps per trial, %d trials)\n\n", steps, trials)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLES\tSTEPS/SEC\tSTDDEV\tNS/PARTICLE-STEP")

	for _, n := range counts {
		cfg := config.DefaultConfig()
		cfg.Particles.Count = n

		rates := make([]float64, trials)
		for trial := 0; trial < trials; trial++ {
			sim, _, err := buildScene(cfg, 42)
			if err != nil {
				return err
			}

			start := time.Now()
			for i := 0; i < steps; i++ {
				sim.Update(cfg.Dt)
			}
			elapsed := time.Since(start)
			rates[trial] = steps / elapsed.Seconds()
		}

		mean := stat.Mean(rates, nil)
		sd := stat.StdDev(rates, nil)
		perParticle := 1e9 / (mean * float64(n))

		fmt.Fprintf(w, "%d\t%.0f\t%.0f\t%.0f\n", n, mean, sd, perParticle)
	}

	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWORLD\tPARTICLES\tDURATION")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%d\t%.1fs\n",
			name, p.World.Kind, p.Particles.Count, p.Duration)
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	preset := ""
	if len(args) > 0 {
		preset = args[0]
	}

	cfg, scenario, err := applyConfig(preset, configFile)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("count") {
		cfg.Particles.Count = count
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}

	sim, grid, err := buildScene(cfg, seed)
	if err != nil {
		return err
	}

	return viz.RunLive(sim, grid, cfg.Dt, scenario)
}
