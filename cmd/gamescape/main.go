package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/evoterm/gamescape/internal/catalog"
	"github.com/evoterm/gamescape/internal/config"
	"github.com/evoterm/gamescape/internal/dynamics"
	"github.com/evoterm/gamescape/internal/logger"
	"github.com/evoterm/gamescape/internal/render"
	"github.com/evoterm/gamescape/internal/sim"
	"github.com/evoterm/gamescape/internal/store"
	"github.com/evoterm/gamescape/internal/tui"
)

var (
	dataDir    string
	matrixFlag string
	noColor    bool
	saveRun    bool
	verbose    bool
	configFile string
	x0Flags    []float64
	x0Flag     float64
	dtFlag     float64
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gamescape",
		Short: "evolutionary game dynamics in your terminal",
		Long: `gamescape analyzes symmetric 2x2 games under replicator dynamics:
fixed points, stability, qualitative game type, and trajectories,
rendered as terminal text.`,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gamescape", "data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [game]",
		Short: "full analysis of a named or custom game",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVarP(&matrixFlag, "matrix", "m", "", "custom payoff matrix as 'a,b,c,d' (row-major: CC,CD,DC,DD)")
	analyzeCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	analyzeCmd.Flags().BoolVar(&saveRun, "save", false, "persist the analysis to the run history")
	analyzeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	gamesCmd := &cobra.Command{
		Use:   "games",
		Short: "list the classic games",
		RunE:  runGames,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [game]",
		Short: "trajectory plot only",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVarP(&matrixFlag, "matrix", "m", "", "custom payoff matrix as 'a,b,c,d'")
	plotCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	plotCmd.Flags().Float64SliceVar(&x0Flags, "x0", nil, "initial conditions (repeatable)")
	plotCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	liveCmd := &cobra.Command{
		Use:   "live [game]",
		Short: "watch one trajectory evolve along the phase line",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVarP(&matrixFlag, "matrix", "m", "", "custom payoff matrix as 'a,b,c,d'")
	liveCmd.Flags().Float64Var(&x0Flag, "x0", 0.3, "initial condition")
	liveCmd.Flags().Float64Var(&dtFlag, "dt", 0.01, "timestep")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved analyses",
		RunE:  runList,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved analysis as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's trajectory samples as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCSV,
	}

	runsCmd.AddCommand(showCmd, exportJSONCmd, exportCSVCmd)
	rootCmd.AddCommand(analyzeCmd, gamesCmd, plotCmd, liveCmd, runsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseMatrix turns 'a,b,c,d' into a payoff matrix.
func parseMatrix(s string) (dynamics.PayoffMatrix, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return dynamics.PayoffMatrix{}, fmt.Errorf("expected 4 comma-separated values (a,b,c,d), got %d", len(parts))
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return dynamics.PayoffMatrix{}, fmt.Errorf("non-numeric value in matrix: %q", p)
		}
		vals[i] = v
	}
	return dynamics.PayoffMatrix{A: vals[0], B: vals[1], C: vals[2], D: vals[3]}, nil
}

// resolveGame picks the matrix from --matrix or a named catalog entry.
func resolveGame(args []string) (dynamics.PayoffMatrix, string, error) {
	if matrixFlag != "" {
		m, err := parseMatrix(matrixFlag)
		if err != nil {
			return dynamics.PayoffMatrix{}, "", err
		}
		return m, "custom", nil
	}
	if len(args) == 1 {
		m, ok := catalog.Get(args[0])
		if !ok {
			return dynamics.PayoffMatrix{}, "", fmt.Errorf("unknown game: %s (available: %s)", args[0], strings.Join(catalog.Names(), ", "))
		}
		return m, args[0], nil
	}
	return dynamics.PayoffMatrix{}, "", fmt.Errorf("name a game or pass --matrix (see 'gamescape games')")
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.Load(configFile)
}

func newIntegrator(name string) sim.Integrator {
	if name == "rk4" {
		return sim.NewRK4()
	}
	return sim.NewEuler()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log, err := logger.New(verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	m, name, err := resolveGame(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log.Debug("analyzing game",
		zap.String("game", name),
		zap.Float64("a", m.A), zap.Float64("b", m.B),
		zap.Float64("c", m.C), zap.Float64("d", m.D))

	out, err := render.Analysis(m, name, newIntegrator(cfg.Integrator), render.Options{Color: !noColor, Cfg: cfg})
	if err != nil {
		return err
	}
	fmt.Println(out)

	if !saveRun {
		return nil
	}

	fps := dynamics.FindFixedPoints(m)
	cls, err := dynamics.Classify(fps)
	if err != nil {
		return err
	}

	simulator := sim.New(newIntegrator(cfg.Integrator))
	simCfg := sim.Config{Dt: cfg.Dt, Steps: cfg.Steps}
	trajs := make([]*sim.Trajectory, 0, len(cfg.Starts))
	for _, x0 := range cfg.Starts {
		tr, err := simulator.Run(m, x0, simCfg)
		if err != nil {
			return err
		}
		trajs = append(trajs, tr)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	runID, err := st.Save(name, m, cls, fps, trajs)
	if err != nil {
		return err
	}
	log.Debug("saved run", zap.String("id", runID))
	fmt.Printf("saved run: %s\n", runID)
	return nil
}

func runGames(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMATRIX\tCLASSIFICATION")
	for _, name := range catalog.Names() {
		m, _ := catalog.Get(name)
		cls, err := dynamics.ClassifyMatrix(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t[%.0f,%.0f,%.0f,%.0f]\t%s\n", name, m.A, m.B, m.C, m.D, cls)
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	m, _, err := resolveGame(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	starts := cfg.Starts
	if len(x0Flags) > 0 {
		starts = x0Flags
	}

	simulator := sim.New(newIntegrator(cfg.Integrator))
	simCfg := sim.Config{Dt: cfg.Dt, Steps: cfg.Steps}
	trajs := make([]*sim.Trajectory, 0, len(starts))
	for _, x0 := range starts {
		tr, err := simulator.Run(m, x0, simCfg)
		if err != nil {
			return err
		}
		trajs = append(trajs, tr)
	}

	st := render.ForColor(!noColor)
	fmt.Println(render.TrajectoryPlot(trajs, cfg.Plot.Width, cfg.Plot.Height, !noColor, st))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	m, name, err := resolveGame(args)
	if err != nil {
		return err
	}

	model, err := tui.NewModel(m, name, sim.NewEuler(), x0Flag, dtFlag, frameRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func openStore() (*store.Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return store.Open(filepath.Join(dataDir, "runs.db"))
}

func runList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tGAME\tMATRIX\tCLASSIFICATION\tTIME")
	for _, run := range runs {
		m := run.Matrix()
		fmt.Fprintf(w, "%s\t%s\t[%.1f,%.1f,%.1f,%.1f]\t%s\t%s\n",
			run.ID, run.Game, m.A, m.B, m.C, m.D,
			run.Classification,
			run.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.Load(args[0])
	if err != nil {
		return err
	}
	fps, err := run.FixedPoints()
	if err != nil {
		return err
	}

	styles := render.ForColor(!noColor)
	fmt.Printf("run: %s\ngame: %s\nclassification: %s\n\n", run.ID, run.Game, run.Classification)
	fmt.Println(render.PayoffTable(run.Matrix(), styles))
	fmt.Println()
	for _, fp := range fps {
		fmt.Println("  " + render.FixedPointLine(fp, styles))
	}
	fmt.Println()
	fmt.Println(render.FlowLine(run.Matrix(), config.DefaultFlowWidth, styles))
	return nil
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.Load(args[0])
	if err != nil {
		return err
	}
	fps, err := run.FixedPoints()
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	out := struct {
		ID             string                `json:"id"`
		Game           string                `json:"game"`
		Matrix         dynamics.PayoffMatrix `json:"matrix"`
		Classification string                `json:"classification"`
		FixedPoints    []dynamics.FixedPoint `json:"fixed_points"`
		Samples        []store.Sample        `json:"samples"`
	}{run.ID, run.Game, run.Matrix(), run.Classification, fps, samples}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no samples for run %s", args[0])
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"series", "time", "x"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.Itoa(s.Series),
			strconv.FormatFloat(s.T, 'f', 6, 64),
			strconv.FormatFloat(s.X, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
