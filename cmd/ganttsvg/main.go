package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gantt-planner/internal/chart"
	"gantt-planner/internal/chart/svg"
	"gantt-planner/internal/plan"
	"gantt-planner/pkg/datemath"
	"gantt-planner/pkg/timegrid"
)

const dateFormat = "2006-01-02"

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ganttsvg",
		Short:   "Render Gantt chart SVGs from plan files",
		Long:    "ganttsvg turns a YAML plan file into a standalone Gantt chart SVG,\nwithout running the API server.",
		Version: "1.0.0",
	}

	rootCmd.AddCommand(buildRenderCommand())
	rootCmd.AddCommand(buildCheckCommand())

	return rootCmd
}

// renderOptions carries every render flag after parsing.
type renderOptions struct {
	planPath    string
	outPath     string
	granularity string
	width       float64
	at          string
	from        string
	to          string
	themePath   string
	timezone    string
}

func buildRenderCommand() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a plan file as an SVG chart",
		Long:  "Load a YAML plan file, lay its tasks out on the requested time window\nand write the chart as a standalone SVG document.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderPlan(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.planPath, "plan", "p", "", "plan YAML file")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "chart.svg", "output SVG file")
	cmd.Flags().StringVarP(&opts.granularity, "granularity", "g", "month", "window granularity: day, week, month, quarter, year")
	cmd.Flags().Float64VarP(&opts.width, "width", "w", 1280, "chart width in pixels")
	cmd.Flags().StringVar(&opts.at, "at", "", "reference date the window derives from (YYYY-MM-DD or \"next monday\", default: today)")
	cmd.Flags().StringVar(&opts.from, "from", "", "window start for year granularity (YYYY-MM-DD or relative)")
	cmd.Flags().StringVar(&opts.to, "to", "", "window end for year granularity (YYYY-MM-DD or relative, exclusive)")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "theme YAML file overriding the default colors")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "", "IANA timezone overriding the plan's")
	cmd.MarkFlagRequired("plan")

	return cmd
}

func renderPlan(opts renderOptions) error {
	if opts.width <= 0 {
		return fmt.Errorf("width must be positive, got %g", opts.width)
	}

	result, err := plan.Load(opts.planPath)
	if err != nil {
		return err
	}

	// Flag beats the plan's own timezone.
	tz := opts.timezone
	if tz == "" {
		tz = result.Project.Timezone
	}
	grid, err := timegrid.New(tz)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	dates, err := datemath.NewParser(tz)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	view, at, err := resolveView(opts, dates)
	if err != nil {
		return err
	}

	w := grid.Resolve(view, at)
	if !w.End.After(w.Start) {
		return fmt.Errorf("resolved window is empty, check --from/--to")
	}

	out := chart.Compose(chart.ComposeInput{
		Window:    w,
		WidthPx:   opts.width,
		Ticks:     grid.Ticks(view, w, opts.width),
		Tasks:     result.Tasks,
		Vacations: result.Vacations,
	})

	theme := svg.DefaultTheme()
	if opts.themePath != "" {
		theme, err = svg.LoadTheme(opts.themePath)
		if err != nil {
			return err
		}
	}

	doc := svg.NewRenderer(theme).Render(out)
	if err := os.WriteFile(opts.outPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.outPath, err)
	}

	fmt.Printf("Rendered %q: %d of %d tasks visible between %s and %s\n",
		opts.outPath, len(out.Bars), len(result.Tasks),
		w.Start.Format(dateFormat), w.End.Format(dateFormat))
	return nil
}

// resolveView maps the granularity and date flags onto a chart view.
func resolveView(opts renderOptions, dates *datemath.Parser) (timegrid.View, time.Time, error) {
	view := timegrid.View{Granularity: timegrid.Granularity(opts.granularity)}

	switch view.Granularity {
	case timegrid.GranularityDay, timegrid.GranularityWeek,
		timegrid.GranularityMonth, timegrid.GranularityQuarter:
	case timegrid.GranularityYear:
		if opts.from == "" || opts.to == "" {
			return view, time.Time{}, fmt.Errorf("granularity year requires --from and --to")
		}
	default:
		return view, time.Time{}, fmt.Errorf("unknown granularity %q (want day, week, month, quarter or year)", opts.granularity)
	}

	now := time.Now()

	if opts.from != "" {
		start, err := dates.Parse(opts.from, now)
		if err != nil {
			return view, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
		}
		view.RefStart = start
	}
	if opts.to != "" {
		end, err := dates.Parse(opts.to, now)
		if err != nil {
			return view, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
		}
		view.RefEnd = end
	}

	at := now
	if opts.at != "" {
		parsed, err := dates.Parse(opts.at, now)
		if err != nil {
			return view, time.Time{}, fmt.Errorf("invalid --at date: %w", err)
		}
		at = parsed
	}

	return view, at, nil
}

func buildCheckCommand() *cobra.Command {
	var planPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a plan file and print its summary",
		Long:  "Parse a YAML plan file, report the first error if any, and print\nwhat a render would work with.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkPlan(planPath)
		},
	}

	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "plan YAML file")
	cmd.MarkFlagRequired("plan")

	return cmd
}

func checkPlan(path string) error {
	result, err := plan.Load(path)
	if err != nil {
		return err
	}

	var (
		earliest time.Time
		latest   time.Time
		entries  int
		logged   float64
	)
	for _, t := range result.Tasks {
		if earliest.IsZero() || t.StartDate.Before(earliest) {
			earliest = t.StartDate
		}
		if end := chart.EffectiveEnd(t); end.After(latest) {
			latest = end
		}
		entries += len(t.Entries)
		logged += t.LoggedHours()
	}

	fmt.Printf("Plan OK: %q (%s)\n", result.Project.Name, result.Project.ID)
	fmt.Printf("  Timezone:  %s\n", result.Project.Timezone)
	if len(result.Tasks) > 0 {
		fmt.Printf("  Tasks:     %d (%s to %s)\n", len(result.Tasks),
			earliest.Format(dateFormat), latest.Format(dateFormat))
	} else {
		fmt.Printf("  Tasks:     0\n")
	}
	fmt.Printf("  Entries:   %d (%.1fh logged)\n", entries, logged)
	fmt.Printf("  Vacations: %d\n", len(result.Vacations))
	return nil
}
