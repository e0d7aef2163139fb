package reports

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/streak"
)

type StatsCmd struct {
	Habit string `arg:"" optional:"" help:"Habit name or ID (default: overview of all habits)."`
	Month string `short:"m" help:"Month for the heatmap as YYYY-MM (default: current month)."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	if c.Habit == "" {
		return c.overview(ctx)
	}

	var month time.Time
	if c.Month != "" {
		m, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q (expected YYYY-MM)", c.Month)
		}
		month = m
	}

	st, err := ctx.Tracker.Stats(c.Habit, month)
	if err != nil {
		return err
	}

	ctx.Println(cli.Paint(cli.TitleStyle, fmt.Sprintf("%s %s", st.Habit.Icon, st.Habit.Name)))
	printSummary(ctx, st.Summary)

	ctx.Println()
	ctx.Println(cli.Paint(cli.TitleStyle, "This week"))
	for _, p := range st.Week {
		day, _ := time.Parse("2006-01-02", p.Date)
		ctx.Printf("  %s %s %s\n", day.Format("Mon"), Bar(p.Percentage, 20), percent(p.Percentage))
	}

	ctx.Println()
	if len(st.Month) > 0 {
		ctx.Println(cli.Paint(cli.TitleStyle, st.Month[0].Date[:7]))
	}
	ctx.Print(RenderMonth(st.Month))
	return nil
}

func printSummary(ctx *cli.Context, s streak.Summary) {
	ctx.Printf("  Current streak:    %s\n", cli.Paint(cli.StreakStyle, fmt.Sprintf("%d", s.Current)))
	ctx.Printf("  Best streak:       %d\n", s.Best)
	ctx.Printf("  Total completions: %d\n", s.TotalCompletions)
	ctx.Printf("  Success rate:      %d%%\n", s.SuccessRate)
}

func (c *StatsCmd) overview(ctx *cli.Context) error {
	global, err := ctx.Tracker.Global()
	if err != nil {
		return err
	}
	ctx.Println(cli.Paint(cli.TitleStyle, "All habits"))
	ctx.Printf("  Habits:            %d\n", global.TotalHabits)
	ctx.Printf("  Total completions: %d\n", global.TotalCompletions)
	ctx.Printf("  This week:         %d\n", global.WeekCompletions)
	ctx.Printf("  This month:        %d\n", global.MonthCompletions)
	ctx.Printf("  This year:         %d\n", global.YearCompletions)

	habits, err := ctx.Tracker.Habits(false)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		return nil
	}
	ctx.Println()
	ctx.Printf("  %-24s %7s %5s %6s %5s\n", "Habit", "Current", "Best", "Total", "Rate")
	for _, h := range habits {
		s, err := ctx.Tracker.Summary(h.ID)
		if err != nil {
			return err
		}
		ctx.Printf("  %-24s %7d %5d %6d %4d%%\n", truncate(h.Name, 24), s.Current, s.Best, s.TotalCompletions, s.SuccessRate)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

type HeatmapCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Year  int    `short:"y" help:"Year to show (default: current year)."`
}

func (c *HeatmapCmd) Run(ctx *cli.Context) error {
	year := c.Year
	if year == 0 {
		year = ctx.Clock.Now().Year()
	}
	habit, grid, err := ctx.Tracker.YearlyHeatmap(c.Habit, year)
	if err != nil {
		return err
	}
	ctx.Println(cli.Paint(cli.TitleStyle, fmt.Sprintf("%s %s, %d", habit.Icon, habit.Name, year)))
	ctx.Print(RenderYear(grid))
	ctx.Printf("%s none  %s some  %s goal  %s skipped\n", cell(0), cell(2), cell(5), cell(6))
	return nil
}

type TrendCmd struct {
	Habit  string `arg:"" help:"Habit name or ID."`
	Days   int    `short:"d" help:"Number of days to look back." default:"30"`
	Window int    `short:"w" help:"Moving-average window (1 disables smoothing)." default:"7"`
}

func (c *TrendCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("--days must be at least 1")
	}
	if c.Window < 1 {
		return fmt.Errorf("--window must be at least 1")
	}
	return nil
}

func (c *TrendCmd) Run(ctx *cli.Context) error {
	habit, points, err := ctx.Tracker.Trend(c.Habit, c.Days, c.Window)
	if err != nil {
		return err
	}
	ctx.Println(cli.Paint(cli.TitleStyle, fmt.Sprintf("%s %s, last %d days", habit.Icon, habit.Name, c.Days)))
	if len(points) == 0 {
		ctx.Println("No logs in this period.")
		return nil
	}
	for _, p := range points {
		ctx.Printf("  %s %s %s\n", p.Date, Bar(p.Percentage, 30), percent(p.Percentage))
	}
	return nil
}
