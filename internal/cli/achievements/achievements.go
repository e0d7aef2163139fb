package achievements

import (
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/habitual/internal/achievement"
	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/models"
)

type AchievementsCmd struct {
	List      AchievementsListCmd      `cmd:"" help:"List unlocked achievements." default:"1"`
	Celebrate AchievementsCelebrateCmd `cmd:"" help:"Show and clear the queue of new achievements."`
	Check     AchievementsCheckCmd     `cmd:"" help:"Re-evaluate achievements for a habit."`
}

type AchievementsListCmd struct {
	Habit string `arg:"" optional:"" help:"Habit name or ID (default: all habits)."`
}

func (c *AchievementsListCmd) Run(ctx *cli.Context) error {
	list, err := ctx.Tracker.Achievements(c.Habit)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		ctx.Println("No achievements yet. Keep logging!")
		return nil
	}

	names, err := habitNames(ctx)
	if err != nil {
		return err
	}
	now := ctx.Clock.Now()
	for _, a := range list {
		printAchievement(ctx, a, names[a.HabitID])
		ctx.Printf("     %s\n", cli.Paint(cli.MutedStyle, "unlocked "+humanize.RelTime(a.UnlockedAt, now, "ago", "from now")))
	}
	return nil
}

type AchievementsCelebrateCmd struct{}

func (c *AchievementsCelebrateCmd) Run(ctx *cli.Context) error {
	queue, err := ctx.Tracker.CelebrateAll()
	if err != nil {
		return err
	}
	if len(queue) == 0 {
		ctx.Println("Nothing new to celebrate.")
		return nil
	}

	names, err := habitNames(ctx)
	if err != nil {
		return err
	}
	settings, err := ctx.Tracker.Settings()
	if err != nil {
		return err
	}
	if settings.ConfettiEnabled {
		ctx.Println("🎉 🎊 🎉 🎊 🎉")
	}
	for _, a := range queue {
		printAchievement(ctx, a, names[a.HabitID])
	}
	ctx.Printf("\n%s new %s celebrated.\n", humanize.Comma(int64(len(queue))), plural(len(queue), "achievement", "achievements"))
	return nil
}

type AchievementsCheckCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
}

func (c *AchievementsCheckCmd) Run(ctx *cli.Context) error {
	unlocked, err := ctx.Tracker.CheckAchievements(c.Habit)
	if err != nil {
		return err
	}
	if len(unlocked) == 0 {
		ctx.Println("No new achievements.")
		return nil
	}
	names, err := habitNames(ctx)
	if err != nil {
		return err
	}
	for _, a := range unlocked {
		printAchievement(ctx, a, names[a.HabitID])
	}
	return nil
}

func printAchievement(ctx *cli.Context, a models.Achievement, habitName string) {
	ctx.Printf("%s  %s  %s\n", achievement.Icon(a), cli.Paint(cli.TitleStyle, achievement.Title(a)), cli.Paint(cli.MutedStyle, habitName))
	if d := achievement.Description(a); d != "" {
		ctx.Printf("     %s\n", d)
	}
}

func habitNames(ctx *cli.Context) (map[string]string, error) {
	habits, err := ctx.Tracker.Habits(true)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(habits))
	for _, h := range habits {
		names[h.ID] = h.Name
	}
	return names, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
