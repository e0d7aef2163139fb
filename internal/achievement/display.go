package achievement

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/models"
)

// Title returns the headline shown when an achievement is celebrated.
func Title(a models.Achievement) string {
	switch a.Type {
	case models.AchievementFirstCompletion:
		return "First Step!"
	case models.AchievementStreak:
		return fmt.Sprintf("%d-Day Streak!", a.Milestone)
	case models.AchievementTotal:
		return fmt.Sprintf("%d Completions!", a.Milestone)
	case models.AchievementPerfectWeek:
		return "Perfect Week!"
	case models.AchievementPerfectMonth:
		return "Perfect Month!"
	default:
		return "Achievement Unlocked!"
	}
}

// Description returns the one-line message shown under an achievement's title.
func Description(a models.Achievement) string {
	switch a.Type {
	case models.AchievementFirstCompletion:
		return "Completed your first day!"
	case models.AchievementStreak:
		switch a.Milestone {
		case 7:
			return "One week strong!"
		case 21:
			return "Habit formed!"
		case 30:
			return "One month milestone!"
		case 90:
			return "Quarter year achieved!"
		case 365:
			return "Full year completed!"
		default:
			return fmt.Sprintf("%d days in a row!", a.Milestone)
		}
	case models.AchievementTotal:
		return fmt.Sprintf("Reached %d total completions!", a.Milestone)
	case models.AchievementPerfectWeek:
		return "Completed all scheduled days this week!"
	case models.AchievementPerfectMonth:
		return "Completed all scheduled days this month!"
	default:
		return ""
	}
}

// Icon returns the emoji for an achievement's type.
func Icon(a models.Achievement) string {
	switch a.Type {
	case models.AchievementFirstCompletion:
		return "🎉"
	case models.AchievementStreak:
		switch {
		case a.Milestone >= 365:
			return "👑"
		case a.Milestone >= 90:
			return "💎"
		case a.Milestone >= 30:
			return "⭐"
		case a.Milestone >= 7:
			return "🔥"
		default:
			return "✨"
		}
	case models.AchievementTotal:
		switch {
		case a.Milestone >= 1000:
			return "🏆"
		case a.Milestone >= 500:
			return "🥇"
		case a.Milestone >= 100:
			return "🥈"
		default:
			return "🥉"
		}
	case models.AchievementPerfectWeek:
		return "📅"
	case models.AchievementPerfectMonth:
		return "📆"
	default:
		return "🎯"
	}
}
