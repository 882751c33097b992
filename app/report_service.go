package app

import (
	"context"
	"math"
	"time"

	apperrors "focusflow/internal/errors"
	"focusflow/models"
	"focusflow/ports"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// Leaderboard limits: requested sizes are clamped into [1, 100].
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
	activeFeedLimit         = 20
	summaryWindowDays       = 30
)

// ReportService computes dashboard snapshots, weekly time series, leaderboards
// and rank from stored sessions. Read-mostly; every call recomputes from the
// current rows.
type ReportService struct {
	statsRepo    ports.StatsRepository
	sessions     ports.SessionRepository
	achievements ports.AchievementRepository
	reporting    ports.ReportingRepository

	now func() time.Time
}

// NewReportService creates a reporting service
func NewReportService(statsRepo ports.StatsRepository, sessions ports.SessionRepository, achievements ports.AchievementRepository, reporting ports.ReportingRepository) *ReportService {
	return &ReportService{
		statsRepo:    statsRepo,
		sessions:     sessions,
		achievements: achievements,
		reporting:    reporting,
		now:          time.Now,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GetDashboard assembles the caller's dashboard: aggregates (created zeroed on
// first read), today's focus time, unlocked achievements and the full active
// catalog. The four reads are independent and fan out concurrently.
func (s *ReportService) GetDashboard(ctx context.Context, userID uuid.UUID) (*models.Dashboard, error) {
	now := s.now()
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	dashboard := &models.Dashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		userStats, err := s.statsRepo.GetOrCreateStats(gctx, userID)
		if err != nil {
			return apperrors.Wrap(err, "failed to load user stats")
		}
		dashboard.Stats = userStats
		return nil
	})
	g.Go(func() error {
		total, err := s.reporting.FocusTimeBetween(gctx, userID, today, tomorrow)
		if err != nil {
			return apperrors.Wrap(err, "failed to sum today's focus time")
		}
		dashboard.TodaysFocusTime = total
		return nil
	})
	g.Go(func() error {
		unlocked, err := s.achievements.ListForUser(gctx, userID)
		if err != nil {
			return apperrors.Wrap(err, "failed to load unlocked achievements")
		}
		dashboard.Achievements = unlocked
		return nil
	})
	g.Go(func() error {
		catalog, err := s.achievements.ListActive(gctx)
		if err != nil {
			return apperrors.Wrap(err, "failed to load achievement catalog")
		}
		dashboard.AllAchievements = catalog
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}

// GetWeeklyAnalytics returns one bucket per calendar day for the trailing
// seven days ending today, zero-filled for days with no completed sessions.
func (s *ReportService) GetWeeklyAnalytics(ctx context.Context, userID uuid.UUID) ([]models.DailyBucket, error) {
	now := s.now()
	windowStart := startOfDay(now).AddDate(0, 0, -6)

	sessions, err := s.sessions.CompletedSessionsSince(ctx, userID, windowStart)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load completed sessions")
	}

	// Buckets are produced from the 7-day window itself, not the session list,
	// so empty days are always present.
	buckets := make([]models.DailyBucket, 0, 7)
	for i := 0; i < 7; i++ {
		day := windowStart.AddDate(0, 0, i)
		bucket := models.DailyBucket{Date: day.Format("2006-01-02")}
		for _, session := range sessions {
			if session.StartedAt.In(now.Location()).Format("2006-01-02") != bucket.Date {
				continue
			}
			if session.ActualDuration != nil {
				bucket.TotalTime += *session.ActualDuration
			}
			bucket.SessionCount++
		}
		buckets = append(buckets, bucket)
	}

	return buckets, nil
}

// GetLeaderboard returns the public ranking for a period. Limit defaults to 10
// and is clamped into [1, 100].
func (s *ReportService) GetLeaderboard(ctx context.Context, period models.Period, limit int) ([]models.LeaderboardEntry, error) {
	if !period.Valid() {
		period = models.PeriodToday
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	return s.reporting.Leaderboard(ctx, period.Start(s.now()), limit)
}

// GetActiveSessions returns the community feed: the 20 most recently started
// sessions currently in status active.
func (s *ReportService) GetActiveSessions(ctx context.Context) ([]models.ActiveFeedEntry, error) {
	return s.sessions.ListRecentActive(ctx, activeFeedLimit)
}

// GetUserRank computes the caller's standing for a period: rank is one plus
// the number of other users with strictly more period time, percentile puts
// 100 at the top and is clamped into [0, 100].
func (s *ReportService) GetUserRank(ctx context.Context, userID uuid.UUID, period models.Period) (*models.UserRank, error) {
	if !period.Valid() {
		period = models.PeriodToday
	}
	since := period.Start(s.now())

	total, err := s.reporting.PeriodTotal(ctx, userID, since)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sum period focus time")
	}

	better, err := s.reporting.CountUsersAbove(ctx, userID, since, total)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to count better-ranked users")
	}
	rank := better + 1

	activeUsers, err := s.reporting.CountActiveUsers(ctx, since)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to count active users")
	}
	if activeUsers < 1 {
		activeUsers = 1
	}

	percentile := int(math.Round(float64(activeUsers-rank+1) / float64(activeUsers) * 100))
	if percentile < 0 {
		percentile = 0
	}
	if percentile > 100 {
		percentile = 100
	}

	return &models.UserRank{
		Rank:             rank,
		TotalTime:        total,
		Percentile:       percentile,
		TotalActiveUsers: activeUsers,
		Period:           period,
	}, nil
}

// GetFocusSummary computes descriptive statistics over the caller's completed
// session durations in the trailing 30 days.
func (s *ReportService) GetFocusSummary(ctx context.Context, userID uuid.UUID) (*models.FocusSummary, error) {
	since := startOfDay(s.now()).AddDate(0, 0, -summaryWindowDays)

	sessions, err := s.sessions.CompletedSessionsSince(ctx, userID, since)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load completed sessions")
	}

	durations := make(stats.Float64Data, 0, len(sessions))
	for _, session := range sessions {
		if session.ActualDuration != nil {
			durations = append(durations, float64(*session.ActualDuration))
		}
	}

	summary := &models.FocusSummary{SessionCount: len(durations)}
	if len(durations) == 0 {
		return summary, nil
	}

	if summary.Mean, err = durations.Mean(); err != nil {
		return nil, err
	}
	if summary.Median, err = durations.Median(); err != nil {
		return nil, err
	}
	if summary.StdDev, err = durations.StandardDeviation(); err != nil {
		return nil, err
	}
	if summary.P90, err = durations.Percentile(90); err != nil {
		return nil, err
	}

	return summary, nil
}
