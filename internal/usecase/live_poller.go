package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/notify"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
)

const defaultLivePollInterval = 30 * time.Second

// NoticePublisher receives user-facing notices.
type NoticePublisher interface {
	Publish(level notify.Level, message string) notify.Notice
}

type liveScore struct {
	home, away int
}

// LivePoller refreshes live fixtures on an interval and publishes a notice
// whenever a tracked fixture's score changes.
type LivePoller struct {
	fixtureRepo fixture.Repository
	publisher   NoticePublisher
	interval    time.Duration
	logger      *logging.Logger

	scores map[int64]liveScore
	primed bool
}

func NewLivePoller(fixtureRepo fixture.Repository, publisher NoticePublisher, interval time.Duration, logger *logging.Logger) *LivePoller {
	if interval <= 0 {
		interval = defaultLivePollInterval
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LivePoller{
		fixtureRepo: fixtureRepo,
		publisher:   publisher,
		interval:    interval,
		logger:      logger.Named("live_poller"),
		scores:      make(map[int64]liveScore),
	}
}

// Run polls until ctx is cancelled. Poll failures are logged and retried on
// the next tick.
func (p *LivePoller) Run(ctx context.Context) {
	p.logger.InfoContext(ctx, "live poller started", "interval", p.interval.String())
	defer p.logger.InfoContext(ctx, "live poller stopped")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if err := p.Poll(ctx); err != nil && ctx.Err() == nil {
			p.logger.WarnContext(ctx, "live poll failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Poll takes one snapshot of live fixtures. The first snapshot only records
// scores; later snapshots publish one notice per changed score.
func (p *LivePoller) Poll(ctx context.Context) error {
	items, err := p.fixtureRepo.LiveFixtures(ctx)
	if err != nil {
		return err
	}

	next := make(map[int64]liveScore, len(items))
	for _, f := range items {
		if !f.IsLive() {
			continue
		}
		score := liveScore{home: goalsOf(f.Goals.Home), away: goalsOf(f.Goals.Away)}
		next[f.ID] = score

		prev, seen := p.scores[f.ID]
		if !p.primed || (seen && prev == score) {
			continue
		}
		if !seen && score == (liveScore{}) {
			continue
		}
		p.publisher.Publish(notify.LevelInfo, scoreNotice(f, score))
	}
	p.scores = next
	p.primed = true
	return nil
}

func scoreNotice(f fixture.Fixture, score liveScore) string {
	return fmt.Sprintf("%s %d-%d %s (%s)", f.Home.Name, score.home, score.away, f.Away.Name, f.Clock())
}

func goalsOf(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
