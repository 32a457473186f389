package qotd

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/guildbot/pkg/domain"
)

// Clock abstracts time for the scheduler
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// NextFire returns today at hour:minute in loc when now is strictly before it, otherwise tomorrow
func NextFire(now time.Time, hour, minute int, loc *time.Location) time.Time {
	local := now.In(loc)
	target := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if local.Before(target) {
		return target
	}
	return time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
}

type state int

const (
	stateComputing state = iota
	stateWaiting
	statePosting
	stateBackoff
)

func (s state) String() string {
	switch s {
	case stateComputing:
		return "computing-next-fire"
	case stateWaiting:
		return "waiting"
	case statePosting:
		return "posting"
	case stateBackoff:
		return "error-backoff"
	}
	return "unknown"
}

// Config holds scheduler timing
type Config struct {
	Hour          int
	Minute        int
	Location      *time.Location
	RetryInterval time.Duration
	Clock         Clock
}

// Scheduler posts the question of the day to every enabled guild once a day
type Scheduler struct {
	poster   *Poster
	pub      Publisher
	gate     Gate
	settings Settings

	hour, minute int
	loc          *time.Location
	retry        time.Duration
	clock        Clock

	wg     sync.WaitGroup
	cancel context.CancelFunc

	mu     sync.RWMutex
	status Status
}

// Status is a snapshot of the scheduler loop
type Status struct {
	State    string    `json:"state"`
	NextFire time.Time `json:"next_fire"`
	LastFire time.Time `json:"last_fire"`
}

// NewScheduler makes a scheduler. Hour and Minute are used as given, 00:00 included;
// nil location falls back to America/New_York and zero retry to 1h.
func NewScheduler(poster *Poster, pub Publisher, gate Gate, settings Settings, cfg Config) *Scheduler {
	if cfg.Location == nil {
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			loc = time.UTC
		}
		cfg.Location = loc
	}
	if cfg.RetryInterval == 0 {
		cfg.RetryInterval = time.Hour
	}
	if cfg.Clock == nil {
		cfg.Clock = realClock{}
	}
	return &Scheduler{
		poster:   poster,
		pub:      pub,
		gate:     gate,
		settings: settings,
		hour:     cfg.Hour,
		minute:   cfg.Minute,
		loc:      cfg.Location,
		retry:    cfg.RetryInterval,
		clock:    cfg.Clock,
	}
}

// Start runs the scheduler in background
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			lgr.Printf("[WARN] qotd scheduler terminated: %v", err)
		}
	}()
	lgr.Printf("[INFO] qotd scheduler started, daily at %02d:%02d %s", s.hour, s.minute, s.loc)
}

// Stop cancels the scheduler and waits for it
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping qotd scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] qotd scheduler stopped")
}

// Run loops until ctx is canceled. Cancellation is observed while waiting for the next fire
// time or for the backoff, a posting cycle in progress runs to completion.
func (s *Scheduler) Run(ctx context.Context) error {
	st := stateComputing
	var next, last time.Time
	for {
		s.track(st, next, last)
		switch st {
		case stateComputing:
			next = NextFire(s.clock.Now(), s.hour, s.minute, s.loc)
			if !last.IsZero() && !next.After(last) {
				// timer fired a bit early, don't post twice for the same slot
				next = NextFire(last, s.hour, s.minute, s.loc)
			}
			lgr.Printf("[DEBUG] qotd next fire at %s", next.Format(time.RFC3339))
			st = stateWaiting

		case stateWaiting:
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.clock.After(next.Sub(s.clock.Now())):
				st = statePosting
			}

		case statePosting:
			last = next
			if err := s.PostAll(ctx); err != nil {
				lgr.Printf("[ERROR] qotd cycle failed, retry in %s: %v", s.retry, err)
				st = stateBackoff
				continue
			}
			st = stateComputing

		case stateBackoff:
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.clock.After(s.retry):
				st = stateComputing
			}
		}
	}
}

// Status returns the current state with the next and the last fire times
func (s *Scheduler) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Scheduler) track(st state, next, last time.Time) {
	lgr.Printf("[DEBUG] qotd scheduler state %s", st)
	s.mu.Lock()
	s.status = Status{State: st.String(), NextFire: next, LastFire: last}
	s.mu.Unlock()
}

// PostAll posts to every guild with qotd enabled. Per-guild failures are logged and skipped,
// only failing to list guilds is returned.
func (s *Scheduler) PostAll(ctx context.Context) error {
	guilds, err := s.pub.Guilds(ctx)
	if err != nil {
		return fmt.Errorf("list guilds: %w", err)
	}
	posted := 0
	for _, g := range guilds {
		ok, err := s.postGuild(ctx, g)
		if err != nil {
			lgr.Printf("[WARN] qotd for guild %s failed: %v", g, err)
			continue
		}
		if ok {
			posted++
		}
	}
	lgr.Printf("[INFO] qotd cycle done, posted to %d of %d guilds", posted, len(guilds))
	return nil
}

func (s *Scheduler) postGuild(ctx context.Context, guildID string) (bool, error) {
	enabled, err := s.gate.Enabled(ctx, guildID, domain.FeatureQOTD)
	if err != nil {
		return false, fmt.Errorf("check feature: %w", err)
	}
	if !enabled {
		lgr.Printf("[DEBUG] qotd disabled for guild %s", guildID)
		return false, nil
	}

	channelID, err := s.channelFor(ctx, guildID)
	if err != nil {
		return false, err
	}
	if channelID == "" {
		lgr.Printf("[INFO] no text channel for qotd in guild %s, skipped", guildID)
		return false, nil
	}

	if _, err := s.poster.Post(ctx, channelID); err != nil {
		return false, err
	}
	return true, nil
}

// channelFor returns the configured channel when it still exists, otherwise the guild's default channel
func (s *Scheduler) channelFor(ctx context.Context, guildID string) (string, error) {
	v, ok, err := s.settings.GetConfig(ctx, guildID, domain.QOTDChannelKey)
	if err != nil {
		return "", fmt.Errorf("get qotd channel: %w", err)
	}
	if ok {
		if id, isStr := v.(string); isStr && id != "" {
			if s.pub.ChannelExists(ctx, id) {
				return id, nil
			}
			lgr.Printf("[INFO] configured qotd channel %s is gone in guild %s, using fallback", id, guildID)
		}
	}

	id, err := s.pub.DefaultChannel(ctx, guildID)
	if err != nil {
		return "", fmt.Errorf("default channel: %w", err)
	}
	if id != "" {
		lgr.Printf("[INFO] qotd for guild %s falls back to channel %s", guildID, id)
	}
	return id, nil
}
