package controller

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/jorgelillo7/biwenger-tools/biwenger"
	"github.com/jorgelillo7/biwenger-tools/model"
	"github.com/jorgelillo7/biwenger-tools/notify"
	"github.com/jorgelillo7/biwenger-tools/scrapers"
	"github.com/jorgelillo7/biwenger-tools/storage"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// SyncBoard runs one board ingestion: load persisted messages, pull
	// every board page, merge the new ones in and persist the updated
	// datasets. Returns the number of newly ingested messages.
	SyncBoard(ctx context.Context) (int, error)
	RunPeriodicBoardSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	// AnalyzeSquads builds the enriched squad export for every manager
	// in the league and persists it.
	AnalyzeSquads(ctx context.Context) ([]model.SquadRow, error)

	GetMessages(ctx context.Context) ([]model.Message, error)
	GetParticipation(ctx context.Context) ([]*model.ParticipationRecord, error)
	GetPalmares(ctx context.Context) ([]model.SeasonPalmares, error)
	Status() Status
}

// Status is a snapshot of the controller's last completed sync.
type Status struct {
	LastSync     time.Time
	MessageCount int
	NewMessages  int
}

type controller struct {
	clock     clock.Clock
	biwenger  biwenger.Client
	analytics scrapers.AnalyticsClient
	tips      scrapers.TipsClient
	store     storage.Store
	notifier  notify.Notifier // may be nil, notifications are optional

	mu     sync.Mutex
	status Status
}

func New(clock clock.Clock, bw biwenger.Client, analytics scrapers.AnalyticsClient, tips scrapers.TipsClient, store storage.Store, notifier notify.Notifier) (C, error) {
	c := &controller{
		clock:     clock,
		biwenger:  bw,
		analytics: analytics,
		tips:      tips,
		store:     store,
		notifier:  notifier,
	}
	return c, nil
}

func (c *controller) GetMessages(ctx context.Context) ([]model.Message, error) {
	messages, err := c.store.LoadMessages(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	return messages, err
}

func (c *controller) GetParticipation(ctx context.Context) ([]*model.ParticipationRecord, error) {
	records, err := c.store.LoadParticipation(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	return records, err
}

func (c *controller) GetPalmares(ctx context.Context) ([]model.SeasonPalmares, error) {
	entries, err := c.store.LoadPalmares(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return groupPalmares(entries), nil
}

// groupPalmares folds the flat honours rows into one block per season,
// most recent season first. Empty or malformed rows are skipped.
func groupPalmares(entries []model.PalmaresEntry) []model.SeasonPalmares {
	bySeason := make(map[string]*model.SeasonPalmares)
	var seasons []string

	for _, e := range entries {
		if e.Season == "" || e.Category == "" {
			continue
		}
		sp, ok := bySeason[e.Season]
		if !ok {
			sp = &model.SeasonPalmares{Season: e.Season}
			bySeason[e.Season] = sp
			seasons = append(seasons, e.Season)
		}
		if model.IsOtherCategory(e.Category) {
			sp.Others = append(sp.Others, e)
		} else {
			sp.Honors = append(sp.Honors, e)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(seasons)))
	result := make([]model.SeasonPalmares, 0, len(seasons))
	for _, s := range seasons {
		result = append(result, *bySeason[s])
	}
	return result
}

func (c *controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *controller) setStatus(messageCount, newMessages int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = Status{
		LastSync:     c.clock.Now(),
		MessageCount: messageCount,
		NewMessages:  newMessages,
	}
}
