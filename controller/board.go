package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jorgelillo7/biwenger-tools/biwenger"
	"github.com/jorgelillo7/biwenger-tools/model"
	"github.com/jorgelillo7/biwenger-tools/storage"
)

// boardPageSize is the page size used when draining the board. The API
// caps pages at 200 entries.
const boardPageSize = 200

func (c *controller) SyncBoard(ctx context.Context) (int, error) {
	runID := uuid.NewString()
	start := time.Now()
	log.Printf("[sync %s] board sync starting at %v", runID, start.Format(time.DateTime))

	existing, err := c.store.LoadMessages(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return 0, fmt.Errorf("error loading persisted messages: %w", err)
		}
		log.Printf("[sync %s] no persisted messages yet, starting fresh", runID)
	}

	users, err := c.biwenger.GetLeagueUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("error fetching league users: %w", err)
	}

	incoming, err := fetchAllBoardMessages(ctx, c.biwenger, boardPageSize)
	if err != nil {
		return 0, fmt.Errorf("error fetching board messages: %w", err)
	}
	log.Printf("[sync %s] fetched %d board messages", runID, len(incoming))

	merged, newCount := mergeMessages(existing, incoming, users)
	if newCount == 0 {
		log.Printf("[sync %s] no new messages, nothing to persist, took %v", runID, time.Since(start))
		c.setStatus(len(merged), 0)
		return 0, nil
	}

	sortMessages(merged)
	if err := c.store.SaveMessages(ctx, merged); err != nil {
		return 0, fmt.Errorf("error saving messages: %w", err)
	}

	records := processParticipation(merged, users)
	if err := c.store.SaveParticipation(ctx, records); err != nil {
		return 0, fmt.Errorf("error saving participation: %w", err)
	}

	if c.notifier != nil {
		// Best effort, the sync already landed.
		msg := fmt.Sprintf("Nuevos comunicados en el tablón: %d (total %d).", newCount, len(merged))
		if err := c.notifier.SendMessage(ctx, msg); err != nil {
			log.Printf("[sync %s] error sending notification: %v", runID, err)
		}
	}

	log.Printf("[sync %s] found %d new messages (%d total), took %v", runID, newCount, len(merged), time.Since(start))
	c.setStatus(len(merged), newCount)
	return newCount, nil
}

func (c *controller) RunPeriodicBoardSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			if _, err := c.SyncBoard(ctx); err != nil {
				log.Printf("%v", err)
			}
		}
	}
}

// fetchAllBoardMessages drains the board page by page. A short page is
// the final one, so an exact-multiple board doesn't cost one extra
// empty request unless it ends exactly on a page boundary.
func fetchAllBoardMessages(ctx context.Context, client biwenger.Client, limit int) ([]biwenger.BoardMessage, error) {
	var all []biwenger.BoardMessage
	for offset := 0; ; offset += limit {
		page, err := client.GetBoardPage(ctx, offset, limit)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
		if len(page) < limit {
			break
		}
	}
	return all, nil
}

// mergeMessages appends every incoming message whose fingerprint is not
// already present. Existing messages are never reordered or mutated.
// Returns the union and the number of newly appended messages.
func mergeMessages(existing []model.Message, incoming []biwenger.BoardMessage, users map[int64]string) ([]model.Message, int) {
	seen := make(map[string]bool, len(existing))
	for _, m := range existing {
		seen[m.Fingerprint] = true
	}

	merged := existing
	newCount := 0
	for _, item := range incoming {
		fingerprint := model.Fingerprint(item.Date, item.Content)
		if seen[fingerprint] {
			continue
		}
		seen[fingerprint] = true

		author, ok := users[item.Author.ID]
		if !ok {
			author = model.UnknownAuthor
		}
		title := item.Title
		if title == "" {
			title = model.UntitledMessage
		}

		merged = append(merged, model.Message{
			Fingerprint: fingerprint,
			Date:        model.FormatDate(item.Date),
			Author:      author,
			Title:       title,
			Content:     item.Content,
			Category:    model.CategorizeTitle(item.Title),
		})
		newCount++
	}

	return merged, newCount
}

// sortMessages orders messages most recent first. Messages whose row
// date cannot be parsed sort as the oldest possible moment, keeping the
// persisted order stable across runs regardless of arrival order.
func sortMessages(messages []model.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].SortKey().After(messages[j].SortKey())
	})
}

// processParticipation folds the message set into one record per
// distinct display name in the user directory. Users with no messages
// still get a record. Messages from unrecognized authors (including the
// unknown-author sentinel) stay in the message set but earn no credit.
func processParticipation(messages []model.Message, users map[int64]string) []*model.ParticipationRecord {
	byAuthor := make(map[string]*model.ParticipationRecord, len(users))
	for _, name := range users {
		if _, ok := byAuthor[name]; !ok {
			byAuthor[name] = model.NewParticipationRecord(name)
		}
	}

	for _, m := range messages {
		rec, ok := byAuthor[m.Author]
		if !ok || m.Fingerprint == "" {
			continue
		}
		rec.Add(m.Category, m.Fingerprint)
	}

	records := make([]*model.ParticipationRecord, 0, len(byAuthor))
	for _, rec := range byAuthor {
		records = append(records, rec)
	}
	// Map iteration order is random, keep the CSV deterministic.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Author < records[j].Author
	})
	return records
}
