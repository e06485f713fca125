package controller

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jorgelillo7/biwenger-tools/model"
	"github.com/jorgelillo7/biwenger-tools/storage"
)

// marketManager labels export rows for players on sale rather than in a
// manager's squad.
const marketManager = "Mercado"

func (c *controller) AnalyzeSquads(ctx context.Context) ([]model.SquadRow, error) {
	runID := uuid.NewString()
	start := time.Now()
	log.Printf("[analyze %s] squad analysis starting at %v", runID, start.Format(time.DateTime))

	players, err := c.biwenger.LoadPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading player database: %w", err)
	}
	standings, err := c.biwenger.GetStandings(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching standings: %w", err)
	}
	coeffs, err := c.analytics.GetAnalyticsMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching analytics coefficients: %w", err)
	}
	tips, err := c.tips.GetTipsMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching tips: %w", err)
	}
	log.Printf("[analyze %s] %d players, %d managers, %d coefficients, %d tips", runID, len(players), len(standings), coeffs.Len(), len(tips))

	var rows []model.SquadRow
	for _, manager := range standings {
		squad, err := c.biwenger.GetManagerSquad(ctx, manager.ID)
		if err != nil {
			return nil, fmt.Errorf("error fetching squad for %s: %w", manager.Name, err)
		}
		for _, slot := range squad {
			info, ok := players[slot.ID]
			if !ok {
				// Not in the competition database anymore, skip it.
				log.Printf("[analyze %s] skipping unknown player id %d in squad of %s", runID, slot.ID, manager.Name)
				continue
			}
			rows = append(rows, exportRow(manager.Name, info, info.Price, slot.Clause, coeffs, tips))
		}
	}

	sales, err := c.biwenger.GetMarketSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching market sales: %w", err)
	}
	for _, sale := range sales {
		info, ok := players[sale.Player.ID]
		if !ok {
			continue
		}
		value := sale.Price
		if value == 0 {
			value = info.Price
		}
		rows = append(rows, exportRow(marketManager, info, value, 0, coeffs, tips))
	}

	if err := c.store.SaveSquadExport(ctx, rows); err != nil {
		return nil, fmt.Errorf("error saving squad export: %w", err)
	}

	if c.notifier != nil {
		// Notification delivery is best effort, the export already landed.
		caption := fmt.Sprintf("Análisis de plantillas actualizado: %d jugadores exportados.", len(rows))
		if doc, err := storage.EncodeSquadExport(rows); err != nil {
			log.Printf("[analyze %s] error encoding export for notification: %v", runID, err)
		} else if err := c.notifier.SendDocument(ctx, caption, "squads_export.csv", doc); err != nil {
			log.Printf("[analyze %s] error sending notification: %v", runID, err)
		}
	}

	log.Printf("[analyze %s] exported %d rows, took %v", runID, len(rows), time.Since(start))
	return rows, nil
}

func exportRow(manager string, p model.Player, value, clause int64, coeffs *model.AnalyticsMap, tips map[string]string) model.SquadRow {
	analytics := findPlayerMatch(p.Name, coeffs)
	tip, ok := tips[model.NormalizeName(p.Name)]
	if !ok {
		tip = model.NotAvailable
	}
	return model.SquadRow{
		Manager:       manager,
		Player:        p.Name,
		Position:      p.Position,
		MultiPosition: p.MultiPositionLabel(),
		Value:         value,
		Clause:        clause,
		Coefficient:   analytics.Coefficient,
		ExpectedScore: analytics.ExpectedScore,
		Tip:           tip,
	}
}
