package web

import (
	"net/http"
	"sort"

	"github.com/unrolled/render"

	"github.com/jorgelillo7/biwenger-tools/controller"
	"github.com/jorgelillo7/biwenger-tools/model"
)

func comunicadosHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := ctrl.GetMessages(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"active":   "comunicados",
			"messages": messages,
		}
		render.HTML(w, http.StatusOK, "comunicados", data)
	}
}

// participationRow is what the participación table renders: one user
// with per-category counts, busiest authors first.
type participationRow struct {
	Author      string
	Comunicados int
	Datos       int
	Cesiones    int
	Cronicas    int
	Total       int
}

func participacionHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := ctrl.GetParticipation(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		rows := make([]participationRow, 0, len(records))
		for _, rec := range records {
			rows = append(rows, participationRow{
				Author:      rec.Author,
				Comunicados: rec.Count(model.CAT_COMUNICADO),
				Datos:       rec.Count(model.CAT_DATO),
				Cesiones:    rec.Count(model.CAT_CESION),
				Cronicas:    rec.Count(model.CAT_CRONICA),
				Total:       rec.Total(),
			})
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Total > rows[j].Total
		})

		data := map[string]any{
			"active": "participacion",
			"rows":   rows,
		}
		render.HTML(w, http.StatusOK, "participacion", data)
	}
}

func palmaresHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasons, err := ctrl.GetPalmares(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"active":  "palmares",
			"seasons": seasons,
		}
		render.HTML(w, http.StatusOK, "palmares", data)
	}
}

func statusHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.Status())
	}
}

func forceSyncHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		newCount, err := ctrl.SyncBoard(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"new_messages": newCount})
	}
}

func forceAnalyzeHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := ctrl.AnalyzeSquads(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"exported_rows": len(rows)})
	}
}
