package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"github.com/jorgelillo7/biwenger-tools/model"
)

const (
	squadExportFile = "squads_export.csv"
	palmaresFile    = "palmares.csv"
)

var (
	messageHeader       = []string{"id_hash", "fecha", "autor", "titulo", "contenido", "categoria"}
	participationHeader = []string{"autor", "comunicados", "datos", "cesiones", "cronicas"}
	squadExportHeader   = []string{"Mánager", "Jugador", "Posición", "Multiposición", "Valor Actual", "Cláusula", "Coeficiente", "Puntuación Esperada", "Consejo JP"}
)

// New returns a Store over a local directory. The message and
// participation files are scoped to a season so old seasons stay
// untouched when a new one starts.
func New(dir, season string) (Store, error) {
	if season == "" {
		return nil, fmt.Errorf("season is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating storage dir: %w", err)
	}
	return &csvStore{dir: dir, season: season}, nil
}

type csvStore struct {
	dir    string
	season string
}

func (s *csvStore) messagesPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("comunicados_%s.csv", s.season))
}

func (s *csvStore) participationPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("participacion_%s.csv", s.season))
}

func (s *csvStore) LoadMessages(ctx context.Context) ([]model.Message, error) {
	rows, err := s.readFile(s.messagesPath(), len(messageHeader))
	if err != nil {
		return nil, err
	}

	messages := make([]model.Message, 0, len(rows))
	for _, r := range rows {
		messages = append(messages, model.Message{
			Fingerprint: r[0],
			Date:        r[1],
			Author:      r[2],
			Title:       r[3],
			Content:     r[4],
			Category:    model.Category(r[5]),
		})
	}
	return messages, nil
}

func (s *csvStore) SaveMessages(ctx context.Context, messages []model.Message) error {
	rows := make([][]string, 0, len(messages))
	for _, m := range messages {
		rows = append(rows, []string{m.Fingerprint, m.Date, m.Author, m.Title, m.Content, string(m.Category)})
	}
	return s.writeFile(s.messagesPath(), messageHeader, rows)
}

func (s *csvStore) LoadParticipation(ctx context.Context) ([]*model.ParticipationRecord, error) {
	rows, err := s.readFile(s.participationPath(), len(participationHeader))
	if err != nil {
		return nil, err
	}

	records := make([]*model.ParticipationRecord, 0, len(rows))
	for _, r := range rows {
		rec := model.NewParticipationRecord(r[0])
		for i, c := range []model.Category{model.CAT_COMUNICADO, model.CAT_DATO, model.CAT_CESION, model.CAT_CRONICA} {
			for _, f := range splitFingerprints(r[i+1]) {
				rec.Add(c, f)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *csvStore) SaveParticipation(ctx context.Context, records []*model.ParticipationRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Author,
			rec.Joined(model.CAT_COMUNICADO),
			rec.Joined(model.CAT_DATO),
			rec.Joined(model.CAT_CESION),
			rec.Joined(model.CAT_CRONICA),
		})
	}
	return s.writeFile(s.participationPath(), participationHeader, rows)
}

func (s *csvStore) SaveSquadExport(ctx context.Context, squadRows []model.SquadRow) error {
	return s.writeFile(filepath.Join(s.dir, squadExportFile), squadExportHeader, squadExportRows(squadRows))
}

// EncodeSquadExport renders the squad export dataset as CSV bytes, for
// sending it somewhere other than the local store.
func EncodeSquadExport(squadRows []model.SquadRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(squadExportHeader); err != nil {
		return nil, fmt.Errorf("error encoding squad export: %w", err)
	}
	if err := w.WriteAll(squadExportRows(squadRows)); err != nil {
		return nil, fmt.Errorf("error encoding squad export: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("error encoding squad export: %w", err)
	}
	return buf.Bytes(), nil
}

func squadExportRows(squadRows []model.SquadRow) [][]string {
	rows := make([][]string, 0, len(squadRows))
	for _, r := range squadRows {
		rows = append(rows, []string{
			r.Manager,
			r.Player,
			string(r.Position),
			r.MultiPosition,
			fmt.Sprint(r.Value),
			fmt.Sprint(r.Clause),
			r.Coefficient,
			r.ExpectedScore,
			r.Tip,
		})
	}
	return rows
}

func (s *csvStore) LoadPalmares(ctx context.Context) ([]model.PalmaresEntry, error) {
	rows, err := s.readFile(filepath.Join(s.dir, palmaresFile), 3)
	if err != nil {
		return nil, err
	}

	entries := make([]model.PalmaresEntry, 0, len(rows))
	for _, r := range rows {
		// The palmarés file is edited by hand, clean up stray whitespace.
		entries = append(entries, model.PalmaresEntry{
			Season:   strings.TrimSpace(r[0]),
			Category: strings.TrimSpace(r[1]),
			Value:    strings.TrimSpace(r[2]),
		})
	}
	return entries, nil
}

func (s *csvStore) readFile(path string, wantFields int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = wantFields
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[1:], nil // drop the header row
}

// writeFile writes a dataset to a temp file and renames it into place
// under a lock file, so readers never observe a partial write and
// concurrent runs cannot interleave.
func (s *csvStore) writeFile(path string, header []string, rows [][]string) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("error locking %s: %w", path, err)
	}
	defer lock.Unlock()

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("error flushing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing %s: %w", path, err)
	}
	return nil
}

func splitFingerprints(cell string) []string {
	if cell == "" {
		return nil
	}
	return strings.Split(cell, ";")
}
