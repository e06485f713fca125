package mockstorage

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jorgelillo7/biwenger-tools/model"
)

type Store struct {
	mock.Mock
}

func (s *Store) LoadMessages(ctx context.Context) ([]model.Message, error) {
	args := s.Called(ctx)

	var res []model.Message
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Message)
	}

	return res, args.Error(1)
}

func (s *Store) SaveMessages(ctx context.Context, messages []model.Message) error {
	args := s.Called(ctx, messages)
	return args.Error(0)
}

func (s *Store) LoadParticipation(ctx context.Context) ([]*model.ParticipationRecord, error) {
	args := s.Called(ctx)

	var res []*model.ParticipationRecord
	if args.Get(0) != nil {
		res = args.Get(0).([]*model.ParticipationRecord)
	}

	return res, args.Error(1)
}

func (s *Store) SaveParticipation(ctx context.Context, records []*model.ParticipationRecord) error {
	args := s.Called(ctx, records)
	return args.Error(0)
}

func (s *Store) SaveSquadExport(ctx context.Context, rows []model.SquadRow) error {
	args := s.Called(ctx, rows)
	return args.Error(0)
}

func (s *Store) LoadPalmares(ctx context.Context) ([]model.PalmaresEntry, error) {
	args := s.Called(ctx)

	var res []model.PalmaresEntry
	if args.Get(0) != nil {
		res = args.Get(0).([]model.PalmaresEntry)
	}

	return res, args.Error(1)
}
