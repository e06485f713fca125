package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jorgelillo7/biwenger-tools/controller"
	"github.com/jorgelillo7/biwenger-tools/model"
)

type C struct {
	mock.Mock
}

func (c *C) SyncBoard(ctx context.Context) (int, error) {
	args := c.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (c *C) RunPeriodicBoardSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) AnalyzeSquads(ctx context.Context) ([]model.SquadRow, error) {
	args := c.Called(ctx)

	var res []model.SquadRow
	if args.Get(0) != nil {
		res = args.Get(0).([]model.SquadRow)
	}

	return res, args.Error(1)
}

func (c *C) GetMessages(ctx context.Context) ([]model.Message, error) {
	args := c.Called(ctx)

	var res []model.Message
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Message)
	}

	return res, args.Error(1)
}

func (c *C) GetParticipation(ctx context.Context) ([]*model.ParticipationRecord, error) {
	args := c.Called(ctx)

	var res []*model.ParticipationRecord
	if args.Get(0) != nil {
		res = args.Get(0).([]*model.ParticipationRecord)
	}

	return res, args.Error(1)
}

func (c *C) GetPalmares(ctx context.Context) ([]model.SeasonPalmares, error) {
	args := c.Called(ctx)

	var res []model.SeasonPalmares
	if args.Get(0) != nil {
		res = args.Get(0).([]model.SeasonPalmares)
	}

	return res, args.Error(1)
}

func (c *C) Status() controller.Status {
	args := c.Called()
	return args.Get(0).(controller.Status)
}
