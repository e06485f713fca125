package mockscrapers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jorgelillo7/biwenger-tools/model"
)

type AnalyticsClient struct {
	mock.Mock
}

func (c *AnalyticsClient) GetAnalyticsMap(ctx context.Context) (*model.AnalyticsMap, error) {
	args := c.Called(ctx)

	var res *model.AnalyticsMap
	if args.Get(0) != nil {
		res = args.Get(0).(*model.AnalyticsMap)
	}

	return res, args.Error(1)
}

type TipsClient struct {
	mock.Mock
}

func (c *TipsClient) GetTipsMap(ctx context.Context) (map[string]string, error) {
	args := c.Called(ctx)

	var res map[string]string
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]string)
	}

	return res, args.Error(1)
}
