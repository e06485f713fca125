package mockbiwenger

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jorgelillo7/biwenger-tools/biwenger"
	"github.com/jorgelillo7/biwenger-tools/model"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetLeagueUsers(ctx context.Context) (map[int64]string, error) {
	args := c.Called(ctx)

	var res map[int64]string
	if args.Get(0) != nil {
		res = args.Get(0).(map[int64]string)
	}

	return res, args.Error(1)
}

func (c *Client) GetBoardPage(ctx context.Context, offset, limit int) ([]biwenger.BoardMessage, error) {
	args := c.Called(ctx, offset, limit)

	var res []biwenger.BoardMessage
	if args.Get(0) != nil {
		res = args.Get(0).([]biwenger.BoardMessage)
	}

	return res, args.Error(1)
}

func (c *Client) GetStandings(ctx context.Context) ([]biwenger.Standing, error) {
	args := c.Called(ctx)

	var res []biwenger.Standing
	if args.Get(0) != nil {
		res = args.Get(0).([]biwenger.Standing)
	}

	return res, args.Error(1)
}

func (c *Client) LoadPlayers(ctx context.Context) (map[int64]model.Player, error) {
	args := c.Called(ctx)

	var res map[int64]model.Player
	if args.Get(0) != nil {
		res = args.Get(0).(map[int64]model.Player)
	}

	return res, args.Error(1)
}

func (c *Client) GetManagerSquad(ctx context.Context, managerID int64) ([]model.SquadPlayer, error) {
	args := c.Called(ctx, managerID)

	var res []model.SquadPlayer
	if args.Get(0) != nil {
		res = args.Get(0).([]model.SquadPlayer)
	}

	return res, args.Error(1)
}

func (c *Client) GetMarketSales(ctx context.Context) ([]biwenger.MarketSale, error) {
	args := c.Called(ctx)

	var res []biwenger.MarketSale
	if args.Get(0) != nil {
		res = args.Get(0).([]biwenger.MarketSale)
	}

	return res, args.Error(1)
}
