package mocknotify

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Notifier struct {
	mock.Mock
}

func (n *Notifier) SendMessage(ctx context.Context, text string) error {
	args := n.Called(ctx, text)
	return args.Error(0)
}

func (n *Notifier) SendDocument(ctx context.Context, caption, filename string, content []byte) error {
	args := n.Called(ctx, caption, filename, content)
	return args.Error(0)
}
