package eventbus

import (
	"context"
	"errors"
)

// ErrInvalidPayload is returned by consumers for events they cannot decode.
// The bus does not retry it.
var ErrInvalidPayload = errors.New("invalid event payload")

type Consumer interface {
	Consume(ctx context.Context, event Event) error
	GetWorkerCount() int
}
