package channels

import (
	"errors"
)

var (
	ErrChannelClosed  = errors.New("channel closed")
	ErrChannelTimeout = errors.New("send timeout")
	ErrChannelFull    = errors.New("channel full")
	ErrNilChannel     = errors.New("subscriber channel cannot be nil")
	ErrBadTimeout     = errors.New("send timeout must be positive")
)
