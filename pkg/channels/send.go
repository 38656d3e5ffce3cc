package channels

import "time"

// SendNonBlock attempts to send a message without blocking.
// Returns error if the channel is full or closed.
func SendNonBlock[T any](ch chan<- T, msg T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrChannelClosed
		}
	}()

	select {
	case ch <- msg:
		return nil
	default:
		return ErrChannelFull
	}
}

// SendWithTimeout sends a message with a timeout.
// Returns error if the timeout expires or channel is closed.
func SendWithTimeout[T any](ch chan<- T, msg T, timeout time.Duration) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrChannelClosed
		}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ch <- msg:
		return nil
	case <-timer.C:
		return ErrChannelTimeout
	}
}

// ReceiveAll drains ch until it is closed, idle for the given wait, or limit
// messages were read. A limit of zero means no limit.
func ReceiveAll[T any](ch <-chan T, wait time.Duration, limit int) []T {
	var out []T

	for limit == 0 || len(out) < limit {
		select {
		case msg, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, msg)
		case <-time.After(wait):
			return out
		}
	}

	return out
}

// Latest drains ch without blocking and returns the last message read.
// ok is false when nothing was pending.
func Latest[T any](ch <-chan T) (msg T, ok bool) {
	for {
		select {
		case m, open := <-ch:
			if !open {
				return msg, ok
			}
			msg, ok = m, true
		default:
			return msg, ok
		}
	}
}
