package channels_test

import (
	"context"
	"testing"
	"time"

	"github.com/alkime/selector/pkg/channels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type redraw struct {
	mode  int
	angle float64
}

func TestBroadcaster(t *testing.T) {
	t.Run("error cases", func(t *testing.T) {
		t.Run("subscribe with nil channel", func(t *testing.T) {
			b := channels.NewBroadcaster[redraw]()
			err := b.Subscribe(nil)
			require.ErrorIs(t, err, channels.ErrNilChannel)
			assert.Contains(t, err.Error(), "cannot be nil")
		})

		t.Run("subscribe with non-positive timeout", func(t *testing.T) {
			b := channels.NewBroadcaster[redraw]()
			ch := make(chan redraw, 1)
			assert.ErrorIs(t, b.SubscribeWithTimeout(ch, 0), channels.ErrBadTimeout)
			assert.ErrorIs(t, b.SubscribeWithTimeout(ch, -time.Second), channels.ErrBadTimeout)
		})

		t.Run("run with no subscribers", func(t *testing.T) {
			b := channels.NewBroadcaster[redraw]()
			_, err := b.Run(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "no subscribers")
		})

		t.Run("run twice", func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			b := channels.NewBroadcaster[redraw]()
			require.NoError(t, b.Subscribe(make(chan redraw, 1)))

			_, err := b.Run(ctx)
			require.NoError(t, err)

			_, err = b.Run(ctx)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "already started")
		})
	})

	t.Run("every subscriber sees every redraw", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		b := channels.NewBroadcaster[redraw]()
		tui := make(chan redraw, 8)
		ws := make(chan redraw, 8)
		require.NoError(t, b.Subscribe(tui))
		require.NoError(t, b.SubscribeWithTimeout(ws, 10*time.Millisecond))

		input, err := b.Run(ctx)
		require.NoError(t, err)

		input <- redraw{mode: 1, angle: 40}
		input <- redraw{mode: 1, angle: 80}
		input <- redraw{mode: 1, angle: 120}

		cancel()
		b.Wait()
		close(tui)
		close(ws)

		want := []redraw{{1, 40}, {1, 80}, {1, 120}}
		assert.Equal(t, want, channels.ReceiveAll(tui, 10*time.Millisecond, 0))
		assert.Equal(t, want, channels.ReceiveAll(ws, 10*time.Millisecond, 0))
	})

	t.Run("full subscriber drops while ready subscriber receives", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		b := channels.NewBroadcaster[redraw]()
		full := make(chan redraw, 1)
		full <- redraw{mode: 99}
		ready := make(chan redraw, 10)
		require.NoError(t, b.Subscribe(full))
		require.NoError(t, b.Subscribe(ready))

		input, err := b.Run(ctx)
		require.NoError(t, err)

		for i := range 5 {
			input <- redraw{mode: i}
		}

		require.Eventually(t, func() bool {
			return b.Stats()[0].Dropped == 5
		}, time.Second, 5*time.Millisecond)

		stats := b.Stats()
		assert.False(t, stats[0].Inactive)
		assert.Equal(t, 0, stats[1].Dropped)
		assert.Len(t, channels.ReceiveAll(ready, 10*time.Millisecond, 0), 5)
	})

	t.Run("closed subscriber goes inactive", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		b := channels.NewBroadcaster[redraw]()
		gone := make(chan redraw, 4)
		require.NoError(t, b.Subscribe(gone))
		close(gone)

		input, err := b.Run(ctx)
		require.NoError(t, err)

		input <- redraw{mode: 1}
		input <- redraw{mode: 2}

		require.Eventually(t, func() bool {
			s := b.Stats()[0]
			return s.Inactive && s.Dropped == 2
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("send after shutdown reports closed", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		b := channels.NewBroadcaster[redraw]()
		require.NoError(t, b.Subscribe(make(chan redraw, 1)))

		input, err := b.Run(ctx)
		require.NoError(t, err)

		cancel()
		b.Wait()

		assert.ErrorIs(t, channels.SendNonBlock(input, redraw{}), channels.ErrChannelClosed)
	})
}
