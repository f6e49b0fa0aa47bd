package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("falls back to global logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("returns attached logger", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		ctx := WithContext(context.Background(), zap.New(core).Sugar())

		FromContext(ctx).Infow("bought", "symbol", "AAPL")

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		require.Equal(t, "bought", entry.Message)
		require.Equal(t, "AAPL", entry.ContextMap()["symbol"])
	})
}
