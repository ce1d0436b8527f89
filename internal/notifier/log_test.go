package notifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier_Send(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	err := n.Send(context.Background(), "cliente@teste.com", "Pagamento confirmado!", "Pedido 789")

	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, "cliente@teste.com", fields["to"])
	assert.Equal(t, "Pagamento confirmado!", fields["subject"])
	assert.Equal(t, "Pedido 789", fields["body"])
}
