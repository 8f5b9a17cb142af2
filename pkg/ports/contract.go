package ports

import (
	"testing"

	"github.com/aretw0/b3270/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// EngineDriver moves an Engine implementation through a connection so the
// contract suite can observe it.
type EngineDriver interface {
	Connect(host string)
	Disconnect()
}

// RunEngineContract runs a suite of tests to verify that an Engine
// implementation adheres to the defined interface contract.
func RunEngineContract(t *testing.T, engine Engine, driver EngineDriver) {
	t.Run("Starts Disconnected", func(t *testing.T) {
		assert.Equal(t, domain.NotConnected, engine.State())
		assert.Empty(t, engine.Host())
		assert.False(t, engine.Security().Secure)
	})

	t.Run("Notifies Subscribers", func(t *testing.T) {
		var kinds []domain.ChangeKind
		engine.Subscribe(func(kind domain.ChangeKind) {
			kinds = append(kinds, kind)
		})

		driver.Connect("contract.example")
		require.NotEmpty(t, kinds, "Connect should notify subscribers")
		assert.True(t, engine.State().Connected())
		assert.Equal(t, "contract.example", engine.Host())

		seen := len(kinds)
		driver.Disconnect()
		assert.Greater(t, len(kinds), seen, "Disconnect should notify subscribers")
		assert.Equal(t, domain.NotConnected, engine.State())
		assert.Empty(t, engine.Host())
	})

	t.Run("TLS Description", func(t *testing.T) {
		tls := engine.TLS()
		if tls.Supported {
			assert.NotEmpty(t, tls.Provider, "a TLS-capable engine names its provider")
		}
	})
}
