package core

import (
	"testing"

	"github.com/nachtrunde/werwolf-server/model"
	"github.com/stretchr/testify/assert"
)

func newTestConfig() *model.Config {
	config := &model.Config{}
	config.Game.MinPlayers = 4
	config.Game.DayResultDelay = 3000
	return config
}

func TestRegistryCreateAssignsFourDigitCode(t *testing.T) {
	registry := NewLobbyRegistry(newTestConfig())
	lobby := registry.Create()

	assert.Len(t, lobby.Code, 4)
	assert.Equal(t, lobby, registry.Find(lobby.Code))
}

func TestRegistryFindUnknownCode(t *testing.T) {
	registry := NewLobbyRegistry(newTestConfig())
	assert.Nil(t, registry.Find("0000"))
}

func TestRegistryRemove(t *testing.T) {
	registry := NewLobbyRegistry(newTestConfig())
	lobby := registry.Create()
	assert.False(t, registry.Empty())

	registry.Remove(lobby.Code)
	assert.Nil(t, registry.Find(lobby.Code))
	assert.True(t, registry.Empty())
}

func TestRegistryRemoveUnknownCodeIsNoop(t *testing.T) {
	registry := NewLobbyRegistry(newTestConfig())
	registry.Remove("0000")
	assert.True(t, registry.Empty())
}

func TestRegistryCodesAreUnique(t *testing.T) {
	registry := NewLobbyRegistry(newTestConfig())
	codes := make(map[string]bool)
	for n := 0; n < 50; n++ {
		lobby := registry.Create()
		assert.False(t, codes[lobby.Code])
		codes[lobby.Code] = true
	}
}
