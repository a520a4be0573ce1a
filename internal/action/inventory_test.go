package action

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TavernCrawl_Go/internal/character"
	"github.com/osse101/TavernCrawl_Go/internal/domain"
	"github.com/osse101/TavernCrawl_Go/internal/event"
)

var ironSword = domain.Item{ID: 7, Name: "Iron Sword", Attack: 5}

func newArmedCharacter() *character.Character {
	ch := character.New("Aria", 100, 10, 0, 25)
	ch.Inventory().AddItem(ironSword)
	return ch
}

func TestCheckInventory_Equip(t *testing.T) {
	h := newHarness(0, "1", "7", "3")
	ch := newArmedCharacter()

	_, err := CheckInventory(context.Background(), h.deps, ch, nil)

	require.NoError(t, err)
	assert.Equal(t, 15, ch.Attack())
	assert.Equal(t, 0, ch.Inventory().Len())
	assert.Equal(t, []domain.Item{ironSword}, ch.Equipped())
	assert.Equal(t, []event.Type{domain.EventTypeItemEquipped}, h.bus.published())
	assert.Contains(t, h.out.String(), "Equipped Iron Sword.")
}

func TestCheckInventory_EquipThenUnequipRoundTrips(t *testing.T) {
	h := newHarness(0, "Equip", "7", "Unequip", "7", "Back")
	ch := newArmedCharacter()
	before := ch.Stats()

	_, err := CheckInventory(context.Background(), h.deps, ch, nil)

	require.NoError(t, err)
	assert.Equal(t, before, ch.Stats())
	assert.Equal(t, []domain.Item{ironSword}, ch.Inventory().Items())
	assert.Empty(t, ch.Equipped())
	assert.Equal(t, []event.Type{domain.EventTypeItemEquipped, domain.EventTypeItemUnequipped}, h.bus.published())
}

func TestCheckInventory_InvalidInput(t *testing.T) {
	h := newHarness(0, "1", "abc", "1", "99", "2", "7", "3")
	ch := newArmedCharacter()

	_, err := CheckInventory(context.Background(), h.deps, ch, nil)

	require.NoError(t, err)
	out := h.out.String()
	assert.Contains(t, out, `"abc" is not a number.`)
	assert.Contains(t, out, "You are not carrying an item with ID 99.")
	assert.Contains(t, out, "You have no item with ID 7 equipped.")
	assert.Empty(t, h.bus.published())
	assert.Equal(t, 10, ch.Attack())
}

func TestCheckInventory_ShowsState(t *testing.T) {
	h := newHarness(0, "3")
	ch := newArmedCharacter()

	_, err := CheckInventory(context.Background(), h.deps, ch, nil)

	require.NoError(t, err)
	out := h.out.String()
	assert.Contains(t, out, "Health 100 | Attack 10 | Defense 0")
	assert.Contains(t, out, "Gold: 25")
	assert.Contains(t, out, "[7] Iron Sword (+5 attack)")
	assert.Contains(t, out, MsgNothing)
}

func TestCheckInventory_InputClosed(t *testing.T) {
	h := newHarness(0, "1")
	ch := newArmedCharacter()

	_, err := CheckInventory(context.Background(), h.deps, ch, nil)

	assert.ErrorIs(t, err, io.EOF)
}
