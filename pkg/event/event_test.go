package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/bowerbird/pkg/widget"
)

func TestBusFireOrder(t *testing.T) {
	bus := NewBus()

	var got []string
	bus.Subscribe("save", func() { got = append(got, "first") })
	bus.Subscribe("save", func() { got = append(got, "second") })
	bus.Subscribe("other", func() { got = append(got, "other") })

	bus.Fire("save")
	assert.Equal(t, []string{"first", "second"}, got, "callbacks run in subscription order")
}

func TestBusUnknownEventIsNoOp(t *testing.T) {
	bus := NewBus()
	bus.Fire("never-subscribed")

	bus.Subscribe("x", nil)
	bus.Fire("x")
}

func TestBusEvents(t *testing.T) {
	bus := NewBus()
	bus.Subscribe("b", func() {})
	bus.Subscribe("a", func() {})

	assert.Equal(t, []string{"a", "b"}, bus.Events())
}

func TestAdapterRepublishesChanges(t *testing.T) {
	bus := NewBus()
	w := widget.New(widget.KindByName("Button"), "ok")

	a := NewAdapter(bus, "ok", w)
	require.NotEmpty(t, a.ID)
	assert.Same(t, w, a.Target)

	fired := 0
	bus.Subscribe("ok.text", func() { fired++ })

	require.NoError(t, w.SetProperty("text", "Save"))
	require.NoError(t, w.SetProperty("text", "Save"))
	require.NoError(t, w.SetProperty("enabled", false))

	assert.Equal(t, 1, fired, "only actual changes to the named property fire")
}
