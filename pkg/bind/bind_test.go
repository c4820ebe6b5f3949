package bind

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/bowerbird/pkg/accessor"
	"github.com/chazu/bowerbird/pkg/event"
	"github.com/chazu/bowerbird/pkg/widget"
)

// passConverter accepts values already matching the property type and
// widens integers, mirroring what the standard converter does for the
// cases these tests exercise.
type passConverter struct{}

func (passConverter) Convert(v interface{}, t widget.PropType) (interface{}, error) {
	if t == widget.TypeInt {
		if n, ok := v.(int64); ok {
			return int(n), nil
		}
	}
	if t == widget.TypeString {
		if s, ok := v.(string); ok {
			return s, nil
		}
		return nil, fmt.Errorf("cannot convert %T to string", v)
	}
	if !t.Accepts(v) {
		return nil, fmt.Errorf("cannot convert %T to %s", v, t)
	}
	return v, nil
}

func (c passConverter) CanConvert(v interface{}, t widget.PropType) bool {
	_, err := c.Convert(v, t)
	return err == nil
}

type model struct {
	Title  string
	Volume int
	Active bool
	Mode   string
}

func TestAllowedDirection(t *testing.T) {
	b := widget.New(widget.KindByName("Button"), "ok")

	assert.Equal(t, Bidirectional, AllowedDirection(b, "text"))
	assert.Equal(t, None, AllowedDirection(b, "name"), "name never binds")
	assert.Equal(t, None, AllowedDirection(b, "nope"))
}

func TestWireInitialSync(t *testing.T) {
	m := &model{Title: "Report"}
	l := widget.New(widget.KindByName("Label"), "title")

	c, err := Wire(l, "text", accessor.NewPath(m, "title", nil), passConverter{}, nil)
	require.NoError(t, err)
	assert.Equal(t, Bidirectional, c.Direction())

	v, _ := l.Property("text")
	assert.Equal(t, "Report", v, "model state flows into the widget at wire time")
}

func TestWireNoneIsNotAnError(t *testing.T) {
	m := &model{}
	l := widget.New(widget.KindByName("Label"), "title")

	c, err := Wire(l, "name", accessor.NewPath(m, "title", nil), passConverter{}, nil)
	require.NoError(t, err)
	assert.Equal(t, None, c.Direction())

	v, _ := l.Property("name")
	assert.Equal(t, "title", v, "nothing was wired")
}

func TestWireConversionFailureIsHard(t *testing.T) {
	m := &model{Volume: 7}
	l := widget.New(widget.KindByName("Label"), "title")

	// An int model value cannot become the label's text.
	_, err := Wire(l, "text", accessor.NewPath(m, "volume", nil), passConverter{}, nil)
	assert.Error(t, err)
}

func TestWidgetChangePushesBack(t *testing.T) {
	m := &model{Title: "Report"}
	l := widget.New(widget.KindByName("Label"), "title")

	_, err := Wire(l, "text", accessor.NewPath(m, "title", nil), passConverter{}, nil)
	require.NoError(t, err)

	require.NoError(t, l.SetProperty("text", "Summary"))
	assert.Equal(t, "Summary", m.Title)
}

func TestNoFeedbackLoop(t *testing.T) {
	m := &model{Active: true}
	tb := widget.New(widget.KindByName("ToggleButton"), "onOff")

	var changes int
	tb.OnChange(func(string, interface{}) { changes++ })

	_, err := Wire(tb, "selected", accessor.NewPath(m, "active", nil), passConverter{}, nil)
	require.NoError(t, err)
	baseline := changes

	// Toggling must settle after one change per toggle, not oscillate.
	require.NoError(t, tb.SetProperty("selected", false))
	assert.False(t, m.Active)
	require.NoError(t, tb.SetProperty("selected", true))
	assert.True(t, m.Active)
	assert.Equal(t, baseline+2, changes)
}

func TestEqualPushIsSuppressed(t *testing.T) {
	writes := 0
	src := &countingAccessor{value: "x", writes: &writes}
	l := widget.New(widget.KindByName("Label"), "title")

	_, err := Wire(l, "text", src, passConverter{}, nil)
	require.NoError(t, err)

	// The widget already holds the accessor's value; a listener firing
	// for some other reason must not write back.
	l.SetLogicalValue(nil) // unrelated mutation, no listener
	require.NoError(t, l.SetProperty("tooltip", "hint"))
	assert.Zero(t, writes)
}

// countingAccessor counts Set calls.
type countingAccessor struct {
	value  interface{}
	writes *int
}

func (a *countingAccessor) Get() (interface{}, error) { return a.value, nil }
func (a *countingAccessor) Set(v interface{}) error {
	a.value = v
	*a.writes++
	return nil
}
func (a *countingAccessor) Writable() bool             { return true }
func (a *countingAccessor) Subscribe(string, func()) {}

func TestTriggerRefresh(t *testing.T) {
	m := &model{Volume: 10}
	s := widget.New(widget.KindByName("Slider"), "level")
	bus := event.NewBus()

	_, err := Wire(s, "value", accessor.NewPath(m, "volume", bus), passConverter{}, []string{"reload"})
	require.NoError(t, err)

	v, _ := s.Property("value")
	assert.Equal(t, 10, v)

	// The binding only re-reads when told to.
	m.Volume = 55
	v, _ = s.Property("value")
	assert.Equal(t, 10, v)

	bus.Fire("reload")
	v, _ = s.Property("value")
	assert.Equal(t, 55, v)
}

func makeChoice(t *testing.T, logicals ...string) (*widget.Group, []*widget.Widget) {
	t.Helper()
	members := make([]*widget.Widget, len(logicals))
	for i, lv := range logicals {
		m := widget.New(widget.KindByName("RadioButton"), fmt.Sprintf("r%d", i))
		m.SetLogicalValue(lv)
		members[i] = m
	}
	return widget.NewGroup("choice", members), members
}

func TestWireGroupInitialSelection(t *testing.T) {
	m := &model{Mode: "edit"}
	grp, members := makeChoice(t, "view", "edit")

	_, err := WireGroup(grp, accessor.NewPath(m, "mode", nil), nil)
	require.NoError(t, err)

	assert.False(t, members[0].Selected())
	assert.True(t, members[1].Selected())
}

func TestGroupExclusiveSelection(t *testing.T) {
	m := &model{Mode: "view"}
	grp, members := makeChoice(t, "view", "edit", "print")

	_, err := WireGroup(grp, accessor.NewPath(m, "mode", nil), nil)
	require.NoError(t, err)

	require.NoError(t, members[2].SetSelected(true))

	assert.False(t, members[0].Selected(), "siblings deselect")
	assert.False(t, members[1].Selected())
	assert.True(t, members[2].Selected())
	assert.Equal(t, "print", m.Mode, "the logical value flows into the model")
}

func TestGroupDeselectionIsIgnored(t *testing.T) {
	m := &model{Mode: "view"}
	grp, members := makeChoice(t, "view", "edit")

	_, err := WireGroup(grp, accessor.NewPath(m, "mode", nil), nil)
	require.NoError(t, err)

	require.NoError(t, members[0].SetSelected(false))
	assert.Equal(t, "view", m.Mode, "deselecting alone never writes back")
}

func TestWireGroupRejectsUnselectableMember(t *testing.T) {
	l := widget.New(widget.KindByName("Label"), "l")
	grp := widget.NewGroup("bad", []*widget.Widget{l})

	_, err := WireGroup(grp, &countingAccessor{value: "x", writes: new(int)}, nil)
	assert.Error(t, err)
}

func TestGroupTriggerRefresh(t *testing.T) {
	m := &model{Mode: "view"}
	grp, members := makeChoice(t, "view", "edit")
	bus := event.NewBus()

	_, err := WireGroup(grp, accessor.NewPath(m, "mode", bus), []string{"modeChanged"})
	require.NoError(t, err)
	require.True(t, members[0].Selected())

	m.Mode = "edit"
	bus.Fire("modeChanged")

	assert.False(t, members[0].Selected())
	assert.True(t, members[1].Selected())
}
