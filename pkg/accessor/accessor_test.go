package accessor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string
	Age  int
	Home *address
}

type address struct {
	City string
}

// counter exposes properties through getter/setter methods only.
type counter struct {
	n int
}

func (c *counter) Count() int     { return c.n }
func (c *counter) SetCount(n int) { c.n = n }

// vault implements PropertySource.
type vault struct {
	data map[string]interface{}
}

func (v *vault) GetProperty(name string) (interface{}, bool) {
	val, ok := v.data[name]
	return val, ok
}

func (v *vault) SetProperty(name string, value interface{}) error {
	v.data[name] = value
	return nil
}

func TestPathStructField(t *testing.T) {
	p := &person{Name: "Ada", Age: 36, Home: &address{City: "London"}}

	acc := NewPath(p, "name", nil)
	v, err := acc.Get()
	require.NoError(t, err)
	assert.Equal(t, "Ada", v)
	assert.True(t, acc.Writable())

	require.NoError(t, acc.Set("Grace"))
	assert.Equal(t, "Grace", p.Name)
}

func TestPathNested(t *testing.T) {
	p := &person{Home: &address{City: "London"}}

	acc := NewPath(p, "home.city", nil)
	v, err := acc.Get()
	require.NoError(t, err)
	assert.Equal(t, "London", v)

	require.NoError(t, acc.Set("Paris"))
	assert.Equal(t, "Paris", p.Home.City)
}

func TestPathMap(t *testing.T) {
	state := map[string]interface{}{
		"volume": 5,
		"nested": map[string]interface{}{"k": "v"},
	}

	acc := NewPath(state, "volume", nil)
	v, err := acc.Get()
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	require.NoError(t, acc.Set(9))
	assert.Equal(t, 9, state["volume"])

	v, err = NewPath(state, "nested.k", nil).Get()
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestPathGetterSetter(t *testing.T) {
	c := &counter{n: 3}

	acc := NewPath(c, "count", nil)
	v, err := acc.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.True(t, acc.Writable())

	require.NoError(t, acc.Set(7))
	assert.Equal(t, 7, c.n)
}

func TestPathPropertySource(t *testing.T) {
	src := &vault{data: map[string]interface{}{"secret": "x"}}

	acc := NewPath(src, "secret", nil)
	v, err := acc.Get()
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	require.NoError(t, acc.Set("y"))
	assert.Equal(t, "y", src.data["secret"])
}

func TestPathErrors(t *testing.T) {
	p := &person{}

	_, err := NewPath(p, "missing", nil).Get()
	assert.Error(t, err)

	_, err = NewPath(nil, "anything", nil).Get()
	assert.Error(t, err)

	_, err = NewPath(p, "home.city", nil).Get()
	assert.Error(t, err, "traversal through a nil pointer")
}

func TestPathUnwritableIsSilent(t *testing.T) {
	// A value (not pointer) receiver exposes readable but unwritable fields.
	p := person{Name: "Ada"}
	acc := NewPath(p, "name", nil)

	assert.False(t, acc.Writable())
	assert.NoError(t, acc.Set("Grace"), "writing through an unwritable path is a no-op")
	assert.Equal(t, "Ada", p.Name)
}

type recordingBus struct {
	subs map[string][]func()
}

func (b *recordingBus) Subscribe(name string, cb func()) {
	if b.subs == nil {
		b.subs = map[string][]func(){}
	}
	b.subs[name] = append(b.subs[name], cb)
}

func TestSubscribeRoutesToBus(t *testing.T) {
	bus := &recordingBus{}
	acc := NewPath(&person{}, "name", bus)

	acc.Subscribe("save", func() {})
	acc.Subscribe("save", func() {})
	assert.Len(t, bus.subs["save"], 2)
}

func TestSimpleEngineLiterals(t *testing.T) {
	e := SimpleEngine{}

	tests := []struct {
		expr string
		want interface{}
	}{
		{`'hello'`, "hello"},
		{`"hi"`, "hi"},
		{`true`, true},
		{`false`, false},
		{`42`, int64(42)},
		{`0x10`, int64(16)},
		{`2.5`, 2.5},
	}
	for _, tt := range tests {
		v, err := e.Eval(tt.expr, nil, nil)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, v, tt.expr)
	}
}

func TestSimpleEnginePaths(t *testing.T) {
	e := SimpleEngine{}
	root := &person{Name: "Ada", Home: &address{City: "London"}}

	v, err := e.Eval("home.city", root, nil)
	require.NoError(t, err)
	assert.Equal(t, "London", v)

	beans := func(name string) (interface{}, error) {
		if name == "settings" {
			return map[string]interface{}{"lang": "en"}, nil
		}
		return nil, fmt.Errorf("unknown bean %q", name)
	}
	v, err = e.Eval("settings.lang", nil, beans)
	require.NoError(t, err)
	assert.Equal(t, "en", v)
}

func TestSimpleEngineConcatenation(t *testing.T) {
	e := SimpleEngine{}
	root := &person{Name: "Ada"}

	v, err := e.Eval(`'Hello, ' + name + '!'`, root, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello, Ada!", v)

	_, err = e.Eval("", nil, nil)
	assert.Error(t, err)

	_, err = e.Eval("no.such.thing", nil, nil)
	assert.Error(t, err)
}

func TestExprAccessorIsReadOnly(t *testing.T) {
	acc := NewExpr(SimpleEngine{}, "1 + 2", nil, nil, nil)

	v, err := acc.Get()
	require.NoError(t, err)
	assert.Equal(t, "12", v, "multi-term results join as strings")

	assert.False(t, acc.Writable())
	assert.NoError(t, acc.Set("anything"), "writes are silently dropped")
}

func TestConfigAccessor(t *testing.T) {
	cfg := func(key string) (interface{}, bool) {
		if key == "app.title" {
			return "Bower", true
		}
		return nil, false
	}

	acc := NewConfig(cfg, "app.title", nil)
	v, err := acc.Get()
	require.NoError(t, err)
	assert.Equal(t, "Bower", v)
	assert.False(t, acc.Writable())

	_, err = NewConfig(cfg, "missing", nil).Get()
	assert.Error(t, err)

	_, err = NewConfig(nil, "app.title", nil).Get()
	assert.Error(t, err, "no configuration installed")
}
