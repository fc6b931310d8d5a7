package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvim-tech/qmenu/pkg/config"
)

func mustParse(t *testing.T, data string) *config.Model {
	t.Helper()
	m, err := config.Parse("test.toml", []byte(data), config.FormatTOML)
	require.NoError(t, err)
	return m
}

func TestSayHiRoundTrip(t *testing.T) {
	r := New(mustParse(t, "[menu]\nsay-hi = \"echo 'Hello, world!'\"\n"))

	assert.Equal(t, []string{"say-hi"}, r.DisplayLabels())

	entry, err := r.Resolve("say-hi")
	require.NoError(t, err)
	assert.Equal(t, "echo 'Hello, world!'", entry.Command)
}

func TestDisplayLabelsUngroupedKeepOrder(t *testing.T) {
	r := New(mustParse(t, `
[menu]
c = "echo c"
a = "echo a"
b = "echo b"
`))
	assert.Equal(t, []string{"c", "a", "b"}, r.DisplayLabels())
	assert.Empty(t, r.Hidden())
}

func TestGroupShowsFirstAlternativeOnly(t *testing.T) {
	r := New(mustParse(t, `
[menu]
first = { run = "echo first", group = 1 }
also = { run = "echo also", group = 1 }
`))

	assert.Equal(t, []string{"first"}, r.DisplayLabels())

	hidden := r.Hidden()
	require.Len(t, hidden, 1)
	assert.Equal(t, "also", hidden[0].Label)

	for label, command := range map[string]string{"first": "echo first", "also": "echo also"} {
		entry, err := r.Resolve(label)
		require.NoError(t, err)
		assert.Equal(t, command, entry.Command)
	}
}

func TestGroupsMixedWithUngrouped(t *testing.T) {
	r := New(mustParse(t, `
[menu]
plain1 = "echo 1"
g2a = { run = "echo g2a", group = 2 }
g0a = { run = "echo g0a", group = 0 }
g2b = { run = "echo g2b", group = 2 }
plain2 = "echo 2"
g0b = { run = "echo g0b", group = 0 }
g3 = { run = "echo g3", group = 3 }
`))

	assert.Equal(t, []string{"plain1", "g2a", "g0a", "plain2", "g3"}, r.DisplayLabels())

	var hidden []string
	for _, e := range r.Hidden() {
		hidden = append(hidden, e.Label)
	}
	assert.Equal(t, []string{"g2b", "g0b"}, hidden)
}

func TestResolveEveryDisplayedLabel(t *testing.T) {
	m := mustParse(t, `
[menu]
one = "echo 1"
two = { run = "echo 2", group = 5 }
three = "echo 3"
`)
	r := New(m)

	byLabel := map[string]config.MenuEntry{}
	for _, e := range m.Entries() {
		byLabel[e.Label] = e
	}

	for _, label := range r.DisplayLabels() {
		entry, err := r.Resolve(label)
		require.NoError(t, err)
		assert.Equal(t, byLabel[label], entry)
	}
}

func TestResolveUnknown(t *testing.T) {
	r := New(mustParse(t, "[menu]\nsay-hi = \"echo hi\"\n"))

	for _, label := range []string{"", "say", "say-hi ", "SAY-HI", "nope"} {
		_, err := r.Resolve(label)
		require.Error(t, err, "label %q", label)

		var unknown *UnknownSelectionError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, label, unknown.Label)
	}
}

func TestEmptyMenu(t *testing.T) {
	r := New(mustParse(t, "[menu]\n"))

	assert.True(t, r.Empty())
	assert.Equal(t, []string{}, r.DisplayLabels())
	assert.Empty(t, r.Hidden())
}
