package strtable_test

import (
	"strings"
	"testing"

	"github.com/bjaus/strtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type host struct {
	Name    string `table:"name"`
	Port    int
	secret  string
	Skipped bool   `table:"-"`
	Note    string `table:",omitempty"`
}

func TestFromStruct(t *testing.T) {
	t.Parallel()
	h := host{Name: "web", Port: 80, secret: "x", Skipped: true, Note: "edge"}
	want := strtable.Record{
		{Name: "name", Value: "web"},
		{Name: "Port", Value: 80},
		{Name: "Note", Value: "edge"},
	}
	tests := map[string]any{
		"value":   h,
		"pointer": &h,
	}
	for name, v := range tests {
		v := v
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := strtable.FromStruct(v)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestFromStructRejectsNonStruct(t *testing.T) {
	t.Parallel()
	tests := map[string]any{
		"int":         5,
		"nil":         nil,
		"nil pointer": (*host)(nil),
		"map":         map[string]any{"a": 1},
	}
	for name, v := range tests {
		v := v
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := strtable.FromStruct(v)
			require.ErrorIs(t, err, strtable.ErrNotStruct)
		})
	}
}

func TestFromStructs(t *testing.T) {
	t.Parallel()
	records, err := strtable.FromStructs(host{Name: "web", Port: 80}, host{Name: "db", Port: 5432})
	require.NoError(t, err)
	got, err := strtable.Render(records, nil)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"| name | Port | Note |",
		"----------------------",
		"| web  |   80 |      |",
		"| db   | 5432 |      |",
	}, "\n"), got)
}

func TestFromStructsError(t *testing.T) {
	t.Parallel()
	_, err := strtable.FromStructs[any](host{}, "nope")
	require.ErrorIs(t, err, strtable.ErrNotStruct)
	assert.Contains(t, err.Error(), "item 1")
}

func TestFromMap(t *testing.T) {
	t.Parallel()
	got := strtable.FromMap(map[string]any{"b": 2, "a": "x", "c": nil})
	assert.Equal(t, []string{"a", "b", "c"}, got.Keys())
	v, ok := got.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

// --- YAML ---

func TestParseRecords(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  []strtable.Record
	}{
		"yaml": {
			input: "- name: web\n  port: 8080\n  healthy: true\n- name: db\n  port: 5432\n",
			want: []strtable.Record{
				{{Name: "name", Value: "web"}, {Name: "port", Value: 8080}, {Name: "healthy", Value: true}},
				{{Name: "name", Value: "db"}, {Name: "port", Value: 5432}},
			},
		},
		"json keeps key order": {
			input: `[{"z": 1.5, "a": "x", "m": null}]`,
			want: []strtable.Record{
				{{Name: "z", Value: 1.5}, {Name: "a", Value: "x"}, {Name: "m", Value: nil}},
			},
		},
		"anchors": {
			input: "- &base {a: 1}\n- *base\n",
			want: []strtable.Record{
				{{Name: "a", Value: 1}},
				{{Name: "a", Value: 1}},
			},
		},
		"merge key": {
			input: "- &base {a: 1}\n- {<<: *base, b: 2}\n",
			want: []strtable.Record{
				{{Name: "a", Value: 1}},
				{{Name: "a", Value: 1}, {Name: "b", Value: 2}},
			},
		},
		"own keys win over merge": {
			input: "- &base {a: 1, c: 3}\n- {b: 2, <<: *base, a: 9}\n",
			want: []strtable.Record{
				{{Name: "a", Value: 1}, {Name: "c", Value: 3}},
				{{Name: "b", Value: 2}, {Name: "c", Value: 3}, {Name: "a", Value: 9}},
			},
		},
		"merge sequence": {
			input: "- &x {a: 1}\n- &y {a: 2, b: 2}\n- {<<: [*x, *y]}\n",
			want: []strtable.Record{
				{{Name: "a", Value: 1}},
				{{Name: "a", Value: 2}, {Name: "b", Value: 2}},
				{{Name: "a", Value: 1}, {Name: "b", Value: 2}},
			},
		},
		"empty document": {input: "", want: nil},
		"null document":  {input: "null", want: nil},
		"empty sequence": {input: "[]", want: []strtable.Record{}},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := strtable.ParseRecords([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRecordsInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"mapping":             "a: 1\n",
		"scalar item":         "- 1\n- 2\n",
		"syntax":              "[{a: 1}",
		"duplicate key":       "- {a: 1, a: 2}\n",
		"duplicate block key": "- name: a\n  port: 1\n  name: b\n",
		"merge scalar":        "- {<<: 1, b: 2}\n",
		"merge scalar list":   "- {<<: [1], b: 2}\n",
	}
	for name, input := range tests {
		input := input
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := strtable.ParseRecords([]byte(input))
			require.ErrorIs(t, err, strtable.ErrInvalidRecords)
		})
	}
}

func TestParseRecordsRender(t *testing.T) {
	t.Parallel()
	records, err := strtable.ParseRecords([]byte("- service: api\n  replicas: 3\n- service: worker\n  replicas: 12\n"))
	require.NoError(t, err)
	got, err := strtable.Render(records, nil)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"| service | replicas |",
		"----------------------",
		"| api     |        3 |",
		"| worker  |       12 |",
	}, "\n"), got)
}

func TestParseOptions(t *testing.T) {
	t.Parallel()
	input := `
headers: [name, port]
outerBorder: "#"
innerBorder: ":"
headerSeparator: "="
rowSeparator: "~"
capitalizeHeaders: true
adjustForColoredOutput: true
`
	got, err := strtable.ParseOptions([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, strtable.Options{
		Headers:                []string{"name", "port"},
		OuterBorder:            "#",
		InnerBorder:            ":",
		HeaderSeparator:        "=",
		RowSeparator:           "~",
		CapitalizeHeaders:      true,
		AdjustForColoredOutput: true,
	}, got)
}

func TestParseOptionsEmpty(t *testing.T) {
	t.Parallel()
	got, err := strtable.ParseOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, strtable.Options{}, got)
}

func TestParseOptionsInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"unknown key": "bogus: 1\n",
		"formatters":  "formatters: {}\n",
		"wrong type":  "capitalizeHeaders: [1]\n",
	}
	for name, input := range tests {
		input := input
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := strtable.ParseOptions([]byte(input))
			require.ErrorIs(t, err, strtable.ErrInvalidOptions)
		})
	}
}

func TestParseOptionsRender(t *testing.T) {
	t.Parallel()
	opts, err := strtable.ParseOptions([]byte("headers: [port]\nrowSeparator: \"-~\"\n"))
	require.NoError(t, err)
	records := []strtable.Record{
		{{Name: "name", Value: "a"}, {Name: "port", Value: 1}},
		{{Name: "name", Value: "b"}, {Name: "port", Value: 22}},
	}
	got, err := strtable.Render(records, &opts)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"| port |",
		"--------",
		"|    1 |",
		"-~-~-~-~",
		"|   22 |",
	}, "\n"), got)
}
