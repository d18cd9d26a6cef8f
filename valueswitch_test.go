package rowfmt_test

import (
	"testing"

	"github.com/bjaus/rowfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test types: keyed records ---

type keyedRecord struct {
	kind string
	val  string
}

type keyedProc struct {
	name  string
	calls []procCall
}

func (p *keyedProc) Process(record keyedRecord, headers []string, indexes []int) ([]any, error) {
	p.calls = append(p.calls, procCall{record: record.val, headers: headers, indexes: indexes})
	return []any{p.name, record.val}, nil
}

func kindKey(r keyedRecord) any { return r.kind }

// ============================================================
// Tests
// ============================================================

func TestValueSwitchRouting(t *testing.T) {
	t.Parallel()
	user := &keyedProc{name: "user"}
	audit := &keyedProc{name: "audit"}
	vs := rowfmt.NewValueSwitch(kindKey)
	vs.Route("user", user)
	vs.Route("audit", audit)

	records := []keyedRecord{
		{kind: "user", val: "u1"},
		{kind: "audit", val: "a1"},
		{kind: "user", val: "u2"},
	}
	for _, r := range records {
		row, err := vs.Process(r, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []any{r.kind, r.val}, row)
	}

	assert.Len(t, user.calls, 2)
	assert.Len(t, audit.calls, 1)
}

func TestValueSwitchNoRoute(t *testing.T) {
	t.Parallel()
	vs := rowfmt.NewValueSwitch(kindKey)
	vs.Route("user", &keyedProc{name: "user"})

	row, err := vs.Process(keyedRecord{kind: "mystery"}, nil, nil)
	require.ErrorIs(t, err, rowfmt.ErrNoRoute)
	assert.ErrorContains(t, err, "mystery")
	assert.Nil(t, row)
}

func TestValueSwitchDefault(t *testing.T) {
	t.Parallel()
	def := &keyedProc{name: "default"}
	vs := rowfmt.NewValueSwitch(kindKey)
	vs.Route("user", &keyedProc{name: "user"})
	vs.Default(def)

	row, err := vs.Process(keyedRecord{kind: "mystery", val: "m1"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"default", "m1"}, row)
}

func TestValueSwitchDefaultSkips(t *testing.T) {
	t.Parallel()
	vs := rowfmt.NewValueSwitch(kindKey)
	vs.Route("user", &keyedProc{name: "user"})
	vs.Default(rowfmt.ProcessorFunc(func(keyedRecord, []string, []int) ([]any, error) {
		return nil, nil
	}))

	row, err := vs.Process(keyedRecord{kind: "mystery"}, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestValueSwitchRouteOverrides(t *testing.T) {
	t.Parallel()
	user := &keyedProc{name: "user"}
	audit := &keyedProc{name: "audit"}
	vs := rowfmt.NewValueSwitch(kindKey)
	vs.Route("user", user).WithHeaders("id", "name").WithIndexes(1)
	vs.Route("audit", audit)

	callerHeaders := []string{"x", "y"}
	callerIndexes := []int{0}

	_, err := vs.Process(keyedRecord{kind: "user", val: "u1"}, callerHeaders, callerIndexes)
	require.NoError(t, err)
	_, err = vs.Process(keyedRecord{kind: "audit", val: "a1"}, callerHeaders, callerIndexes)
	require.NoError(t, err)

	// The routed override applies only while its processor is selected.
	require.Len(t, user.calls, 1)
	assert.Equal(t, []string{"id", "name"}, user.calls[0].headers)
	assert.Equal(t, []int{1}, user.calls[0].indexes)

	require.Len(t, audit.calls, 1)
	assert.Equal(t, callerHeaders, audit.calls[0].headers)
	assert.Equal(t, callerIndexes, audit.calls[0].indexes)
}

func TestValueSwitchOnSwitch(t *testing.T) {
	t.Parallel()
	user := &keyedProc{name: "user"}
	audit := &keyedProc{name: "audit"}
	vs := rowfmt.NewValueSwitch(kindKey)
	vs.Route("user", user)
	vs.Route("audit", audit)

	var transitions []string
	vs.OnSwitch(func(prev, next rowfmt.Processor[keyedRecord]) {
		from := "none"
		if prev != nil {
			from = prev.(*keyedProc).name
		}
		transitions = append(transitions, from+"->"+next.(*keyedProc).name)
	})

	kinds := []string{"user", "user", "audit", "user"}
	for _, k := range kinds {
		_, err := vs.Process(keyedRecord{kind: k}, nil, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"none->user", "user->audit", "audit->user"}, transitions)
}

func TestValueSwitchRouteReplace(t *testing.T) {
	t.Parallel()
	first := &keyedProc{name: "first"}
	second := &keyedProc{name: "second"}
	vs := rowfmt.NewValueSwitch(kindKey)
	vs.Route("user", first)
	vs.Route("user", second)

	row, err := vs.Process(keyedRecord{kind: "user", val: "u1"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"second", "u1"}, row)
	assert.Empty(t, first.calls)
}
