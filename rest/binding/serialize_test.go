package binding

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	t.Run("EmptyModel", func(t *testing.T) {
		task, err := newTestTask(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{}, Serialize(task))
		assert.Equal(t, "{}", ToJSON(task))
	})
	t.Run("NilModel", func(t *testing.T) {
		var missing *testTask
		assert.Equal(t, map[string]interface{}{}, Serialize(missing))
	})
	t.Run("ReservedNameIsEmittedUnderWireName", func(t *testing.T) {
		task, err := newTestTask(nil, map[string]interface{}{"id": 42, "title": "x"})
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"id": int64(42), "title": "x"}, Serialize(task))
		assert.Equal(t, `{"id":42,"title":"x"}`, ToJSON(task))
	})
	t.Run("WireRepresentations", func(t *testing.T) {
		task, err := newTestTask(nil, map[string]interface{}{
			"child":    map[string]interface{}{},
			"children": []interface{}{map[string]interface{}{"name": "a", "color": "BLUE"}},
			"created":  time.Date(2017, time.June, 1, 17, 30, 0, 500, time.UTC),
			"days":     []interface{}{"2018-02-14", "2018-02-15"},
			"due":      "2018-03-01",
			"score":    8,
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{
			"child":    map[string]interface{}{},
			"children": []interface{}{map[string]interface{}{"name": "a", "color": "BLUE"}},
			"created":  "2017-06-01T17:30:00.0000005Z",
			"days":     []interface{}{"2018-02-14", "2018-02-15"},
			"due":      "2018-03-01",
			"score":    8.0,
		}, Serialize(task))
	})
	t.Run("HTMLIsNotEscaped", func(t *testing.T) {
		task, err := newTestTask(nil, map[string]interface{}{"title": "<b>&</b>"})
		require.NoError(t, err)
		assert.Equal(t, `{"title":"<b>&</b>"}`, ToJSON(task))
	})
	t.Run("Idempotent", func(t *testing.T) {
		task, err := newTestTask(nil, map[string]interface{}{
			"tags":  []interface{}{"b", "a"},
			"title": "again",
			"state": "OPEN",
			"id":    1,
		})
		require.NoError(t, err)
		first := ToJSON(task)
		assert.Equal(t, first, ToJSON(task))
		assert.Equal(t, `{"id":1,"state":"OPEN","tags":["b","a"],"title":"again"}`, first)
	})
}

func TestRoundTrip(t *testing.T) {
	original, err := newTestTask(nil, map[string]interface{}{
		"active":   false,
		"child":    map[string]interface{}{"name": "c", "color": "RED"},
		"children": []interface{}{map[string]interface{}{"name": "a"}, map[string]interface{}{"color": "BLUE"}},
		"counts":   []interface{}{3, 1, 2},
		"created":  "2017-06-01T17:30:00+02:00",
		"days":     []interface{}{"2018-02-14"},
		"due":      "2018-03-01",
		"id":       4583173393803140,
		"score":    0.25,
		"state":    "CLOSED",
		"tags":     []interface{}{"x"},
		"title":    "round trip",
	})
	require.NoError(t, err)

	t.Run("FromMap", func(t *testing.T) {
		copied, err := newTestTask(nil, Serialize(original))
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(Serialize(original), Serialize(copied)))
	})
	t.Run("FromJSON", func(t *testing.T) {
		data, err := MarshalJSON(original)
		require.NoError(t, err)
		copied, err := newTestTask(nil, nil)
		require.NoError(t, err)
		require.NoError(t, Unmarshal(data, copied))
		assert.Empty(t, cmp.Diff(Serialize(original), Serialize(copied)))
		assert.Equal(t, string(data), ToJSON(copied))
	})
}
