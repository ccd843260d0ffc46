package binding

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeserialize(t *testing.T) {
	t.Run("BindsEveryShape", func(t *testing.T) {
		task, err := newTestTask(nil, map[string]interface{}{
			"active":   true,
			"child":    map[string]interface{}{"name": "c", "color": "RED"},
			"children": []interface{}{map[string]interface{}{"name": "a"}},
			"counts":   []interface{}{1, 2},
			"created":  "2017-06-01T17:30:00Z",
			"days":     []interface{}{"2018-02-14"},
			"due":      "2018-03-01",
			"id":       42,
			"score":    2.5,
			"state":    "OPEN",
			"tags":     []interface{}{"x", "y"},
			"title":    "write tests",
		})
		require.NoError(t, err)

		assert.True(t, *task.active)
		require.NotNil(t, task.child)
		assert.Equal(t, "c", *task.child.name)
		assert.Equal(t, "RED", *task.child.color)
		assert.Equal(t, 1, task.children.Len())
		assert.Equal(t, []int64{1, 2}, task.counts.Ints())
		assert.True(t, task.created.Equal(time.Date(2017, time.June, 1, 17, 30, 0, 0, time.UTC)))
		assert.Equal(t, []Date{{Year: 2018, Month: time.February, Day: 14}}, task.days.Dates())
		assert.Equal(t, Date{Year: 2018, Month: time.March, Day: 1}, *task.due)
		assert.EqualValues(t, 42, *task.id)
		assert.Equal(t, 2.5, *task.score)
		assert.Equal(t, "OPEN", *task.state)
		assert.Equal(t, []string{"x", "y"}, task.tags.Strings())
		assert.Equal(t, "write tests", *task.title)
	})
	t.Run("ReservedNameBindsToRenamedAttribute", func(t *testing.T) {
		task, err := newTestTask(nil, map[string]interface{}{"id": 42, "title": "x"})
		require.NoError(t, err)
		require.NotNil(t, task.id)
		assert.EqualValues(t, 42, *task.id)
	})
	t.Run("CamelCaseKeys", func(t *testing.T) {
		task := &testTask{}
		require.NoError(t, Deserialize(task, map[string]interface{}{"Title": "camel", "Id": 7}))
		assert.Equal(t, "camel", *task.title)
		assert.EqualValues(t, 7, *task.id)
	})
	t.Run("MismatchesAreDroppedAndReported", func(t *testing.T) {
		task, err := newTestTask(nil, nil)
		require.NoError(t, err)
		report, err := DeserializeReport(task, map[string]interface{}{
			"active":  "yes",
			"counts":  []interface{}{1, "two"},
			"created": "whenever",
			"id":      "42",
			"state":   7,
			"title":   "kept",
			"extra":   true,
			"more":    nil,
		})
		require.NoError(t, err)
		assert.Nil(t, task.active)
		assert.Nil(t, task.created)
		assert.Nil(t, task.id)
		assert.Nil(t, task.state)
		assert.Equal(t, []int64{1}, task.counts.Ints())
		assert.Equal(t, "kept", *task.title)
		assert.Equal(t, []string{"extra", "more"}, report.Unknown)
		assert.Equal(t, []string{"active", "counts", "created", "id", "state"}, report.Rejected)
		assert.False(t, report.Empty())
		assert.Contains(t, report.String(), "unknown: extra, more")
	})
	t.Run("NestedDropsAreReportedWithPaths", func(t *testing.T) {
		task, err := newTestTask(nil, nil)
		require.NoError(t, err)
		report, err := DeserializeReport(task, map[string]interface{}{
			"child": map[string]interface{}{"name": 3, "shade": "dark"},
			"children": []interface{}{
				map[string]interface{}{"name": "ok"},
				"not a child",
				map[string]interface{}{"name": "x", "extra": true},
			},
			"title": "kept",
		})
		require.NoError(t, err)
		require.NotNil(t, task.child, "the nested model is still bound")
		assert.Nil(t, task.child.name)
		assert.Equal(t, 2, task.children.Len())
		assert.Equal(t, []string{"child.shade", "children[2].extra"}, report.Unknown)
		assert.Equal(t, []string{"child.name", "children"}, report.Rejected)
		assert.Equal(t, "unknown: child.shade, children[2].extra; rejected: child.name, children", report.String())
	})
	t.Run("NullLeavesFieldsUntouched", func(t *testing.T) {
		task, err := newTestTask(nil, map[string]interface{}{"title": "first", "tags": []interface{}{"a"}})
		require.NoError(t, err)
		report, err := DeserializeReport(task, map[string]interface{}{"title": nil, "tags": nil})
		require.NoError(t, err)
		assert.Equal(t, "first", *task.title)
		assert.Equal(t, []string{"a"}, task.tags.Strings())
		assert.Equal(t, []string{"tags", "title"}, report.Rejected)
	})
	t.Run("EnumViolationStopsDeserialization", func(t *testing.T) {
		task := &testTask{}
		err := Deserialize(task, map[string]interface{}{
			"active": true,
			"state":  "BOGUS",
			"title":  "after",
		})
		require.Error(t, err)
		invalid, ok := errors.Cause(err).(*InvalidValueError)
		require.True(t, ok)
		assert.Equal(t, "testTask", invalid.Model)
		assert.Equal(t, "task_state", invalid.Field)
		assert.Equal(t, "BOGUS", invalid.Value)
		assert.Equal(t, taskStates, invalid.Allowed)
		assert.Contains(t, err.Error(), "binding field 'state'")

		// keys are visited in order, so only the ones before "state" are set
		assert.True(t, *task.active)
		assert.Nil(t, task.title)
		assert.Nil(t, task.state)
	})
	t.Run("NestedEnumViolationPropagates", func(t *testing.T) {
		_, err := newTestTask(nil, map[string]interface{}{
			"child": map[string]interface{}{"color": "GREEN"},
		})
		require.Error(t, err)
		invalid, ok := AsInvalidValue(err)
		require.True(t, ok)
		assert.Equal(t, "child_color", invalid.Field)
		assert.Equal(t, []string{"RED", "BLUE"}, invalid.Allowed)
	})
	t.Run("NestedModelsShareTheBase", func(t *testing.T) {
		base := &struct{ token string }{token: "secret"}
		task, err := newTestTask(base, map[string]interface{}{
			"child":    map[string]interface{}{"name": "single"},
			"children": []interface{}{map[string]interface{}{"name": "listed"}},
		})
		require.NoError(t, err)
		assert.True(t, task.child.base == Base(base))
		listed := task.children.Models()[0].(*testChild)
		assert.True(t, listed.base == Base(base))
	})
	t.Run("NilAndEmptyInput", func(t *testing.T) {
		report, err := DeserializeReport(&testTask{}, nil)
		assert.NoError(t, err)
		assert.True(t, report.Empty())
		var missing *testTask
		report, err = DeserializeReport(missing, map[string]interface{}{"title": "x"})
		assert.NoError(t, err)
		assert.True(t, report.Empty())
	})
}

func TestUnmarshal(t *testing.T) {
	task, err := newTestTask(nil, nil)
	require.NoError(t, err)
	require.NoError(t, Unmarshal([]byte(`{"id": 9007199254740993, "counts": [1, 2.0, 2.5], "title": "json"}`), task))
	assert.EqualValues(t, int64(9007199254740993), *task.id)
	assert.Equal(t, []int64{1, 2}, task.counts.Ints())
	assert.Equal(t, "json", *task.title)

	assert.Error(t, Unmarshal([]byte(`[]`), task))
	assert.Error(t, Unmarshal([]byte(`{"state": "BOGUS"}`), task))
}

func TestSet(t *testing.T) {
	task, err := newTestTask(nil, nil)
	require.NoError(t, err)

	assert.NoError(t, Set(task, "title", "by attribute"))
	assert.Equal(t, "by attribute", *task.title)

	assert.NoError(t, Set(task, "id", 5))
	assert.EqualValues(t, 5, *task.id)
	assert.NoError(t, Set(task, "id_", int64(6)))
	assert.EqualValues(t, 6, *task.id)

	title := "from pointer"
	assert.NoError(t, Set(task, "title", &title))
	assert.Equal(t, "from pointer", *task.title)

	assert.NoError(t, Set(task, "title", 12), "mismatches are silent")
	assert.Equal(t, "from pointer", *task.title)

	assert.NoError(t, Set(task, "state", "CLOSED"))
	err = Set(task, "state", "BOGUS")
	require.Error(t, err)
	_, ok := AsInvalidValue(err)
	assert.True(t, ok)
	assert.Equal(t, "CLOSED", *task.state)

	assert.Error(t, Set(task, "nonexistent", 1))
	var missing *testTask
	assert.Error(t, Set(missing, "title", "x"))
}
