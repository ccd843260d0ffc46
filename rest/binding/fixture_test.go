package binding

import "time"

var (
	taskStates  = []string{"OPEN", "CLOSED"}
	childColors = []string{"RED", "BLUE"}
)

type testChild struct {
	base  Base
	name  *string
	color *string
}

func newTestChild(base Base, props map[string]interface{}) (*testChild, error) {
	c := &testChild{base: base}
	if err := Deserialize(c, props); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *testChild) Fields() []Field {
	return []Field{
		EnumField("testChild", "color", "child_color", childColors, &c.color),
		StringField("name", &c.name),
	}
}

type testTask struct {
	base Base

	active   *bool
	child    *testChild
	children *TypedList
	counts   *TypedList
	created  *time.Time
	days     *TypedList
	due      *Date
	id       *int64
	score    *float64
	state    *string
	tags     *TypedList
	title    *string
}

func newTestTask(base Base, props map[string]interface{}) (*testTask, error) {
	t := &testTask{
		base:     base,
		children: NewTypedList(base, ModelElements(&testChild{}, BuilderOf(newTestChild))),
		counts:   NewTypedList(base, IntElements),
		days:     NewTypedList(base, DateElements),
		tags:     NewTypedList(base, StringElements),
	}
	if err := Deserialize(t, props); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *testTask) Fields() []Field {
	return []Field{
		BoolField("active", &t.active),
		ModelField("child", t.base, &t.child, newTestChild),
		ListField("children", t.children),
		ListField("counts", t.counts),
		DateTimeField("created", &t.created),
		ListField("days", t.days),
		DateField("due", &t.due),
		IntField("id_", &t.id),
		NumberField("score", &t.score),
		EnumField("testTask", "state", "task_state", taskStates, &t.state),
		ListField("tags", t.tags),
		StringField("title", &t.title),
	}
}

// renamedModel declares its own rename table instead of DefaultRenames.
type renamedModel struct {
	kind *string
}

func (r *renamedModel) Fields() []Field {
	return []Field{StringField("kind_", &r.kind)}
}

func (r *renamedModel) Renames() map[string]string {
	return map[string]string{"type": "kind_"}
}
