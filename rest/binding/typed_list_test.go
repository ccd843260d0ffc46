package binding

import (
	"encoding/json"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTypedList(t *testing.T) {
	Convey("With an integer list", t, func() {
		list := NewTypedList(nil, IntElements)

		Convey("loading mixed input keeps only the integers, in order", func() {
			dropped, err := list.Load([]interface{}{1, 2, "bad", 3})
			So(err, ShouldBeNil)
			So(dropped, ShouldEqual, 1)
			So(list.Ints(), ShouldResemble, []int64{1, 2, 3})
		})

		Convey("loading replaces previous contents", func() {
			_, err := list.Load([]interface{}{7, 8})
			So(err, ShouldBeNil)
			_, err = list.Load([]int{9})
			So(err, ShouldBeNil)
			So(list.Ints(), ShouldResemble, []int64{9})
		})

		Convey("decoded JSON numbers conform when they are integral", func() {
			dropped, err := list.Load([]interface{}{json.Number("4583173393803140"), float64(5), 5.5, true})
			So(err, ShouldBeNil)
			So(dropped, ShouldEqual, 2)
			So(list.Ints(), ShouldResemble, []int64{4583173393803140, 5})
		})

		Convey("a single conforming value replaces the contents", func() {
			_, err := list.Load([]interface{}{1, 2})
			So(err, ShouldBeNil)
			dropped, err := list.Load(42)
			So(err, ShouldBeNil)
			So(dropped, ShouldEqual, 0)
			So(list.Ints(), ShouldResemble, []int64{42})
		})

		Convey("a single non-conforming value leaves the list alone", func() {
			_, err := list.Load([]interface{}{1, 2})
			So(err, ShouldBeNil)
			for _, v := range []interface{}{"nope", nil, map[string]interface{}{"a": 1}} {
				dropped, err := list.Load(v)
				So(err, ShouldBeNil)
				So(dropped, ShouldEqual, 1)
			}
			So(list.Ints(), ShouldResemble, []int64{1, 2})
		})

		Convey("append ignores non-conforming values", func() {
			ok, err := list.Append(1)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			ok, err = list.Append("two")
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
			ok, err = list.Append(int64(3))
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(list.Ints(), ShouldResemble, []int64{1, 3})
		})

		Convey("purge empties the list", func() {
			_, err := list.Load([]interface{}{1, 2, 3})
			So(err, ShouldBeNil)
			list.Purge()
			So(list.Len(), ShouldEqual, 0)
			So(list.Ints(), ShouldBeEmpty)
		})

		Convey("loading from another list copies its elements", func() {
			other := NewTypedList(nil, IntElements)
			_, err := other.Load([]interface{}{1, 2})
			So(err, ShouldBeNil)
			_, err = list.Load(other)
			So(err, ShouldBeNil)
			_, err = other.Append(3)
			So(err, ShouldBeNil)
			So(list.Ints(), ShouldResemble, []int64{1, 2})
		})

		Convey("items is a copy", func() {
			_, err := list.Load([]interface{}{1})
			So(err, ShouldBeNil)
			items := list.Items()
			items[0] = "changed"
			So(list.Ints(), ShouldResemble, []int64{1})
		})
	})

	Convey("With a list permitting more than one element type", t, func() {
		list := NewTypedList(nil, IntElements, StringElements)

		Convey("each element matches the first permitted type it conforms to", func() {
			dropped, err := list.Load([]interface{}{1, "two", false})
			So(err, ShouldBeNil)
			So(dropped, ShouldEqual, 1)
			So(list.Items(), ShouldResemble, []interface{}{int64(1), "two"})
			So(list.ElementKind(), ShouldEqual, KindInt)
		})
	})

	Convey("With a date list", t, func() {
		list := NewTypedList(nil, DateElements)

		Convey("strings are parsed into dates and garbage is dropped", func() {
			dropped, err := list.Load([]string{"2018-02-14", "not a date", "2018-12-25T08:00:00Z"})
			So(err, ShouldBeNil)
			So(dropped, ShouldEqual, 1)
			So(list.Dates(), ShouldResemble, []Date{
				{Year: 2018, Month: time.February, Day: 14},
				{Year: 2018, Month: time.December, Day: 25},
			})
		})
	})

	Convey("With an enum list", t, func() {
		list := NewTypedList(nil, EnumElements("MONDAY", "TUESDAY"))

		Convey("values outside the set are dropped rather than rejected", func() {
			dropped, err := list.Load([]interface{}{"MONDAY", "FUNDAY", "TUESDAY"})
			So(err, ShouldBeNil)
			So(dropped, ShouldEqual, 1)
			So(list.Strings(), ShouldResemble, []string{"MONDAY", "TUESDAY"})
		})
	})

	Convey("With a model list", t, func() {
		base := &struct{ name string }{name: "client"}
		list := NewTypedList(base, ModelElements(&testChild{}, BuilderOf(newTestChild)))

		Convey("objects become models sharing the list's base", func() {
			existing := &testChild{name: strPtr("kept")}
			dropped, err := list.Load([]interface{}{
				map[string]interface{}{"name": "built"},
				existing,
				&testTask{},
				"nope",
			})
			So(err, ShouldBeNil)
			So(dropped, ShouldEqual, 2)
			models := list.Models()
			So(len(models), ShouldEqual, 2)
			built := models[0].(*testChild)
			So(*built.name, ShouldEqual, "built")
			So(built.base, ShouldEqual, base)
			So(models[1], ShouldEqual, existing)
		})

		Convey("an enum violation inside an element fails the load and keeps the old contents", func() {
			_, err := list.Load([]interface{}{map[string]interface{}{"name": "first"}})
			So(err, ShouldBeNil)
			_, err = list.Load([]interface{}{
				map[string]interface{}{"name": "second"},
				map[string]interface{}{"color": "GREEN"},
			})
			So(err, ShouldNotBeNil)
			invalid, ok := AsInvalidValue(err)
			So(ok, ShouldBeTrue)
			So(invalid.Field, ShouldEqual, "child_color")
			So(list.Len(), ShouldEqual, 1)
			So(*list.Models()[0].(*testChild).name, ShouldEqual, "first")
		})

		Convey("a typed nil is not a model", func() {
			var missing *testChild
			ok, err := list.Append(missing)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})
	})
}

func strPtr(s string) *string { return &s }
