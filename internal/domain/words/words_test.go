package words_test

import (
	"errors"
	"testing"

	"github.com/okian/worddee/internal/domain/model"
	"github.com/okian/worddee/internal/domain/words"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPicker(t *testing.T) {
	Convey("Given a picker over the default words", t, func() {
		picker := words.NewPicker(words.Defaults())

		Convey("Then it should hold the seven built-in words", func() {
			So(picker.Words(), ShouldHaveLength, 7)
		})

		Convey("When picking many times", func() {
			known := map[string]string{}
			for _, w := range words.Defaults() {
				known[w.Word] = w.Definition
			}

			Convey("Then every pick should be a known entry", func() {
				for i := 0; i < 100; i++ {
					w, err := picker.Pick()
					So(err, ShouldBeNil)
					So(known, ShouldContainKey, w.Word)
					So(w.Definition, ShouldEqual, known[w.Word])
				}
			})
		})
	})

	Convey("Given a picker with a fixed index", t, func() {
		picker := words.NewPicker(words.Defaults(), words.WithIndexFunc(func(n int) int { return n - 2 }))

		Convey("Then it should return that entry", func() {
			w, err := picker.Pick()
			So(err, ShouldBeNil)
			So(w.Word, ShouldEqual, "Innovation")
		})
	})

	Convey("Given a list with only blank words", t, func() {
		picker := words.NewPicker([]model.Word{{Word: " "}, {}})

		Convey("Then picking should fail with ErrNoWords", func() {
			_, err := picker.Pick()
			So(errors.Is(err, words.ErrNoWords), ShouldBeTrue)
		})
	})

	Convey("Given a caller that mutates its list afterwards", t, func() {
		list := []model.Word{{Word: "Candor", Definition: "Openness"}}
		picker := words.NewPicker(list)
		list[0].Word = "Changed"

		Convey("Then the picker should be unaffected", func() {
			w, err := picker.Pick()
			So(err, ShouldBeNil)
			So(w.Word, ShouldEqual, "Candor")
		})
	})
}
