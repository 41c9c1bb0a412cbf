package constraint_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cclust/constraint"
)

func TestFromMatrix(t *testing.T) {
	Convey("Given a symmetric constraint matrix", t, func() {
		m := mat.NewDense(4, 4, []float64{
			1, 1, -1, 0,
			1, 1, 0, 0,
			-1, 0, 1, -1,
			0, 0, -1, 1,
		})

		Convey("When it is read into a set", func() {
			s, err := constraint.FromMatrix(m)
			So(err, ShouldBeNil)

			Convey("Then each off-diagonal pair is stored once", func() {
				So(s.Len(), ShouldEqual, 3)
				So(s.MustLinks(), ShouldEqual, 1)
				So(s.CannotLinks(), ShouldEqual, 2)
			})

			Convey("And the diagonal is dropped", func() {
				So(s.Has(0, 0), ShouldBeFalse)
				So(s.Has(3, 3), ShouldBeFalse)
			})

			Convey("And the cell values map to relation types", func() {
				t01, ok := s.Get(0, 1)
				So(ok, ShouldBeTrue)
				So(t01, ShouldEqual, constraint.MustLink)

				t23, ok := s.Get(3, 2)
				So(ok, ShouldBeTrue)
				So(t23, ShouldEqual, constraint.CannotLink)

				So(s.Has(1, 3), ShouldBeFalse)
			})
		})
	})

	Convey("Given an asymmetric matrix with conflicting cells", t, func() {
		m := mat.NewDense(2, 2, []float64{
			0, -1,
			1, 0,
		})

		Convey("The relation read first in row order wins", func() {
			s, err := constraint.FromMatrix(m)
			So(err, ShouldBeNil)
			got, _ := s.Get(0, 1)
			So(got, ShouldEqual, constraint.CannotLink)
			So(s.Len(), ShouldEqual, 1)
		})
	})

	Convey("Given malformed matrices", t, func() {
		Convey("A non-square matrix is rejected", func() {
			_, err := constraint.FromMatrix(mat.NewDense(2, 3, nil))
			So(err, ShouldEqual, constraint.ErrNotSquare)
		})

		Convey("An unknown cell value is rejected", func() {
			_, err := constraint.FromMatrix(mat.NewDense(2, 2, []float64{0, 2, 2, 0}))
			So(err, ShouldEqual, constraint.ErrUnknownValue)
		})
	})
}
