// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sumdata

import (
	"archive/tar"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "go.chromium.org/luci/common/testing/assertions"
)

func TestReferenceScheme(t *testing.T) {
	t.Parallel()

	Convey("ReferenceScheme", t, func() {
		Convey("names", func() {
			So(ReferenceNames.ToSortedSlice(), ShouldResemble,
				[]string{"header", "header-field", "literal"})

			for _, n := range ReferenceNames.ToSlice() {
				s, err := ParseReferenceScheme(n)
				So(err, ShouldBeNil)
				So(s.Valid(), ShouldBeNil)
				So(s.String(), ShouldEqual, n)
			}

			s, err := ParseReferenceScheme("")
			So(err, ShouldBeNil)
			So(s, ShouldEqual, ReferenceLiteral)

			_, err = ParseReferenceScheme("posix")
			So(err, ShouldErrLike, `unknown reference scheme "posix" (expected header|header-field|literal)`)
		})

		Convey("invalid", func() {
			So(ReferenceScheme(100).Valid(), ShouldErrLike, "unknown reference scheme 0x64")
			So(ReferenceScheme(100).String(), ShouldEqual, "ReferenceScheme(0x64)")
		})

		Convey("NeedsHeader", func() {
			So(ReferenceLiteral.NeedsHeader(), ShouldBeFalse)
			So(ReferenceHeaderField.NeedsHeader(), ShouldBeTrue)
			So(ReferenceHeaderComputed.NeedsHeader(), ShouldBeTrue)
		})

		Convey("Resolve", func() {
			h := tarHeader(tar.FormatUSTAR)
			stored, err := h.StoredChecksum()
			So(err, ShouldBeNil)

			v, err := ReferenceHeaderField.Resolve(h)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, stored)

			v, err = ReferenceHeaderComputed.Resolve(h)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, stored)

			_, err = ReferenceLiteral.Resolve(h)
			So(err, ShouldErrLike, "does not read the header")

			_, err = ReferenceScheme(100).Resolve(h)
			So(err, ShouldErrLike, "unknown reference scheme")

			Convey("header-field needs magic", func() {
				_, err := ReferenceHeaderField.Resolve(&Header{})
				So(err, ShouldErrLike, "bad magic")

				v, err := ReferenceHeaderComputed.Resolve(&Header{})
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 256)
			})
		})
	})
}
