package robocopy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kliatsko/librarymirror/internal/robocopy"
)

var _ = Describe("Classify", func() {
	Describe("file-copy lines", func() {
		It("parses a byte count and path", func() {
			event := robocopy.Classify("\t  52428800\t/media/Movies/Heat (1995)/Heat.mkv")

			Expect(event).To(Equal(robocopy.FileCopied{
				Size: 52428800,
				Path: "/media/Movies/Heat (1995)/Heat.mkv",
			}))
		})

		It("accepts paths containing spaces", func() {
			event := robocopy.Classify("   1024   D:\\Backup\\The Wire S01\\episode 1.mkv")

			Expect(event).To(Equal(robocopy.FileCopied{
				Size: 1024,
				Path: "D:\\Backup\\The Wire S01\\episode 1.mkv",
			}))
		})

		It("accepts a zero-byte file", func() {
			Expect(robocopy.Classify("  0  /media/empty.nfo")).To(Equal(robocopy.FileCopied{
				Size: 0,
				Path: "/media/empty.nfo",
			}))
		})

		It("rejects a byte count with no path", func() {
			Expect(robocopy.Classify("   1234   ")).To(Equal(robocopy.Unrecognized{}))
		})

		It("rejects a negative byte count", func() {
			Expect(robocopy.Classify("  -5  /media/file.mkv")).To(Equal(robocopy.Unrecognized{}))
		})
	})

	Describe("Files summary lines", func() {
		It("retains the copied, skipped, and failed positions", func() {
			event := robocopy.Classify("    Files :       120         2       118         0         3         7")

			Expect(event).To(Equal(robocopy.SummaryFiles{Copied: 2, Skipped: 118, Failed: 3}))
		})

		It("parses without a colon after the label", func() {
			event := robocopy.Classify("Files 10 4 6 0 0 0")

			Expect(event).To(Equal(robocopy.SummaryFiles{Copied: 4, Skipped: 6, Failed: 0}))
		})

		It("rejects a row with the wrong column count", func() {
			Expect(robocopy.Classify("Files : 1 2 3 4 5")).To(Equal(robocopy.Unrecognized{}))
			Expect(robocopy.Classify("Files : 1 2 3 4 5 6 7")).To(Equal(robocopy.Unrecognized{}))
		})
	})

	Describe("Bytes summary lines", func() {
		It("parses an exact byte value without a suffix", func() {
			Expect(robocopy.Classify("   Bytes :   1048576")).To(Equal(robocopy.SummaryBytes{Copied: 1048576}))
		})

		It("scales by power-of-two unit suffixes", func() {
			Expect(robocopy.Classify("Bytes : 2 k")).To(Equal(robocopy.SummaryBytes{Copied: 2048}))
			Expect(robocopy.Classify("Bytes : 3 m")).To(Equal(robocopy.SummaryBytes{Copied: 3 * (1 << 20)}))
			Expect(robocopy.Classify("Bytes : 1.5 g")).To(Equal(robocopy.SummaryBytes{Copied: 3 * (1 << 29)}))
			Expect(robocopy.Classify("Bytes : 1 t")).To(Equal(robocopy.SummaryBytes{Copied: 1 << 40}))
		})

		It("treats the suffix case-insensitively", func() {
			Expect(robocopy.Classify("Bytes : 2 G")).To(Equal(robocopy.SummaryBytes{Copied: 2 << 30}))
		})

		It("ignores trailing columns", func() {
			event := robocopy.Classify("   Bytes :  52428800   1048576   51380224   0   0   0")

			Expect(event).To(Equal(robocopy.SummaryBytes{Copied: 52428800}))
		})
	})

	Describe("Extras summary lines", func() {
		It("parses the deleted-from-destination count", func() {
			Expect(robocopy.Classify("   Extras :      4")).To(Equal(robocopy.SummaryExtras{Deleted: 4}))
		})
	})

	Describe("noise", func() {
		DescribeTable("classifies as Unrecognized",
			func(line string) {
				Expect(robocopy.Classify(line)).To(Equal(robocopy.Unrecognized{}))
			},
			Entry("empty line", ""),
			Entry("whitespace only", "   \t "),
			Entry("banner", "-------------------------------------------------------------------------------"),
			Entry("header", "   ROBOCOPY     ::     Robust File Copy for Windows"),
			Entry("dirs summary row", "    Dirs :        12         0        12         0         0         0"),
			Entry("speed line", "   Speed :            31125876 Bytes/sec."),
			Entry("prose", "Started : Monday, June 1, 2026 9:41:02 PM"),
		)
	})
})
