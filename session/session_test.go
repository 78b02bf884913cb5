package session_test

import (
	"bytes"
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/AirHelp/statcalc/config"
	"github.com/AirHelp/statcalc/session"
	"github.com/AirHelp/statcalc/testdata"
)

const prompt = "Enter a dataset (comma separated, e.g. 1,2,3,4,5) or 'q' to quit: "

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

var _ = Describe("Session", func() {
	var (
		out *bytes.Buffer
		cfg config.Config
		ctx context.Context
	)

	newSession := func(input string) *session.Session {
		return session.New(session.NewSessionInput{
			In:           strings.NewReader(input),
			Out:          out,
			GlobalConfig: cfg,
			Logger:       zap.NewNop(),
		})
	}

	BeforeEach(func() {
		out = &bytes.Buffer{}
		cfg = config.NewWithDefaults()
		ctx = context.Background()
	})

	Describe("Start()", func() {
		It("Produces expected transcript", func() {
			s := newSession(testdata.LoadFixture("session_input.txt"))

			Expect(s.Start(ctx)).To(Succeed())
			Expect(out.String()).To(Equal(testdata.LoadFixture("session_transcript.txt")))
		})

		It("Does not print statistics for the quit line", func() {
			s := newSession("q\n1,2,3\n")

			Expect(s.Start(ctx)).To(Succeed())
			Expect(out.String()).ToNot(ContainSubstring("Data:"))
			Expect(strings.Count(out.String(), prompt)).To(Equal(1))
		})

		DescribeTable("Accepts quit sentinels",
			func(input string) {
				Expect(newSession(input).Start(ctx)).To(Succeed())
				Expect(out.String()).ToNot(ContainSubstring("Data:"))
			},
			Entry("lower case", "q\n"),
			Entry("upper case", "Q\n"),
			Entry("surrounded by spaces", "  q \n"),
		)

		It("Stops at end of input", func() {
			s := newSession("4")

			Expect(s.Start(ctx)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Mode: 4 (appears 1 time)\n"))
			Expect(out.String()).To(HaveSuffix(prompt))
		})

		It("Re-prompts after empty line", func() {
			s := newSession("\n,,\nq\n")

			Expect(s.Start(ctx)).To(Succeed())
			Expect(strings.Count(out.String(), "Error: no valid integers found in input\n")).To(Equal(2))
			Expect(strings.Count(out.String(), prompt)).To(Equal(3))
		})

		It("Handles lines longer than 64 KiB", func() {
			line := strings.Repeat("1234,", 20000)
			Expect(len(line)).To(BeNumerically(">", 64*1024))

			s := newSession(line + "\nq\n")

			Expect(s.Start(ctx)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Size: 20,000 elements\n"))
			Expect(out.String()).To(ContainSubstring("Mean: 1234.00\n"))
			Expect(out.String()).To(ContainSubstring("Mode: 1234 (appears 20000 times)\n"))
			Expect(out.String()).ToNot(ContainSubstring("Error:"))
		})

		It("Reports largest int values without overflow", func() {
			s := newSession("9223372036854775807,9223372036854775807\nq\n")

			Expect(s.Start(ctx)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Mean: 9223372036854775808.00\n"))
		})

		It("Accepts Windows line endings", func() {
			s := newSession("1,2\r\nq\r\n")

			Expect(s.Start(ctx)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Data: [1, 2]\n"))
			Expect(strings.Count(out.String(), prompt)).To(Equal(2))
		})

		It("Prints extended statistics when enabled", func() {
			cfg.Extended = true
			s := newSession("5,3,8,3,9,3,1\nq\n")

			Expect(s.Start(ctx)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Range: 8\nVariance: 7.39\nStandard Deviation: 2.72\n"))
		})

		It("Prints summary when enabled", func() {
			cfg.Summary = true
			s := newSession("1,1,2\nq\n")

			Expect(s.Start(ctx)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Summary: {"))
			Expect(out.String()).To(ContainSubstring(`"mode_frequency": 2`))
		})

		It("Stops when context is cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			Expect(newSession("1,2,3\n").Start(cancelled)).To(Succeed())
			Expect(out.String()).ToNot(ContainSubstring(prompt))
		})

		It("Returns read errors", func() {
			s := session.New(session.NewSessionInput{
				In:     failingReader{},
				Out:    out,
				Logger: zap.NewNop(),
			})

			err := s.Start(ctx)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("broken pipe"))
		})

		It("Works without logger", func() {
			s := session.New(session.NewSessionInput{
				In:  strings.NewReader("1\n"),
				Out: out,
			})

			Expect(s.Start(ctx)).To(Succeed())
		})
	})
})
