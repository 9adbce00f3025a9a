package upstream_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/okian/batterlab/internal/adapters/upstream"
	"github.com/smartystreets/goconvey/convey"
)

var errFlaky = errors.New("flaky")

func TestRetrier(t *testing.T) {
	convey.Convey("Given a retrier with three attempts", t, func() {
		r := upstream.NewRetrier("test", 3, time.Millisecond)
		ctx := context.Background()

		convey.Convey("When the call fails twice then succeeds", func() {
			calls := 0
			v, err := upstream.Do(ctx, r, func(context.Context) (int, error) {
				calls++
				if calls < 3 {
					return 0, errFlaky
				}
				return 42, nil
			})

			convey.Convey("Then the value of the last attempt is returned", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(v, convey.ShouldEqual, 42)
				convey.So(calls, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When every attempt fails", func() {
			calls := 0
			_, err := upstream.Do(ctx, r, func(context.Context) (int, error) {
				calls++
				return 0, errFlaky
			})

			convey.Convey("Then the last error is returned after all attempts", func() {
				convey.So(err, convey.ShouldEqual, errFlaky)
				convey.So(calls, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When the upstream answers with a client error", func() {
			calls := 0
			_, err := upstream.Do(ctx, r, func(context.Context) (int, error) {
				calls++
				return 0, &upstream.StatusError{Provider: "test", StatusCode: http.StatusNotFound}
			})

			convey.Convey("Then it is not retried", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(calls, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When the context is cancelled during backoff", func() {
			slow := upstream.NewRetrier("test", 3, time.Hour)
			cctx, cancel := context.WithCancel(ctx)
			_, err := upstream.Do(cctx, slow, func(context.Context) (int, error) {
				cancel()
				return 0, errFlaky
			})

			convey.Convey("Then the context error is returned", func() {
				convey.So(errors.Is(err, context.Canceled), convey.ShouldBeTrue)
			})
		})
	})
}

func TestBreaker(t *testing.T) {
	convey.Convey("Given a breaker tripping after three failed requests", t, func() {
		b := upstream.NewBreaker("test-breaker", upstream.BreakerSettings{
			MaxRequests:  1,
			Timeout:      time.Minute,
			MinRequests:  3,
			FailureRatio: 0.6,
		})
		fail := func() (string, error) { return "", errFlaky }

		convey.Convey("When three calls fail", func() {
			for range 3 {
				_, err := upstream.Run(b, fail)
				convey.So(err, convey.ShouldEqual, errFlaky)
			}

			convey.Convey("Then further calls are rejected as unavailable", func() {
				called := false
				_, err := upstream.Run(b, func() (string, error) {
					called = true
					return "ok", nil
				})
				convey.So(errors.Is(err, upstream.ErrUnavailable), convey.ShouldBeTrue)
				convey.So(called, convey.ShouldBeFalse)
				convey.So(b.State(), convey.ShouldEqual, "open")
			})
		})

		convey.Convey("When client errors are returned", func() {
			for range 5 {
				_, _ = upstream.Run(b, func() (string, error) {
					return "", &upstream.StatusError{Provider: "test", StatusCode: http.StatusBadRequest}
				})
			}

			convey.Convey("Then the breaker stays closed", func() {
				convey.So(b.State(), convey.ShouldEqual, "closed")
			})
		})

		convey.Convey("When calls succeed", func() {
			v, err := upstream.Run(b, func() (string, error) { return "ok", nil })

			convey.Convey("Then the value passes through", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(v, convey.ShouldEqual, "ok")
			})
		})
	})
}

func TestStatusError(t *testing.T) {
	convey.Convey("Given status errors", t, func() {
		convey.So((&upstream.StatusError{StatusCode: 503}).Temporary(), convey.ShouldBeTrue)
		convey.So((&upstream.StatusError{StatusCode: 429}).Temporary(), convey.ShouldBeTrue)
		convey.So((&upstream.StatusError{StatusCode: 404}).Temporary(), convey.ShouldBeFalse)
		convey.So(len(upstream.Snippet(make([]byte, 1000))), convey.ShouldEqual, 256)
		convey.So((&upstream.StatusError{Provider: "p", StatusCode: 500, Body: "boom"}).Error(),
			convey.ShouldEqual, "p: unexpected status 500: boom")
	})
}
