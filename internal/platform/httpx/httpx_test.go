package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

type statusErr struct{ code int }

func (e *statusErr) Error() string       { return fmt.Sprintf("http %d", e.code) }
func (e *statusErr) HTTPStatusCode() int { return e.code }

func TestIsRetryableError(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, false},
		{context.DeadlineExceeded, false},
		{&statusErr{code: http.StatusTooManyRequests}, true},
		{&statusErr{code: http.StatusInternalServerError}, true},
		{&statusErr{code: http.StatusBadGateway}, true},
		{&statusErr{code: http.StatusBadRequest}, false},
		{&statusErr{code: http.StatusUnauthorized}, false},
		{errors.New("read tcp: connection reset by peer"), true},
		{errors.New("dial tcp: connection refused"), true},
		{errors.New("unexpected EOF"), true},
		{errors.New("no such host"), false},
	}
	for _, tc := range cases {
		if got := IsRetryableError(tc.err); got != tc.want {
			t.Errorf("IsRetryableError(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestRetryAfterDuration(t *testing.T) {
	backoff := 2 * time.Second
	max := 10 * time.Second

	if got := RetryAfterDuration(nil, backoff, max); got != backoff {
		t.Errorf("nil resp = %v", got)
	}

	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set("Retry-After", "5")
	if got := RetryAfterDuration(resp, backoff, max); got != 5*time.Second {
		t.Errorf("retry-after = %v", got)
	}

	resp.Header.Set("Retry-After", "60")
	if got := RetryAfterDuration(resp, backoff, max); got != max {
		t.Errorf("capped = %v", got)
	}

	resp.Header.Set("Retry-After", "garbage")
	if got := RetryAfterDuration(resp, backoff, max); got != backoff {
		t.Errorf("garbage header = %v", got)
	}
}

func TestJitterSleepBounds(t *testing.T) {
	base := 4 * time.Second
	for i := 0; i < 50; i++ {
		got := JitterSleep(base)
		if got < base || got > base+base/4 {
			t.Fatalf("jitter out of range: %v", got)
		}
	}
	if got := JitterSleep(0); got != 0 {
		t.Errorf("zero input = %v", got)
	}
}
