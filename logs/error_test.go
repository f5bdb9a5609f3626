package logs

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestWrapSpan(t *testing.T) {
	errFoo := errors.New("foo")

	if err := WrapSpan(context.Background(), errFoo); err != errFoo {
		t.Fatalf("got %v", err)
	}

	dscope.New(new(Module)).Fork(
		func() Writer {
			return io.Discard
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx, span := newSpan(context.Background(), "")
		err := WrapSpan(ctx, errFoo)
		if !errors.Is(err, errFoo) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "span: "+string(span)) {
			t.Fatalf("got %v", err)
		}
	})
}
