package clipboard

import (
	"context"
	"errors"
	"testing"
)

func TestFunc(t *testing.T) {
	t.Parallel()

	var got string
	w := Func(func(_ context.Context, text string) error {
		got = text
		return nil
	})
	if err := w.WriteText(context.Background(), "hello"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if got != "hello" {
		t.Errorf("wrote %q, want %q", got, "hello")
	}
}

func TestSystemCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := System{}.WriteText(ctx, "never written")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("WriteText with cancelled context = %v, want ErrUnavailable", err)
	}
}
