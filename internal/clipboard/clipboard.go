// Package clipboard is the narrow host clipboard contract the copy flow
// depends on, plus the system implementation backed by the platform's
// clipboard utilities.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	sysclip "github.com/atotto/clipboard"
)

// ErrUnavailable is the single failure kind of a clipboard write. It covers
// permission denial, a missing clipboard utility, and transient host errors
// without distinguishing between them.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer writes text to a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// Func adapts an ordinary function to the Writer interface.
type Func func(ctx context.Context, text string) error

// WriteText calls f(ctx, text).
func (f Func) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

// System writes to the operating system clipboard (pbcopy, xclip/xsel,
// wl-copy or the Windows clipboard API, depending on platform).
type System struct{}

var _ Writer = System{}

// WriteText copies text to the system clipboard. Every failure, including a
// context that is already done, is reported as ErrUnavailable.
func (System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if sysclip.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
