package lazy

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrFactoryPanicked wraps the panic value of a Cell factory that panicked
// during Preload.
var ErrFactoryPanicked = errors.New("lazy: factory panicked")

// Preloader is implemented by *Cell and *ErrCell.
type Preloader interface {
	preload() error
}

func (c *Cell[T]) preload() error {
	c.Initialize()
	return nil
}

func (c *ErrCell[T]) preload() error {
	_, err := c.Initialize()
	return err
}

// preloadRecover runs p.preload and turns a factory panic into an error
// wrapping ErrFactoryPanicked.
func preloadRecover(p Preloader) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrFactoryPanicked, r)
		}
	}()
	return p.preload()
}

// Preload initializes cells in parallel and returns the first error
// encountered. A panicking factory is reported as an error wrapping
// ErrFactoryPanicked and leaves its cell uninitialized. If ctx is already
// done, no cell is initialized. Once a cell fails, cells that have not
// started yet may be skipped; this depends on scheduling. Cells that were
// already initialized are skipped.
func Preload(ctx context.Context, cells ...Preloader) error {
	if len(cells) == 0 {
		return nil
	}

	// No goroutine for a single cell.
	if len(cells) == 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		return preloadRecover(cells[0])
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range cells {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return preloadRecover(c)
		})
	}
	return g.Wait()
}
