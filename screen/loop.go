package screen

import "context"

// Loop runs posted functions one at a time on the goroutine that calls Run.
// State owned by the screen is only touched from inside posted functions.
type Loop struct {
	queue chan func()
}

func NewLoop() *Loop {
	return &Loop{
		queue: make(chan func(), 16),
	}
}

func (lp *Loop) Post(ctx context.Context, fn func()) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case lp.queue <- fn:
		return nil
	}
}

func (lp *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-lp.queue:
			fn()
		}
	}
}
