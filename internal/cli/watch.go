package cli

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/iudanet/tasktracker/internal/models"
)

// runWatch печатает новый снимок при каждом изменении, пока ctx не отменен.
// Раз в interval запросы перечитываются, чтобы увидеть записи других процессов
func (c *Cli) runWatch(ctx context.Context, opts listOptions, interval time.Duration) error {
	owner, err := c.ownerID(ctx)
	if err != nil {
		return err
	}

	q, err := c.buildQuery(opts)
	if err != nil {
		return err
	}

	sub, err := c.tasks.Watch(ctx, owner, q)
	if err != nil {
		return fmt.Errorf("failed to watch tasks: %w", err)
	}
	defer sub.Cancel()

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	c.io.Println("Watching tasks, press Ctrl+C to stop.")

	var last []models.Task
	first := true
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			if err := c.tasks.Refresh(ctx, owner); err != nil {
				return fmt.Errorf("failed to refresh tasks: %w", err)
			}
		case snapshot, ok := <-sub.Updates():
			if !ok {
				return nil
			}
			if !first && reflect.DeepEqual(snapshot, last) {
				continue
			}
			first = false
			last = snapshot

			list := make([]*models.Task, 0, len(snapshot))
			for i := range snapshot {
				list = append(list, &snapshot[i])
			}

			c.io.Printf("\n--- %s ---\n", c.now().In(c.loc).Format("15:04:05"))
			if err := c.render("tasks", list); err != nil {
				return err
			}
		}
	}
}
