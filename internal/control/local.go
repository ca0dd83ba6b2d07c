package control

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/Kodylow/botimint/internal/command"
	"github.com/Kodylow/botimint/internal/lightning"
)

// LocalController implements Controller for the bot running in this
// process. Invocations go through the same Dispatcher the chat gateway uses.
type LocalController struct {
	dispatcher *command.Dispatcher
	started    time.Time

	mu   sync.RWMutex
	node *lightning.Info
}

// NewLocalController creates a controller around dispatcher.
func NewLocalController(dispatcher *command.Dispatcher) *LocalController {
	return &LocalController{
		dispatcher: dispatcher,
		started:    time.Now(),
	}
}

// SetNode records the node identity reported by status.
func (c *LocalController) SetNode(info *lightning.Info) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.node = info
}

// Ping implements Controller.
func (c *LocalController) Ping(_ context.Context) error {
	return nil
}

// Status implements Controller.
func (c *LocalController) Status(_ context.Context) (StatusInfo, error) {
	info := StatusInfo{
		State:     StatusRunning,
		PID:       os.Getpid(),
		StartedAt: c.started,
		Commands:  c.dispatcher.Registry().Len(),
	}
	c.mu.RLock()
	if c.node != nil {
		info.NodeID = c.node.ID
		info.NodeAlias = c.node.Alias
		info.Network = c.node.Network
	}
	c.mu.RUnlock()
	return info, nil
}

// Commands implements Controller.
func (c *LocalController) Commands() []string {
	return c.dispatcher.Registry().Names()
}

// Invoke implements Controller. String option values are converted to the
// kind of the parameter they name before dispatch.
func (c *LocalController) Invoke(ctx context.Context, name string, options map[string]any) string {
	opts := command.OptionsFromMap(options)
	if desc, ok := c.dispatcher.Registry().Lookup(name); ok {
		opts = command.CoerceText(desc.Params, opts)
	}
	return c.dispatcher.Dispatch(ctx, name, opts)
}

var _ Controller = (*LocalController)(nil)
