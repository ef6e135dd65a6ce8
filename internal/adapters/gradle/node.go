package gradle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droid/internal/adapters/shell"
	"go.trai.ch/droid/internal/core/ports"
)

// NodeID is the unique identifier for the Gradle task adapter Graft node.
const NodeID graft.ID = "adapter.gradle"

func init() {
	graft.Register(graft.Node[ports.TaskAdapter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.TaskAdapter, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewAdapter(executor), nil
		},
	})
}
