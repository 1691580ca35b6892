package system

import (
	"log"
	"sort"

	"github.com/milk9111/ecsdemos/ecs"
	"github.com/milk9111/ecsdemos/prefabs"
)

// ReloadFunc re-applies one prefab file to the running world.
type ReloadFunc func(w *ecs.World) error

// ReloadSystem applies prefab files changed on disk. It polls its channels
// without blocking, so a frame never waits on the file watcher.
type ReloadSystem struct {
	events   <-chan string
	errors   <-chan error
	handlers map[string]ReloadFunc
}

func NewReloadSystem(events <-chan string, errors <-chan error) *ReloadSystem {
	return &ReloadSystem{
		events:   events,
		errors:   errors,
		handlers: make(map[string]ReloadFunc),
	}
}

// NewWatcherReloadSystem reads changes from a prefabs.Watcher.
func NewWatcherReloadSystem(w *prefabs.Watcher) *ReloadSystem {
	return NewReloadSystem(w.Events, w.Errors)
}

// Handle registers fn for the prefab named name (for example "ui.yaml").
func (r *ReloadSystem) Handle(name string, fn ReloadFunc) {
	r.handlers[name] = fn
}

func (r *ReloadSystem) Update(w *ecs.World) {
	if r == nil || w == nil {
		return
	}

	changed := make(map[string]bool)
	for {
		select {
		case path, ok := <-r.events:
			if !ok {
				r.events = nil
				continue
			}
			changed[prefabs.Name(path)] = true
			continue
		case err, ok := <-r.errors:
			if !ok {
				r.errors = nil
				continue
			}
			log.Printf("reload system: watch: %v", err)
			continue
		default:
		}
		break
	}

	names := make([]string, 0, len(changed))
	for name := range changed {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fn, ok := r.handlers[name]
		if !ok {
			continue
		}
		if err := fn(w); err != nil {
			log.Printf("reload system: %s: %v", name, err)
			continue
		}
		log.Printf("reload system: reloaded %s", name)
	}
}
