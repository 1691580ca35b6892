package entity

import "github.com/milk9111/ecsdemos/ecs"

// SpawnScene builds every prefab of a scene in order. Entities built before
// a failure are left in the world.
func SpawnScene(w *ecs.World, prefabPaths []string) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, len(prefabPaths))
	for _, path := range prefabPaths {
		e, err := BuildEntity(w, path)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}
