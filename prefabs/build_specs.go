package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec describes one entity as a map of component name to that
// component's settings.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Color  *YAMLColor `yaml:"color"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
}

type CameraComponentSpec struct {
	ViewHeight float64    `yaml:"view_height"`
	ClearColor *YAMLColor `yaml:"clear_color"`
}
