package config

// YAMLGame is the on-disk form of a game setup. Mapping and validation into
// the domain type happen in mapper.go.
type YAMLGame struct {
	Pegs   []string          `yaml:"pegs"`
	Disks  int               `yaml:"disks"`
	Start  string            `yaml:"start"`
	Target string            `yaml:"target"`
	Layout map[string][]uint `yaml:"layout"`
}
