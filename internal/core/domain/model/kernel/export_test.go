package kernel

// NewGeneratorWithSource exposes the generator with a deterministic id source.
func NewGeneratorWithSource(taken func(id string) bool, source func() string) *UUIDGenerator {
	return newGenerator(taken, source)
}
