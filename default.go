package uuidv7

// std backs the package-level functions. Its monotonic state is shared
// by everything in the process that does not construct an own
// Generator.
var std *Generator

func init() {
	g, err := New()
	if err != nil {
		panic(err) // default options always validate
	}
	std = g
}

// NewV7 returns a version 7 identifier from the package generator.
func NewV7() UUID {
	return std.NewV7()
}

// NewV4 returns a version 4 identifier from the package generator.
func NewV4() UUID {
	return std.NewV4()
}

// Fill writes a version 7 identifier from the package generator into dst.
func Fill(dst []byte) error {
	return std.Fill(dst)
}

// SetRandomSource replaces the randomness provider of the package
// generator. A nil src resets to the default system source.
func SetRandomSource(src RandomSource) {
	std.SetRandomSource(src)
}
