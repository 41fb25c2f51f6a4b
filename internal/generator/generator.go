package generator

// ScrambleGenerator deals disks onto random pegs to produce a legal
// starting layout. Any assignment of disks to pegs is legal once each peg
// stacks its disks in size order, so generation never needs retries.
type ScrambleGenerator struct{}

func NewScrambleGenerator() *ScrambleGenerator { return &ScrambleGenerator{} }

// The Generate method is implemented in scramble.go.
