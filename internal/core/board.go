package core

// Board dimension limits shared by the simulation and its adapters.
const (
	MinBoardDimension     = 2
	MaxBoardDimension     = 32
	DefaultBoardDimension = 4
)

// ClampBoardDimension maps any integer onto a legal board dimension.
// Values below the minimum are treated as degenerate and fall back to the default;
// values above the maximum are capped.
func ClampBoardDimension(v int) int {
	if v < MinBoardDimension {
		return DefaultBoardDimension
	}
	if v > MaxBoardDimension {
		return MaxBoardDimension
	}
	return v
}
