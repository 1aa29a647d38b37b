package nn

// Randomization bounds applied by Layer.Randomize and Network.Randomize.
const (
	WeightMin = -1.0
	WeightMax = 1.0
	BiasMin   = -10.0
	BiasMax   = 10.0
)
