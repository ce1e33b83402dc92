package dungeon

// DeriveSeed mixes a master seed and a stream identifier into an
// independent child seed, for generating batches of dungeons from one
// master seed without correlated layouts.
//
// The mix is a SplitMix64-style finalizer (Vigna 2014): strong avalanche,
// so adjacent stream identifiers produce unrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(master int64, stream uint64) int64 {
	x := uint64(master) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
