package kinds

const (
	length   = 64
	idLength = 8
	depthMax = length / idLength
	idMask   = (1 << idLength) - 1
)

// Bases returns the base ids packed above the first byte of k.
func Bases(k uint64) [depthMax]uint64 {
	var bases [depthMax]uint64
	for i := 1; i < depthMax; i++ {
		bases[i-1] = (k >> (idLength * i)) & idMask
	}
	return bases
}

// Kind packs id together with every distinct id found in bases.
func Kind(id uint64, bases ...uint64) uint64 {
	kind := id & idMask
	seen := map[uint64]struct{}{}
	for _, base := range bases {
		for j := 0; j < depthMax; j++ {
			baseId := (base >> (idLength * j)) & idMask
			if baseId == 0 {
				break
			}
			if _, ok := seen[baseId]; ok {
				continue
			}
			seen[baseId] = struct{}{}
			kind |= baseId << (idLength * len(seen))
		}
	}
	return kind
}

// IsKind reports whether kind is, or derives from, any of bases.
func IsKind(kind uint64, bases ...uint64) bool {
	for _, base := range bases {
		baseId := base & idMask
		if kind == baseId {
			return true
		}
		for i := 0; i < depthMax; i++ {
			if (kind>>(idLength*i))&idMask == baseId {
				return true
			}
		}
	}
	return false
}

var (
	Null    = Kind(0)
	Element = Kind(1)
	Creator = Kind(2, Element)
	Mutable = Kind(3, Creator)
	Bound   = Kind(4, Creator)
	Target  = Kind(5, Element)
	Store   = Kind(6, Target)
	Reducer = Kind(7, Element)
)
