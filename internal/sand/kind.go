package sand

import "strings"

// Kind enumerates the particle types a cell can hold.
type Kind uint8

const (
	Empty Kind = iota
	Sand
	Water
	Wood
	Iron
	Fire
	Acid
	Smoke
	Steam
	Lava

	kindCount
)

// Class is the density class that selects a movement rule.
type Class uint8

const (
	ClassNone Class = iota
	ClassStatic
	ClassSolid
	ClassLiquid
	ClassGas
)

var kindNames = [kindCount]string{
	Empty: "empty",
	Sand:  "sand",
	Water: "water",
	Wood:  "wood",
	Iron:  "iron",
	Fire:  "fire",
	Acid:  "acid",
	Smoke: "smoke",
	Steam: "steam",
	Lava:  "lava",
}

// Kinds lists every particle kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Empty; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k < kindCount }

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return Empty, false
}

// Class reports the density class of k. Fire is static: it never moves.
// Lava and Acid fall back to liquid movement after their reactions.
func (k Kind) Class() Class {
	switch k {
	case Sand:
		return ClassSolid
	case Water, Acid, Lava:
		return ClassLiquid
	case Smoke, Steam:
		return ClassGas
	case Wood, Iron, Fire:
		return ClassStatic
	default:
		return ClassNone
	}
}
