package agents

// BehaviorKind is the action family a role performs on working parts.
type BehaviorKind uint8

const (
	BehaviorForage BehaviorKind = iota // Fallback for every unresolved role
	BehaviorFarm
	BehaviorHunt
	BehaviorLogWood
	BehaviorCraft
)

var behaviorNames = map[BehaviorKind]string{
	BehaviorForage:  "forage",
	BehaviorFarm:    "farm",
	BehaviorHunt:    "hunt",
	BehaviorLogWood: "log_wood",
	BehaviorCraft:   "craft",
}

func (b BehaviorKind) String() string {
	if name, ok := behaviorNames[b]; ok {
		return name
	}
	return "forage"
}

// ParseBehavior resolves a configured behavior name. Unknown names resolve to
// forage and report false.
func ParseBehavior(name string) (BehaviorKind, bool) {
	for kind, n := range behaviorNames {
		if n == name {
			return kind, true
		}
	}
	return BehaviorForage, false
}

// Primary reports whether the behavior earns skill when it succeeds.
func (b BehaviorKind) Primary() bool {
	return b != BehaviorForage
}
