package agents

import (
	"math"
	"sort"
)

// ToolInstance is one physical tool. Durability falls with use and the tool
// is removed when it reaches zero.
type ToolInstance struct {
	Durability float64 `json:"durability"`
	Max        float64 `json:"max"`
}

// Damaged reports whether the tool is below full durability.
func (t ToolInstance) Damaged() bool {
	return t.Durability < t.Max
}

// DegradeResult describes what one use did to a tool.
type DegradeResult struct {
	Used      bool    // A tool of that name was held
	Broken    bool    // The used instance reached zero and was removed
	Warn      bool    // The instance survives but the next use will break it
	Remaining float64 // Durability left on the used instance
}

// RepairResult describes a completed repair.
type RepairResult struct {
	Tool string
	Wood int
}

// SpoiledStack is a resource stack discarded by spoilage.
type SpoiledStack struct {
	Item     string
	Quantity int
}

// Inventory holds a villager's resources and tools. Resource counters are
// never negative. Tools of one name are kept oldest first.
type Inventory struct {
	Resources map[string]int            `json:"resources"`
	Tools     map[string][]ToolInstance `json:"tools"`

	spoilage  map[string]int // Ticks a fresh stack lasts, by resource
	countdown map[string]int // Ticks left for each live stack
}

// NewInventory creates an empty inventory. spoilage gives the lifetime in
// ticks of each perishable resource; resources absent from it never spoil.
func NewInventory(spoilage map[string]int) *Inventory {
	inv := &Inventory{
		Resources: make(map[string]int),
		Tools:     make(map[string][]ToolInstance),
		spoilage:  make(map[string]int, len(spoilage)),
		countdown: make(map[string]int),
	}
	for name, ticks := range spoilage {
		if ticks > 0 {
			inv.spoilage[name] = ticks
		}
	}
	return inv
}

// Count returns the quantity of a resource.
func (inv *Inventory) Count(item string) int {
	return inv.Resources[item]
}

// Add increases a resource. A stack that goes from empty to non-empty starts
// its spoilage countdown.
func (inv *Inventory) Add(item string, qty int) {
	if qty <= 0 {
		return
	}
	if inv.Resources[item] == 0 {
		if ticks, ok := inv.spoilage[item]; ok {
			inv.countdown[item] = ticks
		}
	}
	inv.Resources[item] += qty
}

// Take removes qty of a resource. It fails without effect when fewer than qty
// are held.
func (inv *Inventory) Take(item string, qty int) bool {
	if qty <= 0 || inv.Resources[item] < qty {
		return false
	}
	inv.Resources[item] -= qty
	if inv.Resources[item] == 0 {
		delete(inv.countdown, item)
	}
	return true
}

// ResourceNames returns held resource names in sorted order.
func (inv *Inventory) ResourceNames() []string {
	names := make([]string, 0, len(inv.Resources))
	for name, qty := range inv.Resources {
		if qty > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Spoil advances every live countdown by elapsed ticks. A stack whose
// countdown reaches zero is discarded whole and reported.
func (inv *Inventory) Spoil(elapsed int) []SpoiledStack {
	if elapsed <= 0 || len(inv.countdown) == 0 {
		return nil
	}
	names := make([]string, 0, len(inv.countdown))
	for name := range inv.countdown {
		names = append(names, name)
	}
	sort.Strings(names)

	var spoiled []SpoiledStack
	next := make(map[string]int, len(inv.countdown))
	for _, name := range names {
		left := inv.countdown[name] - elapsed
		if left > 0 {
			next[name] = left
			continue
		}
		if qty := inv.Resources[name]; qty > 0 {
			spoiled = append(spoiled, SpoiledStack{Item: name, Quantity: qty})
		}
		inv.Resources[name] = 0
	}
	inv.countdown = next
	return spoiled
}

// SpoilsIn returns the ticks left before item's stack spoils, and whether a
// countdown is running.
func (inv *Inventory) SpoilsIn(item string) (int, bool) {
	left, ok := inv.countdown[item]
	return left, ok
}

// AddTool appends a fresh instance at full durability.
func (inv *Inventory) AddTool(name string, durability float64) {
	inv.Tools[name] = append(inv.Tools[name], ToolInstance{Durability: durability, Max: durability})
}

// RemoveTool takes the oldest instance of name.
func (inv *Inventory) RemoveTool(name string) (ToolInstance, bool) {
	list := inv.Tools[name]
	if len(list) == 0 {
		return ToolInstance{}, false
	}
	oldest := list[0]
	inv.setTools(name, append([]ToolInstance(nil), list[1:]...))
	return oldest, true
}

// RemoveNewestTool takes the most recently added instance of name.
func (inv *Inventory) RemoveNewestTool(name string) (ToolInstance, bool) {
	list := inv.Tools[name]
	if len(list) == 0 {
		return ToolInstance{}, false
	}
	newest := list[len(list)-1]
	inv.setTools(name, append([]ToolInstance(nil), list[:len(list)-1]...))
	return newest, true
}

// ToolCount returns how many instances of name are held.
func (inv *Inventory) ToolCount(name string) int {
	return len(inv.Tools[name])
}

// ToolNames returns held tool names in sorted order.
func (inv *Inventory) ToolNames() []string {
	names := make([]string, 0, len(inv.Tools))
	for name, list := range inv.Tools {
		if len(list) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Degrade wears the oldest instance of name by wear. The instance is removed
// when its durability reaches zero.
func (inv *Inventory) Degrade(name string, wear float64) DegradeResult {
	list := inv.Tools[name]
	if len(list) == 0 {
		return DegradeResult{}
	}
	res := DegradeResult{Used: true}
	d := list[0].Durability - wear
	if d <= 0 {
		res.Broken = true
		inv.setTools(name, append([]ToolInstance(nil), list[1:]...))
		return res
	}
	updated := append([]ToolInstance(nil), list...)
	updated[0].Durability = d
	inv.setTools(name, updated)
	res.Remaining = d
	res.Warn = wear > 0 && d <= wear
	return res
}

// Repair restores the first damaged tool, in name order then age order,
// whose repair the villager's wood can pay for. Cost is the missing
// durability times woodPerPoint, rounded up.
func (inv *Inventory) Repair(woodPerPoint float64) (RepairResult, bool) {
	wood := inv.Count("wood")
	for _, name := range inv.ToolNames() {
		for i, t := range inv.Tools[name] {
			if !t.Damaged() {
				continue
			}
			cost := RepairCost(t.Max-t.Durability, woodPerPoint)
			if cost > wood {
				continue
			}
			inv.Take("wood", cost)
			updated := append([]ToolInstance(nil), inv.Tools[name]...)
			updated[i].Durability = updated[i].Max
			inv.setTools(name, updated)
			return RepairResult{Tool: name, Wood: cost}, true
		}
	}
	return RepairResult{}, false
}

// RepairCost is the wood needed to restore missing durability points.
func RepairCost(missing, woodPerPoint float64) int {
	if missing <= 0 || woodPerPoint <= 0 {
		return 0
	}
	return int(math.Ceil(missing*woodPerPoint - 1e-9))
}

func (inv *Inventory) setTools(name string, list []ToolInstance) {
	if len(list) == 0 {
		delete(inv.Tools, name)
		return
	}
	inv.Tools[name] = list
}
