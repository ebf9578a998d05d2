package tree

// Iterator is a depth-first cursor over the tree of ordered unit lists
// defined by a UnitSet. It owns the unit list, the incremental cache
// and a per-depth cost vector; the walk cuts branches that exceed the
// budget or are non-canonical.
//
// A fresh iterator reports the root node (the empty unit list) before
// the first Advance; Advance performs lazy initialization on its first
// call and moves to the next pre-order node afterwards. Iterators are
// stateful and must not be shared across goroutines.
type Iterator[U any, O any, C Cache[O]] struct {
	set     UnitSet[U, C]
	cache   C
	costFn  CostFunction[U, C]
	maxCost int

	units []U
	cost  []int

	end         bool
	initialized bool
	empty       bool
	index       uint64
}

// NewIterator builds an iterator over set, starting from the node the
// cache currently represents, pruned by maxCost.
func NewIterator[U any, O any, C Cache[O]](
	set UnitSet[U, C],
	cache C,
	costFn CostFunction[U, C],
	maxCost int,
) *Iterator[U, O, C] {
	return &Iterator[U, O, C]{
		set:     set,
		cache:   cache,
		costFn:  costFn,
		maxCost: maxCost,
	}
}

// End reports whether the walk has exhausted the tree.
func (it *Iterator[U, O, C]) End() bool {
	return it.end
}

// Empty reports whether the tree below the root contains no reachable
// node, initializing the walk if needed.
func (it *Iterator[U, O, C]) Empty() bool {
	if !it.initialized {
		it.initialize()
	}
	return it.empty
}

// Advance moves to the next node of the tree. The first call descends
// to the first child of the root; later calls continue the pre-order
// walk until End reports true.
func (it *Iterator[U, O, C]) Advance() {
	if !it.initialized {
		it.initialize()
		return
	}
	if it.end {
		return
	}
	it.index++
	if !it.next() {
		it.end = true
	}
}

// Current returns the output snapshot of the current node.
func (it *Iterator[U, O, C]) Current() O {
	return it.cache.Snapshot()
}

// Index returns the number of Advance steps taken after the
// initializing one; lazy initialization does not count.
func (it *Iterator[U, O, C]) Index() uint64 {
	return it.index
}

// Depth returns the number of units along the current path.
func (it *Iterator[U, O, C]) Depth() int {
	return len(it.units)
}

func (it *Iterator[U, O, C]) initialize() {
	it.index = 0
	if it.toChild() {
		it.end = false
		it.empty = false
	} else {
		it.end = true
		it.empty = true
	}
	it.initialized = true
}

// next moves to the next pre-order node: first child if one exists,
// otherwise the nearest sibling up the ancestry.
func (it *Iterator[U, O, C]) next() bool {
	if it.toChild() {
		return true
	}
	for {
		if it.toSibling() {
			return true
		}
		if !it.toParent() {
			return false
		}
	}
}

// toChild tries to extend the current node by the set's first-child
// unit, falling back to iterating that unit when the result is over
// budget or non-canonical.
func (it *Iterator[U, O, C]) toChild() bool {
	unit, err := it.set.FirstChild(it.units)
	if err != nil {
		return false
	}
	if !it.canAfford(unit) {
		return false
	}
	it.push(unit)
	if it.cost[len(it.cost)-1] <= it.maxCost && it.isCanonical() {
		return true
	}
	if it.iterateHighestUnit() {
		return true
	}
	it.pop()
	return false
}

// toSibling iterates the highest unit of the current node.
func (it *Iterator[U, O, C]) toSibling() bool {
	if len(it.units) == 0 {
		return false
	}
	return it.iterateHighestUnit()
}

// toParent removes the highest unit of the current node.
func (it *Iterator[U, O, C]) toParent() bool {
	if len(it.units) == 0 {
		return false
	}
	return it.pop()
}

// iterateHighestUnit advances the highest unit through its remaining
// values, skipping unaffordable ones, until a canonical in-budget node
// is found. On exhaustion a dummy is pushed so that the following
// toParent still has something to pop.
func (it *Iterator[U, O, C]) iterateHighestUnit() bool {
	last := it.units[len(it.units)-1]
	it.pop()
	for {
		for {
			if err := it.set.Iterate(it.units, &last); err != nil {
				it.pushDummy(last)
				return false
			}
			if it.canAfford(last) {
				break
			}
		}
		it.push(last)
		if it.cost[len(it.cost)-1] <= it.maxCost && it.isCanonical() {
			return true
		}
		it.pop()
	}
}

func (it *Iterator[U, O, C]) push(unit U) {
	it.units = append(it.units, unit)
	it.set.Push(it.cache, unit)
	it.cost = append(it.cost, it.costFn.Cost(it.cache))
}

func (it *Iterator[U, O, C]) pushDummy(unit U) {
	it.units = append(it.units, unit)
	it.cache.PushDummy()
	it.cost = append(it.cost, 0)
}

func (it *Iterator[U, O, C]) pop() bool {
	if len(it.units) == 0 {
		return false
	}
	it.units = it.units[:len(it.units)-1]
	it.cache.Pop()
	it.cost = it.cost[:len(it.cost)-1]
	return true
}

func (it *Iterator[U, O, C]) isCanonical() bool {
	return it.set.IsCanonical(it.units, it.cache)
}

func (it *Iterator[U, O, C]) canAfford(unit U) bool {
	return it.costFn.CanAfford(it.units, it.cache, unit, it.maxCost)
}
