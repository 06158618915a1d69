package dom

// RecordType is the kind of a MutationRecord.
type RecordType uint8

const (
	// ChildList records added or removed children of Target.
	ChildList RecordType = iota + 1

	// CharacterData records a data change of the text node Target.
	CharacterData
)

// String returns the record type name.
func (t RecordType) String() string {
	switch t {
	case ChildList:
		return "childList"
	case CharacterData:
		return "characterData"
	default:
		return "Unknown"
	}
}

// MutationRecord describes one change to a tree.
type MutationRecord struct {
	Type    RecordType
	Target  *Node
	Added   []*Node
	Removed []*Node
}

// ObserveOptions selects which changes an observer sees.
type ObserveOptions struct {
	ChildList     bool
	CharacterData bool
	// Subtree extends observation to all descendants of the target. It
	// never crosses into shadow roots.
	Subtree bool
}

// Observer receives batched mutation records for the nodes it observes.
// Records queued while a delivery is pending are delivered together in a
// single posted task.
type Observer struct {
	callback func([]MutationRecord)
	records  []MutationRecord
	pending  bool
	targets  []*Node
}

type registration struct {
	observer *Observer
	opts     ObserveOptions
}

// NewObserver returns an observer that calls fn with each batch of
// records.
func NewObserver(fn func([]MutationRecord)) *Observer {
	return &Observer{callback: fn}
}

// Observe starts observing target. Observing the same target again
// replaces its options.
func (o *Observer) Observe(target *Node, opts ObserveOptions) {
	for _, r := range target.registrations {
		if r.observer == o {
			r.opts = opts
			return
		}
	}
	target.registrations = append(target.registrations, &registration{observer: o, opts: opts})
	o.targets = append(o.targets, target)
}

// Disconnect stops all observation and drops undelivered records.
func (o *Observer) Disconnect() {
	for _, t := range o.targets {
		regs := t.registrations[:0]
		for _, r := range t.registrations {
			if r.observer != o {
				regs = append(regs, r)
			}
		}
		t.registrations = regs
	}
	o.targets = nil
	o.records = nil
}

// TakeRecords returns and clears the undelivered records.
func (o *Observer) TakeRecords() []MutationRecord {
	recs := o.records
	o.records = nil
	return recs
}

func (o *Observer) enqueue(rec MutationRecord, p Poster) {
	o.records = append(o.records, rec)
	if o.pending {
		return
	}
	o.pending = true
	p.Post(o.deliver)
}

func (o *Observer) deliver() {
	o.pending = false
	recs := o.TakeRecords()
	if len(recs) == 0 {
		return
	}
	o.callback(recs)
}

// queue hands rec to every observer interested in a change at n.
func (n *Node) queue(rec MutationRecord) {
	var p Poster = immediate{}
	if n.doc != nil {
		p = n.doc.poster
	}
	var seen map[*Observer]struct{}
	for cur := n; cur != nil; cur = cur.parent {
		for _, r := range cur.registrations {
			if cur != n && !r.opts.Subtree {
				continue
			}
			if rec.Type == ChildList && !r.opts.ChildList {
				continue
			}
			if rec.Type == CharacterData && !r.opts.CharacterData {
				continue
			}
			if _, dup := seen[r.observer]; dup {
				continue
			}
			if seen == nil {
				seen = make(map[*Observer]struct{}, 1)
			}
			seen[r.observer] = struct{}{}
			r.observer.enqueue(rec, p)
		}
	}
}
