package arena

import "sync/atomic"

// Metrics counts relay activity. Counters are atomic so the HTTP metrics
// endpoint can read them without going through the arena mailbox.
type Metrics struct {
	Joins            int64
	Leaves           int64
	InputsRelayed    int64
	PhysicsAccepted  int64
	PhysicsRejected  int64
	MalformedDropped int64
	SendsSkipped     int64
}

func (m *Metrics) IncJoins()            { atomic.AddInt64(&m.Joins, 1) }
func (m *Metrics) IncLeaves()           { atomic.AddInt64(&m.Leaves, 1) }
func (m *Metrics) IncInputsRelayed()    { atomic.AddInt64(&m.InputsRelayed, 1) }
func (m *Metrics) IncPhysicsAccepted()  { atomic.AddInt64(&m.PhysicsAccepted, 1) }
func (m *Metrics) IncPhysicsRejected()  { atomic.AddInt64(&m.PhysicsRejected, 1) }
func (m *Metrics) IncMalformedDropped() { atomic.AddInt64(&m.MalformedDropped, 1) }
func (m *Metrics) IncSendsSkipped()     { atomic.AddInt64(&m.SendsSkipped, 1) }

// Snapshot returns a read-only copy for HTTP output.
func (m *Metrics) Snapshot() map[string]int64 {
	return map[string]int64{
		"joins":             atomic.LoadInt64(&m.Joins),
		"leaves":            atomic.LoadInt64(&m.Leaves),
		"inputs_relayed":    atomic.LoadInt64(&m.InputsRelayed),
		"physics_accepted":  atomic.LoadInt64(&m.PhysicsAccepted),
		"physics_rejected":  atomic.LoadInt64(&m.PhysicsRejected),
		"malformed_dropped": atomic.LoadInt64(&m.MalformedDropped),
		"sends_skipped":     atomic.LoadInt64(&m.SendsSkipped),
	}
}
