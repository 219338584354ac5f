// Package state owns the client-side state tree: one slice per entity
// collection, each exposing the async operations that call the backend and
// reduce the result into state. Views read snapshots and observe the Status
// flags; they never receive panics or raw transport errors.
package state

// Status is the request-lifecycle flag triple every slice carries. All
// operations on one slice share the one triple, so when two operations race
// the later response wins the flags.
//
// Success is a one-shot "last mutation succeeded" flag; views reset it via
// the slice's ResetStatus after showing a notification so it does not fire
// twice.
type Status struct {
	Loading bool
	Error   string // "" when there is no error
	Success bool
}

// The reductions below are the four flag transitions every operation goes
// through. Callers hold their slice's mutex.

func (st *Status) beginFetch() {
	st.Loading = true
	st.Error = ""
}

func (st *Status) beginMutation() {
	st.Loading = true
	st.Error = ""
	st.Success = false
}

// failFetch also drops Success so a mutation whose trailing refetch fails
// does not report success and an error for the same operation.
func (st *Status) failFetch(msg string) {
	st.Loading = false
	st.Error = msg
	st.Success = false
}

func (st *Status) failMutation(msg string) {
	st.Loading = false
	st.Error = msg
	st.Success = false
}

func (st *Status) reset() {
	st.Error = ""
	st.Success = false
}
