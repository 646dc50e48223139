package dom

// MutationOp is the type of a recorded document change.
type MutationOp string

const (
	OpInsert     MutationOp = "insert"
	OpRemove     MutationOp = "remove"
	OpSetAttr    MutationOp = "attr"
	OpRemoveAttr MutationOp = "rmattr"
	OpText       MutationOp = "text"
	OpSetProp    MutationOp = "prop"
	OpFocus      MutationOp = "focus"
	OpBlur       MutationOp = "blur"
)

// Mutation is one change to a connected node.
//
// Insert records carry the serialized subtree (with node ids) so the client
// can materialize it without further round trips.
type Mutation struct {
	Op     MutationOp `json:"op"`
	Target uint64     `json:"target"`
	Parent uint64     `json:"parent,omitempty"`
	Before uint64     `json:"before,omitempty"`
	Name   string     `json:"name,omitempty"`
	Value  string     `json:"value,omitempty"`
	Prop   any        `json:"prop,omitempty"`
	HTML   string     `json:"html,omitempty"`
}
