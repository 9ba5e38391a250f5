package model

// SignedExtrinsic is a signed call ready for submission.
type SignedExtrinsic struct {
	Call    string
	Signer  string
	Nonce   uint64
	Hash    string
	Encoded []byte
}

// Receipt reports the inclusion of an extrinsic and the events it triggered.
type Receipt struct {
	ExtrinsicHash  string
	ExtrinsicIndex uint32
	BlockHash      string
	BlockNumber    uint64
	Success        bool
	Events         []Event
	ErrorMessage   string
}

// Event is a runtime event triggered by an extrinsic.
type Event struct {
	Name   string
	Fields []EventField
}

// EventField is a decoded event argument.
type EventField struct {
	Name  string
	Value any
}

// EventNames returns the names of the triggered events.
func (r *Receipt) EventNames() []string {
	names := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		names = append(names, e.Name)
	}
	return names
}
