package classify

// Observation is everything the aggregation stage needs to know about one
// read. Built once after classification and never mutated.
type Observation struct {
	ReadID  string
	Barcode string // "NA" when the run was not demultiplexed
	Channel int
	Target  bool // read came from an adaptive-sampling channel
	Mux     bool // read started inside the mux-scan window
	Class   Classification
}
