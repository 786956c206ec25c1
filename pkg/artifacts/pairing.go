package artifacts

// Side selects the probe or candidate half of a minutia pair.
type Side int

const (
	ProbeSide Side = iota
	CandidateSide
)

// MinutiaPair is a correspondence between a probe minutia index and a
// candidate minutia index.
type MinutiaPair struct {
	Probe     int `json:"probe"`
	Candidate int `json:"candidate"`
}

// SideOf returns the minutia index on the given side.
func (p MinutiaPair) SideOf(side Side) int {
	if side == ProbeSide {
		return p.Probe
	}
	return p.Candidate
}

// PairingEdge connects two matched pairs in the pairing structure.
type PairingEdge struct {
	From MinutiaPair `json:"from"`
	To   MinutiaPair `json:"to"`
}

// PairingGraph is the matcher's result: a spanning tree of confirmed pairs
// rooted at Root, plus support edges that corroborate the match without
// extending it.
type PairingGraph struct {
	Root    MinutiaPair   `json:"root"`
	Tree    []PairingEdge `json:"tree"`
	Support []PairingEdge `json:"support"`
}
