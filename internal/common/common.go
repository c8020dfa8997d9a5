package common

import "time"

// TimeOffset is a point in the input media as the user wrote it. Fields are
// kept exactly as parsed, minutes or seconds past 59 are not carried.
type TimeOffset struct {
	Hours        uint32
	Minutes      uint32
	Seconds      uint32
	Milliseconds uint32
}

// TotalMilliseconds is the offset's position used for ordering.
func (t TimeOffset) TotalMilliseconds() int64 {
	return int64(t.Hours)*3600000 +
		int64(t.Minutes)*60000 +
		int64(t.Seconds)*1000 +
		int64(t.Milliseconds)
}

func (t TimeOffset) TotalSeconds() float64 {
	return float64(t.TotalMilliseconds()) / 1000
}

func (t TimeOffset) Duration() time.Duration {
	return time.Duration(t.TotalMilliseconds()) * time.Millisecond
}

type CutInstruction struct {
	Index  int
	Input  string
	From   string
	To     string // empty for the last segment, which runs to the end of input
	Output string
}

// OpenEnded reports whether the instruction cuts to the end of the input.
func (c CutInstruction) OpenEnded() bool {
	return c.To == ""
}

type SplitJob struct {
	Input        string
	Extension    string
	OutputDir    string
	Timestamps   []string
	Offsets      []TimeOffset
	Instructions []CutInstruction
}
