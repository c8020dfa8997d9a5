package planner

import (
	"reflect"
	"testing"

	"github.com/shirerpeton/audioSplitter/internal/common"
)

func secs(s uint32) common.TimeOffset {
	return common.TimeOffset{Seconds: s}
}

func TestPlan_SortsAndAddsTrailingSegment(t *testing.T) {
	offsets := []common.TimeOffset{secs(10), secs(30), secs(20)}
	got := Plan("audio.mp3", offsets, "ext")

	want := []common.CutInstruction{
		{Index: 1, Input: "audio.mp3", From: "0:00:00.000", To: "0:00:10.000", Output: "1.ext"},
		{Index: 2, Input: "audio.mp3", From: "0:00:10.000", To: "0:00:20.000", Output: "2.ext"},
		{Index: 3, Input: "audio.mp3", From: "0:00:20.000", To: "0:00:30.000", Output: "3.ext"},
		{Index: 4, Input: "audio.mp3", From: "0:00:30.000", To: "", Output: "4.ext"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Plan() =\n%+v\nwant\n%+v", got, want)
	}
	if !got[3].OpenEnded() {
		t.Error("last instruction should be open ended")
	}
}

func TestPlan_Empty(t *testing.T) {
	got := Plan("audio.mp3", nil, "ext")
	want := []common.CutInstruction{
		{Index: 1, Input: "audio.mp3", From: "0:00:00.000", Output: "1.ext"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Plan() = %+v, want %+v", got, want)
	}
}

func TestPlan_Idempotent(t *testing.T) {
	offsets := []common.TimeOffset{
		{Hours: 1},
		{Minutes: 2, Seconds: 32, Milliseconds: 1234},
		secs(5),
		{Minutes: 60},
	}
	first := Plan("in.wav", offsets, "wav")
	second := Plan("in.wav", offsets, "wav")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Plan is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestPlan_DoesNotReorderInput(t *testing.T) {
	offsets := []common.TimeOffset{secs(30), secs(10)}
	Plan("in.wav", offsets, "wav")
	if offsets[0] != secs(30) || offsets[1] != secs(10) {
		t.Errorf("input reordered: %+v", offsets)
	}
}

func TestPlan_ChainsBoundaries(t *testing.T) {
	offsets := []common.TimeOffset{
		{Minutes: 2, Seconds: 32, Milliseconds: 1234}, // 153.234s
		{Seconds: 153, Milliseconds: 500},             // 153.5s
		{Hours: 1},
		{Minutes: 0, Seconds: 152},
	}
	got := Plan("in.wav", offsets, "wav")
	if len(got) != len(offsets)+1 {
		t.Fatalf("got %d instructions, want %d", len(got), len(offsets)+1)
	}
	wantTo := []string{"0:02:32.000", "0:02:33.234", "0:02:33.500", "1:00:00.000", ""}
	for i, inst := range got {
		if inst.To != wantTo[i] {
			t.Errorf("instruction %d To = %q, want %q", i, inst.To, wantTo[i])
		}
		if i > 0 && inst.From != got[i-1].To {
			t.Errorf("instruction %d From = %q, want previous To %q", i, inst.From, got[i-1].To)
		}
	}
}

func TestPlan_EqualOffsetsStayStable(t *testing.T) {
	a := common.TimeOffset{Minutes: 1}
	b := common.TimeOffset{Seconds: 60}
	got := Plan("in.wav", []common.TimeOffset{b, a, secs(5)}, "wav")

	wantTo := []string{"0:00:05.000", "0:01:00.000", "0:01:00.000", ""}
	for i, inst := range got {
		if inst.To != wantTo[i] {
			t.Errorf("instruction %d To = %q, want %q", i, inst.To, wantTo[i])
		}
	}
	if got[2].From != got[1].To {
		t.Errorf("third From = %q, want %q", got[2].From, got[1].To)
	}
}

func TestPlan_BoundariesIncreaseOnTheWire(t *testing.T) {
	offsets := []common.TimeOffset{
		{Minutes: 2, Seconds: 32, Milliseconds: 1234}, // 153.234s
		{Minutes: 2, Seconds: 32, Milliseconds: 200},  // 152.2s
		{Seconds: 90},
		{Minutes: 75},
	}
	got := Plan("in.wav", offsets, "wav")
	wantTo := []string{"0:01:30.000", "0:02:32.200", "0:02:33.234", "1:15:00.000", ""}
	for i, inst := range got {
		if inst.To != wantTo[i] {
			t.Errorf("instruction %d To = %q, want %q", i, inst.To, wantTo[i])
		}
		// H:MM:SS.mmm with fixed-width fields orders the same as text.
		if !inst.OpenEnded() && len(inst.From) == len(inst.To) && inst.From >= inst.To {
			t.Errorf("instruction %d: -to %s does not follow -ss %s", i, inst.To, inst.From)
		}
	}
}

func TestPlan_ExtensionDot(t *testing.T) {
	got := Plan("in.flac", []common.TimeOffset{secs(1)}, ".flac")
	if got[0].Output != "1.flac" || got[1].Output != "2.flac" {
		t.Errorf("outputs = %q, %q", got[0].Output, got[1].Output)
	}
}
