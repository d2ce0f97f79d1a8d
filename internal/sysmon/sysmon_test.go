package sysmon

import "testing"

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
}

func TestSampleHeap_NonZero(t *testing.T) {
	h := SampleHeap()
	if h.HeapAlloc == 0 {
		t.Error("expected non-zero HeapAlloc on a running program")
	}
	if h.Sys == 0 {
		t.Error("expected non-zero Sys on a running program")
	}
}
