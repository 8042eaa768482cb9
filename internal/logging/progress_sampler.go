package logging

// ProgressSampler decides when a long walk should report progress. It emits
// once every interval processed files.
type ProgressSampler struct {
	interval int
	last     int
}

// NewProgressSampler constructs a sampler for the given interval. Non-positive
// values fall back to 100.
func NewProgressSampler(interval int) *ProgressSampler {
	if interval <= 0 {
		interval = 100
	}
	return &ProgressSampler{interval: interval}
}

// ShouldLog reports whether processed has reached the next multiple of the
// interval. Repeated calls with the same count emit at most once.
func (s *ProgressSampler) ShouldLog(processed int) bool {
	if s == nil {
		return true
	}
	if processed <= 0 || processed%s.interval != 0 || processed == s.last {
		return false
	}
	s.last = processed
	return true
}
