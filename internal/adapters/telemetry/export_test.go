package telemetry

// Batcher exposes the span's line batcher for testing.
func (s *OTelSpan) Batcher() *LineBatcher {
	return s.batcher
}
