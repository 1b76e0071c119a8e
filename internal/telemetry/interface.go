package telemetry

type ITelemetry interface {
	// IndexSwapRequestStats logs the current swap request counts per status
	IndexSwapRequestStats() error
}
