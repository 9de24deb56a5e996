package constants

// NATS subjects
const (
	// Reporter -> tracking store
	SubjectPositionReport = "position.report"
	// Tracking store -> interested views (fire-and-forget)
	SubjectPositionStored = "position.stored"

	// Job lifecycle events. Best-effort latency optimizations only; the
	// dispatcher poll loop is the correctness fallback.
	SubjectJobAccepted  = "job.accepted"
	SubjectJobCompleted = "job.completed"
	SubjectJobDeclined  = "job.declined"
)

// JetStream streams and consumers
const (
	TrackingStream         = "TRACKING_STREAM"
	TrackingStreamSubjects = "position.>"

	ConsumerPositionReport = "position_report_tracking"
)
