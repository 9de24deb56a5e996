package constants

// Redis key formats
const (
	// Tracking store
	KeyJobTrack   = "job:track:%s"   // Format: job:track:{protocol}, ZSET of samples scored by unix ts
	KeyJobLastFix = "job:lastfix:%s" // Format: job:lastfix:{protocol}, hash with latest sample
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
)
