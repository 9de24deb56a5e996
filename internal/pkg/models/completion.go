package models

// CompletionRecord is written exactly once by the finalizer when a provider
// completes a job. The photo is mandatory; the final coordinate and address
// are best-effort and may be absent.
type CompletionRecord struct {
	Protocol        string      `json:"protocol"`
	PhotoURL        string      `json:"photo_url"`
	FinalCoordinate *Coordinate `json:"final_coordinate,omitempty"`
	FinalAddress    string      `json:"final_address,omitempty"`
}

// Photo is a captured, downscaled and re-encoded image pending upload
type Photo struct {
	Data        []byte `json:"-"`
	ContentType string `json:"content_type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}
