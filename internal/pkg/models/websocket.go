package models

import "encoding/json"

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient holds the identity of an authenticated console connection
type WebSocketClient struct {
	UserID string
	Role   string
}

// Live-map events pushed to a dispatcher console view.

// MarkerEvent carries marker creations and moves for one reconciliation tick
type MarkerEvent struct {
	Upserts  []Marker `json:"upserts,omitempty"`
	Removals []string `json:"removals,omitempty"` // protocols whose markers were dropped
}

// Marker is one provider position on the live map
type Marker struct {
	Protocol  string     `json:"protocol"`
	Position  Coordinate `json:"position"`
	GeoCell   string     `json:"geo_cell"` // geohash cell, used for console-side clustering
	Freshness Freshness  `json:"freshness"`
}

// BoundsEvent asks the console to fit the viewport to the given markers.
// Sent at most once per view; later ticks never reset pan/zoom.
type BoundsEvent struct {
	Markers []Marker `json:"markers"`
}

// RouteEvent replaces the route layer for one job. The console removes any
// prior layer for the protocol before drawing.
type RouteEvent struct {
	Protocol string `json:"protocol"`
	Route    Route  `json:"route"`
}

// DetailEvent opens the detail panel for a job and centers the camera
type DetailEvent struct {
	Job    Job        `json:"job"`
	Center Coordinate `json:"center"`
}

// SearchResultsEvent carries filtered jobs for the search panel. An empty
// result list with Hidden set closes the panel entirely.
type SearchResultsEvent struct {
	Query   string `json:"query"`
	Hidden  bool   `json:"hidden"`
	Results []Job  `json:"results,omitempty"`
}
