package engine

import "time"

// EventType represents the lifecycle phases of a run
type EventType string

const (
	EventLoadStart     EventType = "load_start"
	EventLoadEnd       EventType = "load_end"
	EventParseStart    EventType = "parse_start"
	EventParseEnd      EventType = "parse_end"
	EventSortEnd       EventType = "sort_end"
	EventDistanceEnd   EventType = "distance_end"
	EventSimilarityEnd EventType = "similarity_end"
)

// Event represents a lifecycle event of a run
type Event struct {
	Type      EventType   // Type of event
	RunID     string      // Run ID for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (e.g., path, parse stats, result)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}
