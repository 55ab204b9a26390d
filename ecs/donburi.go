// Package ecs provides ECS adapters for gesture reports.
package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ReportEventType is the Donburi event type for gesture reports.
// Subscribe to this in your ECS systems to receive pan, pinch, rotation,
// swipe and double-tap batches.
var ReportEventType = events.NewEventType[gesture.Report]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a gesture.Sink backed by a Donburi world.
// Reports are published to ReportEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) gesture.Sink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitReport(report gesture.Report) {
	ReportEventType.Publish(s.world, report)
}
