// Package ecs provides ECS adapters for gesture's report stream.
//
// The primary adapter is [NewDonburiSink], which bridges gesture reports
// (pan, pinch, rotation, swipes, double-taps) into a [Donburi] world as
// typed events. Subscribe to [ReportEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	recognizer.SetSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
