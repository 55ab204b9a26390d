// Package gesture turns a stream of multi-touch pointer events into
// continuous pan, pinch and rotation signals plus discrete swipes and
// double-taps, batched into one [Report] per reporting interval.
//
// # Quick start
//
// Build a [Recognizer], feed it events and call [Recognizer.Tick] once per
// interval:
//
//	rec, err := gesture.NewRecognizer(gesture.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	rec.OnReport(func(r gesture.Report) {
//		fmt.Println(r.Pan, r.Pinch, r.Rotation)
//	})
//	rec.HandleEvent(ev)
//	rec.Tick()
//
// Or hand it a channel and let [Recognizer.Run] own the timers:
//
//	events := make(chan gesture.PointerEvent)
//	go rec.Run(ctx, events)
//
// # Coordinates
//
// Events carry normalized device coordinates: both axes span [-1, 1] with
// the origin at the surface center and Y pointing up. [Recognizer.HandleRaw]
// converts surface-pixel events using [Config.Bounds] and the [Normalize]
// function, or a custom [Normalizer].
//
// # Pipeline
//
// Each contact is tracked from press to release by a [Tracker], which turns
// every move into a [DisplacementRecord] measured from the press sample.
// Records are kept in an [ExpiringLRU] keyed by [CacheKey]: all primary
// contacts share one slot, secondary contacts get their own, and entries
// expire after [Config.CacheTTL] so an abandoned contact cannot stay in the
// aggregate forever.
//
// The [Aggregator] folds the cached records into a [Frame] relative to the
// mean press point, and [Derive] computes a [Motion]:
//
//   - Pan is the centroid displacement since the previous frame.
//   - Pinch is the summed change of each contact's distance from the anchor.
//   - Rotation is the summed cross product of each contact's press and
//     current offsets, positive counter-clockwise.
//
// Fewer than [MinContactsForShape] contacts report zero pinch and rotation.
// Swipes are classified per record by [ClassifySwipe]; double-taps come
// from the raw press stream via [DoubleTapDetector].
//
// # Reports
//
// Every signal is added to a [Window]. [Recognizer.Tick] flushes the window
// into a [Report] stamped with the recognizer's session id and a sequence
// number, delivers it to every [Recognizer.OnReport] callback and then to
// the optional [Sink]. Intervals with no signal are skipped unless
// [Config.EmitEmpty] is set.
//
// # Input sources
//
// The ebiteninput subpackage adapts Ebitengine mouse and touch state into
// raw events, and the ecs submodule forwards reports to a donburi world as
// events. Tests and tools can synthesize input with [Press], [Move],
// [Release], [Tap], [Drag], [PinchSequence], [RotateSequence] or a JSON
// [Script].
package gesture
