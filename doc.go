// Package rowfmt dispatches records to row-formatting processors chosen at
// runtime, for streams where the row shape changes from record to record.
//
// A [Processor] turns one record into a row of output values. [Switch] is the
// central type: it asks a decision function which processor should format
// each record, keeps the last selection across records, and notifies a hook
// when the selection changes. [Writer] is the consuming side, serializing the
// produced rows as delimited text.
//
// # Switch
//
// Configure a Switch with a decision function; the hook and the header/index
// overrides are optional:
//
//	sw := &rowfmt.Switch[Event]{
//		Decide: func(e Event) (rowfmt.Processor[Event], error) {
//			if e.Deleted {
//				return nil, nil // no row for this record
//			}
//			return procs[e.Kind], nil
//		},
//		OnSwitch: func(prev, next rowfmt.Processor[Event]) {
//			log.Printf("row format changed: %v -> %v", prev, next)
//		},
//	}
//
// A nil decision skips the record without touching the selection state. The
// switch compares processors by identity, so hold each strategy as a single
// instance and return that same instance from Decide.
//
// # ValueSwitch
//
// [ValueSwitch] covers the common case of routing on a discriminant value in
// the record, with per-route headers and column selection:
//
//	vs := rowfmt.NewValueSwitch(func(e Event) any { return e.Kind })
//	vs.Route("user", rowfmt.NewStructProcessor[Event]()).
//		WithHeaders("id", "name", "email")
//	vs.Route("audit", rowfmt.NewStructProcessor[Event]()).
//		WithHeaders("id", "action", "at")
//
// Unmatched keys fail with [ErrNoRoute] unless a default route is registered.
//
// # Processors
//
// [NewMapProcessor] formats map[string]any records and [NewStructProcessor]
// formats structs via `rowfmt` tags; [ProcessorFunc] adapts a function.
// Every processor receives the effective headers and selected-column indexes
// for its row: the switch's overrides when present, the caller's defaults
// otherwise.
//
// # Writer
//
// [Writer] drives a processor over a record stream and writes delimited rows,
// with the header row emitted once before the first row:
//
//	w, err := rowfmt.NewWriter(os.Stdout, vs, rowfmt.Settings{
//		Headers: []string{"id", "name", "email"},
//		Fields:  []string{"id", "name"},
//	})
//	...
//	err = w.WriteAll(events...)
//
// [Writer.WriteSeq] and [Writer.WriteChan] accept iterator and channel feeds.
// [LoadSettings] reads [Settings] from YAML.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNoDecision] — Switch used without a decision function
//   - [ErrNoRoute] — ValueSwitch key with no registered route
//   - [ErrUnknownField] — field name not found in headers or struct
//   - [ErrIndexRange] — column index outside the row
//   - [ErrNoHeaders] — processor needs headers to order columns
//   - [ErrNotStruct] — struct processor given a non-struct record
//
// Decision and processor failures propagate to the caller unchanged; a
// skipped record is not a failure.
package rowfmt
