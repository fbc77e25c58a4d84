// Package visualizer replays a search.Result on a terminal board.
//
// What:
//
//   - Board holds one TileState per tile of a layout.Grid and renders it
//     as ASCII.
//   - Plan turns a Result into Steps: every visited tile, then the path.
//   - Session owns the "is an animation running" state and plays Steps
//     on a Board at a fixed pace.
//
// Why:
//
//   - The search packages only report what happened; pacing and drawing
//     live here so a search can be replayed, restarted or skipped.
//
// Errors:
//
//   - ErrAlreadyRunning when a second replay starts on a busy Session.
//   - ErrBadDelay for non-positive step delays.
//   - ctx.Err() when the replay is cancelled.
package visualizer
