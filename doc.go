// Package eventstudy measures how a market behaves in the aftermath of
// discrete historical events. Given a list of named events and the daily
// closing prices of an index, it locates an entry point a fixed number of
// trading sessions after each event and computes the compound annual growth
// rate to exits one, three and five years later.
//
// The core functionalities include:
//   - Trading Calendar: resolving arbitrary civil dates to actual trading
//     sessions, and moving by whole sessions rather than calendar days, so
//     that weekends and holidays never produce phantom prices.
//   - Growth Math: compound annual growth between two prices over a horizon
//     measured in trading sessions (252 per year), undefined cases reported
//     explicitly instead of returned as zero.
//   - Event Processing: a per-event pipeline from raw event date to a result
//     record, degrading gracefully when history is too short and skipping
//     events that cannot be anchored to the calendar.
//   - Interchange: reading price and event sources and writing the results
//     table, all as plain CSV that spreadsheets can produce and consume.
//
// This package is the foundational logic for the `esc` command-line tool;
// rendering, charting and remote price retrieval live in subpackages.
package eventstudy
