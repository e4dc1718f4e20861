// Package observer implements the Observer pattern through three toy
// domains: a stock ticker, a weather station, and a video channel. Subjects
// keep observers in attachment order, suppress duplicate attachments by
// interface identity, and notify every attached observer synchronously with
// the state current at the moment of notification. Observers are not
// isolated from each other: a panic in one aborts the remaining
// notifications.
package observer
