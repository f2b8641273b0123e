// Package pipeline runs statement extraction over many documents at once.
//
// A [Runner] fans jobs out to a bounded worker set. Every job is processed
// in isolation and yields exactly one [Result], in input order; one
// document's problems never abort the batch. Cancelling the context stops
// dispatch of remaining jobs while in-flight jobs run to completion.
//
// The runner is the only part of the library that logs: each job is tagged
// with a run ID and reported through the configured zap logger, which
// defaults to a no-op.
package pipeline
