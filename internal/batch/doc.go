// Package batch indexes many reactions at once.
//
// A Processor normalizes each input RInChI, derives its keys in parallel
// with a bounded number of workers, then writes the results to a store in
// input order from a single goroutine. One bad input does not stop the run;
// its error is kept on its Output. Cancelling the context does.
package batch
