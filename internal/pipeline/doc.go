// Package pipeline walks a run directory and streams classified reads to a
// visitor. Alignment happens once per file through the injected mapper;
// classification and aggregation stay one read at a time.
package pipeline
