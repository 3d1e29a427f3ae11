// Package writers renders run aggregates into output files.
//
// Design:
//   - Writers own all presentation knowledge (TSV layouts, FASTA retention).
//   - Stats/bootstrap stay domain-only; Pipeline stays orchestration-only.
package writers
