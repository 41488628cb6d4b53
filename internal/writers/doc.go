// Package writers turns forecast results into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV, pretty blocks, JSON/JSONL).
//   • The core stays domain-only; the CLI picks a format and hands data over.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
