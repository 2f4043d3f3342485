// Package writers turns computed outcomes into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (cards, TSV, JSON/JSONL, HTML).
//   • The bmi core stays domain-only; app stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
