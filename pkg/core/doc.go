// Package core defines the shared language of the realisation system.
//
// This package contains:
//   - Lexical entities (Category, WordEntry, VariantSet)
//   - Interrogative classification types (Role, InterrogativeType)
//   - The consumed phrase-child contract (Element)
//   - The per-language capability contract (Strategy)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
