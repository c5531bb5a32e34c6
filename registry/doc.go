// Package registry maps operator-facing names to configured filters.
//
// A Registry is what the rasterfx command drives: it looks filters up by
// name, applies one of them, or runs every registered filter and hands each
// result to a sink, isolating failures so that one broken filter does not
// stop the rest.
//
// Builtin returns the standard set of eleven filters:
//
//	reg, err := registry.Builtin(rand.New(rand.NewPCG(seed, seed)))
//	out, err := reg.Apply("blurWithMask", src, mask)
package registry
