// Package builtin is the catalogue of ready-made definitions:
//
//   - integers: Integer, Int32, Int64, UInt32, UInt64
//   - floats: Float, Float32, Float64
//   - Boolean and String
//   - collections: Array, Hash and Set
//
// The definitions are immutable and safe to share. Install copies them into
// a registry so they can be found by name:
//
//	reg := builtin.Registry()
//	ports, err := reg.Find("Array(UInt32)")
//
// Integer casting accepts numeric strings in Go literal syntax ("0x1F",
// "1_000"), json.Number and floats (truncated toward zero). Values that do
// not fit in 64 bits become *big.Int.
package builtin
