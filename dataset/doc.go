// Package dataset generates and persists the numeric inputs used to
// exercise the rmq strategies.
//
// A dataset is a plain JSON array of float64 values stored in a file named
// <distribution>_<size>.json. Five generators with different statistical
// shapes are built in:
//
//   - RandomUniform    — floats sampled uniformly from [-1000, 1000)
//   - RandomInt        — integer values sampled uniformly from [-1000, 1000)
//   - SortedAscending  — linear ramp from -1000 to 1000
//   - SortedDescending — linear ramp from 1000 to -1000
//   - RepeatedValues   — draws from the small set {1, 2, 3, 4, 5}
//
// Sorted and repeated inputs matter for benchmarking: block minima and
// power-of-two tables behave differently on monotone or low-cardinality
// data than on uniform noise.
//
// Generation is deterministic: every call seeds its own rand.Rand, so no
// global RNG state leaks between callers or into the data structures.
//
// # Usage
//
//	values, err := dataset.Generate(dataset.RandomUniform, 100_000, 42)
//	err = dataset.Save(filepath.Join(dir, dataset.Filename(dataset.RandomUniform, 100_000)), values)
//
//	datasets, err := dataset.LoadDir(dir) // size → values, one file per size
//	for _, n := range dataset.Sizes(datasets) { ... }
package dataset
