// Package pathcache memoizes serialized squircle outlines.
//
// Layouts tend to ask for the same outline over and over: every element of a
// given size and style produces identical path data. A [Cache] maps the
// resolved parameters of an outline to its path data and evicts the least
// recently used entry once it reaches its capacity.
//
//	c := pathcache.New(512)
//	d, err := c.Path(squircle.Params{Width: 100, Height: 60, Radius: 20, CornerSmoothing: 0.6})
//
// Parameters are resolved before lookup, so Params that differ only in ways
// that do not affect the outline, such as a negative radius and a radius of
// 0, share an entry.
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
// There is no package-level cache; callers own theirs.
package pathcache
