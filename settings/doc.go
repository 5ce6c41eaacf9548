/*
Package settings provides typed access to a flat settings namespace: plain
serialized scalars and composite groups of related sub-keyed settings.

A Store binds one settings container (the substrate) to one serializer.
Typed operations are package-level generic functions, since Go methods
cannot introduce type parameters:

	store, _ := settings.New(memory.New(), serializer.NewJSONSerializer())

	settings.Write(store, "volume", 7)
	v, err := settings.Read(store, "volume", 0)       // 7
	v, err = settings.Read(store, "never-set", 42)    // 42 (absence → default)

Composite groups support atomic partial updates — the defining contract of
this package. WriteComposite merges into the existing group rather than
replacing it:

	settings.WriteComposite(store, "window", map[string]int{"w": 800})
	settings.WriteComposite(store, "window", map[string]int{"h": 600})
	// "window" now holds both w and h

Absence and malformedness are distinct: defaults are returned only when a
key or sub-key is absent, while a present-but-undecodable value surfaces an
error matching errors.ErrFormat. DeleteComposite never cascades: emptying a
composite leaves the (empty) composite entry present.
*/
package settings
