// Package wrapped provides the attribute containers shared by every
// serializable schema node. An Object is a loosely typed key/value bag and a
// List an ordered sequence; nested maps and slices are wrapped on the way in
// and unwrapped again when a plain Go value is requested, so schema nodes can
// be built from decoded JSON and handed back to encoders without bespoke
// per-type code.
package wrapped
