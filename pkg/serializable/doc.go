// Package serializable maps (name, module path) pairs to constructors so a
// generic codec can move schema nodes to and from their remote
// representation. Types are registered explicitly, normally once at process
// start, through Registry.Register; nothing is registered as a side effect of
// importing a package.
package serializable
