// Package types defines the animation configuration model for tweenkit: the
// Animation sum type and its three variants, default constructors, typed
// patches, validation, the Session interface, and standard errors.
//
// Every consumer that needs to branch on the variant implements Visitor, so
// adding a variant is a compile-time change for all of them.
package types
