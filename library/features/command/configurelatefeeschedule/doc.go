// Package configurelatefeeschedule sets the late fee schedule of the library. The latest schedule applies.
package configurelatefeeschedule
