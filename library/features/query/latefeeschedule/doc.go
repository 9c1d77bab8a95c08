// Package latefeeschedule answers with the late fee schedule in effect, if one is configured.
package latefeeschedule
