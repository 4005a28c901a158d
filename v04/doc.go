// Package v04 models version 0.4 of the OME-NGFF metadata format: multiscale
// pyramids with coordinate axes and transformations, plate/well/acquisition
// groupings for high-throughput microscopy, and image-label annotations.
//
// Types decode any document that is shaped correctly; structural rules are
// enforced separately by the Validate methods and functions, which report the
// first violation as ngff.Issues. Validators never mutate their input and are
// safe for concurrent use.
package v04
