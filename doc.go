// Package nwalign fits noisy, variable-length sequences onto the shape of a
// fixed-length reference.
//
// 🚀 What is nwalign?
//
//	A small library plus CLI around one algorithm: a constrained global
//	(Needleman–Wunsch) alignment whose output always has the reference
//	length. Every output position carries either the aligned source element
//	or a caller-defined placeholder, so heterogeneous reads can later be
//	merged position by position.
//
// Under the hood:
//
//	nw/            generic aligner: score matrix builder + backtracker
//	merge/         consensus of wildcard-bearing reads built on nw
//	cmd/nwalign/   command-line front end (align, mask, merge)
//	internal/      CLI wiring, TOML config, build info
//
// Quick example:
//
//	source    aabcd
//	reference aaabbbccd
//	result    *aa**b*cd
//
//	go get github.com/katalvlaran/nwalign/nw
package nwalign
