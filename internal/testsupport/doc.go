// Package testsupport offers helpers shared by filesort tests: temporary
// configs and file tree builders.
package testsupport
