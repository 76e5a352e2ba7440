// Package testsupport provides shared helpers for package tests: temp-dir
// seeded configs, store lifecycles, and corpus fixtures.
package testsupport
