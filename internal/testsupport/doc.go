// Package testsupport holds filesystem helpers, a temp-dir config builder and
// lookup fakes shared by package tests.
package testsupport
