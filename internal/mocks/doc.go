// Package mocks provides hand-rolled test doubles for the store and
// unit-of-work interfaces. Function fields allow per-test overrides;
// the defaults behave like a small in-memory store.
package mocks
