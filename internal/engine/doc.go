// Package engine defines the contract that all search backend adapters
// must implement, along with the registry that holds registered engines
// and resolves which ones serve a given category.
package engine
