// Package search implements the aggregation core: the per-engine executor
// that runs one engine against one query under its timeout, the result
// aggregator that merges duplicate URLs across engines, and the
// orchestrator that fans a query out to every engine in a category and
// collects whatever reports back within the collection deadline.
package search
