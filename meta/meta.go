// meta/meta.go
package meta

// BUDGET is the maximum total unit cost of one army.
const BUDGET = 30

// WORKERS is the default number of goroutines running simulated battles.
const WORKERS = 8

// BATTLES is the default number of battles per simulation.
const BATTLES = 100
