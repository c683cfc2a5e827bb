// Package drip is a personal envelope-budgeting ledger.
//
// A Snapshot holds a few money pools and keeps them reconciled:
//   - Actual funds: the bank balance and the physical cash reserve.
//   - Buckets: money set aside for the remaining days' allowances, the unpaid
//     monthly earmarks, user-named custom buckets, and the main savings, which
//     is the remainder of actual funds once every other bucket is served.
//
// Every operation is a method on *Snapshot that applies one event (an expense,
// an income, a cash transfer, a correction...) and, where documented,
// recalculates the buckets so that actual funds and total buckets are equal
// again. Operations never perform I/O and never read the clock: the reference
// date is always given by the caller.
//
// A Snapshot is owned by a single caller for the duration of an operation, it
// has no locking of its own. Use Clone to keep an untouched copy.
//
// Persistence lives in the store package, the read-only summary surface in
// the glance package, and the dripctl command wires them together.
package drip
