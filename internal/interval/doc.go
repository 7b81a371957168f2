// Package interval implements the backfill's interval planner.
//
// The planner partitions a calendar year into day windows and each day
// into fixed-granularity sub-windows. Consecutive sub-windows are
// separated by a one second offset so no timestamp is queried twice.
// All computation is pure; callers own the resulting sequences.
package interval
