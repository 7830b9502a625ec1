// Package instructions turns a node path into turn-by-turn directions.
//
// Output for a path of at least two nodes:
//
//	Start at <start>
//	Head <compass> for <m> meters            (first leg ≥ HeadMin)
//	<Turn verb> at|near <building>           (each interior turn > TurnThreshold)
//	<Turn verb> at the intersection          (no building within NearbyRadius)
//	Continue <compass> for <m> meters        (leg after a turn ≥ ContinueMin)
//	You have reached <end>
//
// Legs whose heading changes by at most TurnThreshold are merged silently into
// a straight run; the run length is tracked and reported only to the debug
// logger. Leg lengths are great-circle distances between node coordinates,
// not edge weights.
package instructions
