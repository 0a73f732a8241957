/*
Package sortedarray provides a sorted set backed by a single ordered slice.

Membership is a binary search; insertion shifts the tail and is therefore
O(n). The backend trades asymptotics for simplicity and serves as the
reference oracle in cross-backend contract tests.
*/
package sortedarray

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
