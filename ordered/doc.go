/*
Package ordered defines the sorted-set contract shared by the set backends in
this module.

The contract is intentionally small: membership, first-write-wins insertion
and lazy ascending iteration. Backends differ in their performance and
sharing characteristics, not in observable set semantics; the cross-backend
contract tests in this package hold them to that.
*/
package ordered
