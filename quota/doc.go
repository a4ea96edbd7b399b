// Package quota builds a core.Quota (and the interned color
// vocabulary a core.Dataset needs) from raw, human-supplied string
// labels. Interning happens in first-seen order so repeated runs over
// the same label sequence are reproducible.
package quota
