// Package auth holds the credential and identity checks shared by every
// route: phone canonicalisation, password hashing, token issuance and
// verification, the bearer-token gate and the resource ownership guard.
//
// Nothing in this package touches the network; the gate resolves identities
// through the IdentityFinder it is given.
package auth
