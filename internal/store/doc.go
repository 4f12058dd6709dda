// Package store persists the single derived secret.
//
// Exactly one record exists at a time, under a fixed identifier. Three
// backends implement the Store interface:
//   - Keyring: the OS secure store (Keychain, wincred, Secret Service)
//   - Bolt: a 0600 BBolt vault file, for hosts without a keyring
//   - Memory: in-process, for tests and embedding
//
// Absence is a normal state, reported as (_, false, nil) from Read,
// never as an error. Backend failures surface as *StorageError and are
// never conflated with absence. The Notifying decorator broadcasts
// presence changes to subscribers after successful writes and deletes.
package store
