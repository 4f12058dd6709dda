// Package lock orchestrates the visual lock: load the selected image,
// derive the secret from image and password, and set, verify or remove
// the stored reference secret.
//
// Every operation returns a Result instead of letting errors escape;
// the presentation layer renders Result.Message and never sees a panic
// or an uncaught error. A verification mismatch is a normal outcome,
// not an error, and a storage failure is never reported as "no key".
//
// The store is the single source of truth for whether a key is set.
// The controller caches nothing, so the lock state survives restarts
// without any startup logic beyond reading the store.
package lock
