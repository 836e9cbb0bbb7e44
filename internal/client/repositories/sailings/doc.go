// Package sailings caches the last schedule fetched from the API so the
// client can still show it when the API is unreachable.
//
// The cache is replaced as a whole: ReplaceAll deletes the previous rows and
// writes the new list, keeping its order. Run it inside dbx.WithTx so a
// failed write leaves the old schedule in place.
package sailings
