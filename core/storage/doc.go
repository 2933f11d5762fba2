// Package storage provides the object-storage client used to mirror
// uploaded cheat files to a Minio/S3 bucket.
//
// The mirror is optional and best-effort: the filesystem blob and the
// database row stay the system of record, the bucket copy exists for
// off-host backup. The Client interface keeps the minio dependency behind
// a mockable seam (see the mocks subpackage).
package storage
