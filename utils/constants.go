// File: utils/constants.go
package utils

// RevokedTokenPrefix marks revoked JWT hashes in the auth cache.
const RevokedTokenPrefix = "revoked:"
