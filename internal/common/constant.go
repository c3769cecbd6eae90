// Package common contains shared constants and sentinel errors used across
// jitsunotes components.
package common

// TokenCookieName is the cookie that carries the opaque session token
// between the browser and the server.
const TokenCookieName = "token"

// TokenBytes is the number of random bytes behind a session token string.
const TokenBytes = 32
