// Package redisstore implements the TokenStore port on Redis. It persists
// exactly one record, the current session credential.
package redisstore
