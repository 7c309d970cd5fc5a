// Package session owns the process-wide notion of who is signed in: the
// durable credential slot, the session value types, and the broadcast
// context every view consults.
package session
